// Package report correlates page geometry with page text and renders the
// textual summary handed to the drawing-interpretation step.
//
// A page takes part only when it [Qualifies] as vector content: enough
// significant lines and text runs. Raster scans fail this test and are left
// out without error.
//
// [Correlate] attaches each dimension token to the nearest strong line of
// either orientation. [Summarize] renders, per qualifying page, the header,
// regions, strongest lines, correlated dimensions and room labels.
// Positions are percentages of the page with the origin at the top-left
// corner, the convention drawing viewers use.
package report
