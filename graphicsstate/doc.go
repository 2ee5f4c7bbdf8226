// Package graphicsstate interprets content-stream operators against a PDF
// graphics state.
//
// The graphics state tracks what the extractors need:
//   - CTM (Current Transformation Matrix) with the q/Q save stack
//   - line width (w), scaled into page space for each emitted line
//   - text state (font size, spacing, leading, text and text line matrices)
//
// # Line extraction
//
// [LineExtractor] walks a page's operators and emits a [model.Line] for
// every straight segment as soon as it is constructed:
//
//	lines := graphicsstate.ExtractLines(ops)
//
// m moves the current point, l emits the segment from the current point,
// re emits its four edges, c/v/y move the current point to the curve end
// without emitting, and h returns to the subpath start without emitting.
// The composite constructPath operator is replayed sub-operator by
// sub-operator over its shared data array. Segments shorter than
// [MinEmitLength] are dropped. Malformed operators are skipped; the
// extractor never fails.
//
// # Text extraction
//
// [TextExtractor] turns BT...ET blocks into positioned text runs. It has no
// font metrics, so advances are estimated; it backs up a real text decoder
// when that cannot read a page.
package graphicsstate
