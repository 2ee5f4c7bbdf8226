// Package model provides the intermediate representation (IR) shared by the
// takeoff packages.
//
// Everything the engine extracts from a drawing page ends up in one of two
// immutable per-page records:
//
//   - [PageGeometry] - page size plus the classified, filtered wall-candidate
//     [Line] segments, longest first
//   - [PageText] - positioned [TextRun] items, recognised [DimensionText]
//     tokens, the detected drawing scale and the semantic [Region] labels
//
// # Coordinates
//
// All coordinates are PDF page space: origin at the bottom-left corner, y
// growing upwards, units of 1/72 inch. Conversion to the top-left percentage
// convention used by drawing viewers happens only when reports are rendered.
//
// # Geometry
//
// Geometric primitives support the proximity and region calculations:
//
//   - [Point] - 2D point with distance calculation
//   - [BBox] - bounding box with containment, expansion and clamping
package model
