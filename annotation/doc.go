// Package annotation extracts drawing facts from positioned page text.
//
// Given the text runs of one page, [ExtractPageText] recognises:
//
//   - dimension tokens such as "3,45" or "12.5" ([ParseDimension]), with the
//     unit inferred from the value range ([InferUnit])
//   - the drawing scale, e.g. "ESC. 1:50" → "1:50" ([DetectScale])
//   - drawing regions on multi-drawing sheets ("Planta Baixa", "Corte AA",
//     "Fachada", ...) ([DetectRegions])
//
// Matching against labels and room names is case and accent insensitive
// ([Fold]), so "SITUAÇÃO" and "situacao" are the same word.
//
// # Units
//
// A value in [0.1, 50] reads as meters and a value in [10, 5000] as
// centimeters. Values in the overlap [10, 50] are resolved by
// [UnitPreference]; [PreferMeters] is the default because sheets are mostly
// dimensioned in meters with two decimals.
package annotation
