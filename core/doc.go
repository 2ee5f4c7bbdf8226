// Package core provides the PDF object types that appear as content-stream
// operands.
//
// Document-level structure (cross-reference tables, object streams, filters)
// is read by pdfcpu in the source package; by the time operators reach the
// extractors only direct objects remain:
//
//   - [Null] - the PDF null object
//   - [Bool] - true/false
//   - [Int] - integers
//   - [Real] - real numbers
//   - [String] - literal or hexadecimal strings
//   - [Name] - names such as /F1 or the sub-operators of constructPath
//   - [Array] - arrays, e.g. TJ operands and constructPath data
//   - [Dict] - inline dictionaries (BDC properties, inline image headers)
//
// [ToFloat] converts numeric operands regardless of whether the producer
// wrote them as integers or reals.
package core
