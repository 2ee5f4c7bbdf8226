// Package source turns PDF documents into the per-page inputs of the
// takeoff pipeline: page size, content-stream operations and positioned
// text runs.
//
// Document structure, page boxes and content-stream decoding are read with
// pdfcpu. Glyph text comes from ledongthuc/pdf, whose interpreter handles
// font encodings; when it cannot read a page the text is recovered from
// the page's own text operators instead.
package source
