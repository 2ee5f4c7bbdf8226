// Package takeoff extracts wall-candidate geometry and annotations from
// architectural PDF drawings, renders them as a compact text report for a
// drawing-interpretation step, and derives construction quantities from
// the building model that step returns.
//
// Basic usage:
//
//	report, warnings, err := takeoff.Open("planta.pdf").Report(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", takeoff.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := takeoff.Open("planta.pdf", "cortes.pdf").
//	    Pages(1, 2).
//	    Concurrency(4).
//	    UnitPreference(annotation.PreferCentimeters).
//	    Analyze(ctx, interpreter)
//
// The stages are also available on their own in the source, graphicsstate,
// lines, annotation, report and quantity packages.
package takeoff

import (
	"github.com/obrafacil/takeoff/source"
)

// Open returns an Extractor over the PDF files at paths. Files are read
// when a terminal operation runs.
//
// Example:
//
//	report, warnings, err := takeoff.Open("planta.pdf").Report(ctx)
func Open(paths ...string) *Extractor {
	e := &Extractor{options: defaultOptions()}
	for _, p := range paths {
		e.docs = append(e.docs, document{name: p, path: p})
	}
	return e
}

// FromBytes returns an Extractor over an in-memory PDF document. name is
// used in the report header and in warnings.
func FromBytes(name string, data []byte) *Extractor {
	return &Extractor{
		docs:    []document{{name: name, data: data}},
		options: defaultOptions(),
	}
}

// FromPages returns an Extractor over pages that were already loaded,
// for example with source.Load or from an operator list exported by
// another PDF engine.
func FromPages(name string, pages []source.Page) *Extractor {
	return &Extractor{
		docs:    []document{{name: name, pages: pages, loaded: true}},
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a terminal operation and panics if
// the error is non-nil. It discards warnings and returns just the value.
// It is intended for use in scripts or tests where error handling would
// be cumbersome.
//
// Example:
//
//	report := takeoff.Must(takeoff.Open("planta.pdf").Report(ctx))
func Must[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
