package source

import (
	"errors"
	"fmt"

	"github.com/obrafacil/takeoff/contentstream"
	"github.com/obrafacil/takeoff/model"
)

// Page is the raw material of one PDF page. Operations begin with a cm
// operation when the page needs moving into display space.
type Page struct {
	Number     int // 1-based
	Width      float64
	Height     float64
	Operations []contentstream.Operation
	Texts      []model.TextRun
}

// ErrUnsupportedFormat is returned for inputs that are not PDF documents.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// PageError is a failure confined to a single page.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

type options struct {
	constructPath bool
	pages         map[int]bool
}

// Option configures Load.
type Option func(*options)

// WithConstructPath folds path-construction operators into composite
// constructPath operations.
func WithConstructPath(enabled bool) Option {
	return func(o *options) {
		o.constructPath = enabled
	}
}

// WithPages restricts loading to the given 1-based page numbers. Numbers
// outside the document are ignored.
func WithPages(pages ...int) Option {
	return func(o *options) {
		if len(pages) == 0 {
			o.pages = nil
			return
		}
		o.pages = make(map[int]bool, len(pages))
		for _, p := range pages {
			o.pages[p] = true
		}
	}
}

func (o options) wants(page int) bool {
	return o.pages == nil || o.pages[page]
}
