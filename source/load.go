package source

import (
	"fmt"
	"os"

	"github.com/obrafacil/takeoff/contentstream"
	"github.com/obrafacil/takeoff/format"
	"github.com/obrafacil/takeoff/graphicsstate"
)

// Load reads every page of a PDF document. Coordinates are in display
// space: the MediaBox origin is moved to (0, 0) and the page is turned by
// its /Rotate entry, so Width and Height are the size a viewer shows.
//
// A document-level failure yields no pages and a single error; data that
// is not a PDF, such as a DWG file or a scanned image, fails with
// ErrUnsupportedFormat. A failing page is reported as a *PageError and
// skipped or, when only its text could not be decoded, kept with text
// recovered from its operators.
func Load(data []byte, opts ...Option) ([]Page, []error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if f := format.DetectFromMagic(data); f != format.PDF {
		return nil, []error{fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)}
	}

	ctx, err := readContext(data)
	if err != nil {
		return nil, []error{err}
	}

	var errs []error
	text, err := newTextReader(data)
	if err != nil {
		errs = append(errs, err)
	}

	var pages []Page
	for n := 1; n <= ctx.PageCount; n++ {
		if !o.wants(n) {
			continue
		}

		box, content, err := pageContent(ctx, n)
		if err != nil {
			errs = append(errs, &PageError{Page: n, Err: err})
			continue
		}

		ops, err := contentstream.NewParser(content).ParsePartial()
		if err != nil {
			errs = append(errs, &PageError{Page: n, Err: fmt.Errorf("parsing content stream: %w", err)})
		}

		display := box.displayMatrix()
		ops = toDisplay(ops, display)

		page := Page{Number: n}
		page.Width, page.Height = box.size()

		glyphs, err := text.glyphs(n)
		if err != nil && text != nil {
			errs = append(errs, &PageError{Page: n, Err: err})
		}
		page.Texts = placeRuns(GroupRuns(glyphs), display)
		if len(page.Texts) == 0 {
			page.Texts = graphicsstate.ExtractText(ops)
		}

		if o.constructPath {
			ops = contentstream.ConstructPaths(ops)
		}
		page.Operations = ops

		pages = append(pages, page)
	}

	return pages, errs
}

// LoadFile reads the PDF document at path.
func LoadFile(path string, opts ...Option) ([]Page, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{fmt.Errorf("reading %s: %w", path, err)}
	}
	return Load(data, opts...)
}
