package source

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Letter size.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

var disableConfigDir sync.Once

// readContext parses and validates a document.
func readContext(data []byte) (*pdfmodel.Context, error) {
	disableConfigDir.Do(api.DisableConfigDir)

	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("validating document: %w", err)
	}
	return ctx, nil
}

// pageContent returns the page box and the concatenated, decoded content
// streams of page n.
func pageContent(ctx *pdfmodel.Context, n int) (box pageBox, content []byte, err error) {
	pageDict, _, attrs, err := ctx.PageDict(n, false)
	if err != nil {
		return box, nil, fmt.Errorf("reading page dictionary: %w", err)
	}
	if pageDict == nil {
		return box, nil, fmt.Errorf("page dictionary not found")
	}

	box = letterBox
	if attrs != nil {
		if mb := attrs.MediaBox; mb != nil && mb.Width() > 0 && mb.Height() > 0 {
			box = newPageBox(mb.LL.X, mb.LL.Y, mb.UR.X, mb.UR.Y, 0)
		}
		box.rotate = attrs.Rotate
	}

	content, err = contentStreams(ctx, pageDict)
	if err != nil {
		return box, nil, err
	}
	return box, content, nil
}

// contentStreams decodes the page's Contents entry, which is either a
// single stream or an array of streams forming one logical stream.
func contentStreams(ctx *pdfmodel.Context, pageDict types.Dict) ([]byte, error) {
	obj, found := pageDict.Find("Contents")
	if !found || obj == nil {
		return nil, nil
	}

	if ref, ok := obj.(types.IndirectRef); ok {
		resolved, err := ctx.Dereference(ref)
		if err != nil {
			return nil, fmt.Errorf("resolving contents: %w", err)
		}
		if arr, ok := resolved.(types.Array); ok {
			obj = arr
		}
	}

	parts := []types.Object{obj}
	if arr, ok := obj.(types.Array); ok {
		parts = arr
	}

	var buf bytes.Buffer
	for i, part := range parts {
		sd, _, err := ctx.DereferenceStreamDict(part)
		if err != nil {
			return nil, fmt.Errorf("content stream %d: %w", i, err)
		}
		if sd == nil {
			continue
		}
		if err := sd.Decode(); err != nil {
			return nil, fmt.Errorf("decoding content stream %d: %w", i, err)
		}
		buf.Write(sd.Content)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
