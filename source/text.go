package source

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/obrafacil/takeoff/model"
)

// Run grouping thresholds.
const (
	BaselineTolerance = 3.0 // max baseline difference within a run
	MaxGapRatio       = 0.6 // max horizontal gap, in font sizes
	spaceGapRatio     = 0.25
	fallbackFontSize  = 10.0
)

// Glyph is one positioned piece of text as the text decoder reports it.
// X and Y are the baseline origin in page space; W is the advance width.
type Glyph struct {
	Text     string
	X, Y, W  float64
	FontSize float64
}

// GroupRuns merges consecutive glyphs into text runs. A glyph continues
// the current run when its baseline is within BaselineTolerance and the
// horizontal gap to the end of the run is at most MaxGapRatio font sizes.
// Word-sized gaps become a single space. Blank runs are dropped.
func GroupRuns(glyphs []Glyph) []model.TextRun {
	var runs []model.TextRun
	var sb strings.Builder
	var cur model.TextRun
	var end float64
	open := false

	flush := func() {
		if !open {
			return
		}
		cur.Text = strings.TrimSpace(sb.String())
		if cur.Text != "" {
			runs = append(runs, cur)
		}
		sb.Reset()
		open = false
	}

	for _, g := range glyphs {
		if g.Text == "" || (!open && strings.TrimSpace(g.Text) == "") {
			continue
		}
		size := g.FontSize
		if size <= 0 {
			size = fallbackFontSize
		}

		if open {
			gap := g.X - end
			limit := MaxGapRatio * math.Max(size, cur.FontSize)
			if math.Abs(g.Y-cur.Y) <= BaselineTolerance && gap <= limit && gap >= -limit {
				if gap > spaceGapRatio*size && !strings.HasSuffix(sb.String(), " ") && !strings.HasPrefix(g.Text, " ") {
					sb.WriteByte(' ')
				}
				sb.WriteString(g.Text)
				end = math.Max(end, g.X+g.W)
				continue
			}
			flush()
		}

		cur = model.TextRun{X: g.X, Y: g.Y, FontSize: size}
		sb.WriteString(g.Text)
		end = g.X + g.W
		open = true
	}
	flush()

	return runs
}

// textReader wraps the glyph decoder for one document.
type textReader struct {
	r *pdf.Reader
}

func newTextReader(data []byte) (*textReader, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening text reader: %w", err)
	}
	return &textReader{r: r}, nil
}

// glyphs decodes the glyphs of page n. The decoder panics on some
// malformed streams; those panics come back as errors.
func (tr *textReader) glyphs(n int) (out []Glyph, err error) {
	if tr == nil || tr.r == nil {
		return nil, fmt.Errorf("text reader unavailable")
	}
	if n < 1 || n > tr.r.NumPage() {
		return nil, fmt.Errorf("page out of range")
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("decoding text: %v", r)
		}
	}()

	page := tr.r.Page(n)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page object missing")
	}

	for _, t := range page.Content().Text {
		out = append(out, Glyph{Text: t.S, X: t.X, Y: t.Y, W: t.W, FontSize: t.FontSize})
	}
	return out, nil
}
