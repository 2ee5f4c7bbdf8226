package graphicsstate

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"seehuhn.de/go/geom/matrix"

	"github.com/obrafacil/takeoff/contentstream"
	"github.com/obrafacil/takeoff/core"
	"github.com/obrafacil/takeoff/model"
)

// spaceAdjustment is the TJ offset (thousandths of an em, negative moves
// right) treated as a word break.
const spaceAdjustment = -250

// TextExtractor produces text runs directly from text operators. It decodes
// string bytes as Windows-1252 and estimates glyph advances, so it is a
// fallback for pages whose fonts cannot be decoded by a full text library.
type TextExtractor struct {
	gs   *GraphicsState
	runs []model.TextRun
}

// NewTextExtractor creates a new text extractor
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{gs: NewGraphicsState()}
}

// ExtractText runs a fresh TextExtractor over ops.
func ExtractText(ops []contentstream.Operation) []model.TextRun {
	return NewTextExtractor().Extract(ops)
}

// Extract returns one run per text-showing operator, positioned at the
// text origin when the operator starts. Empty strings are skipped.
func (te *TextExtractor) Extract(ops []contentstream.Operation) []model.TextRun {
	te.gs = NewGraphicsState()
	te.runs = nil

	for _, op := range ops {
		te.processOperation(op)
	}
	return te.runs
}

// processOperation processes a single content stream operation
func (te *TextExtractor) processOperation(op contentstream.Operation) {
	switch op.Operator {
	case contentstream.OpSave:
		te.gs.Save()
	case contentstream.OpRestore:
		_ = te.gs.Restore()
	case contentstream.OpConcat:
		if args, ok := floats(op.Operands, 6); ok {
			te.gs.Transform(matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]})
		}

	case contentstream.OpBeginText:
		te.gs.BeginText()
	case contentstream.OpSetFont:
		if len(op.Operands) == 2 {
			name, _ := op.Operands[0].(core.Name)
			if size, ok := core.ToFloat(op.Operands[1]); ok {
				te.gs.SetFont(string(name), size)
			}
		}
	case "Tc":
		if args, ok := floats(op.Operands, 1); ok {
			te.gs.SetCharSpacing(args[0])
		}
	case "Tw":
		if args, ok := floats(op.Operands, 1); ok {
			te.gs.SetWordSpacing(args[0])
		}
	case "Tz":
		if args, ok := floats(op.Operands, 1); ok {
			te.gs.SetHorizontalScaling(args[0])
		}
	case "Ts":
		if args, ok := floats(op.Operands, 1); ok {
			te.gs.SetTextRise(args[0])
		}
	case contentstream.OpSetLeading:
		if args, ok := floats(op.Operands, 1); ok {
			te.gs.SetLeading(args[0])
		}
	case contentstream.OpMoveText:
		if args, ok := floats(op.Operands, 2); ok {
			te.gs.TranslateText(args[0], args[1])
		}
	case contentstream.OpMoveTextLeading:
		if args, ok := floats(op.Operands, 2); ok {
			te.gs.TranslateTextSetLeading(args[0], args[1])
		}
	case contentstream.OpSetTextMatrix:
		if args, ok := floats(op.Operands, 6); ok {
			te.gs.SetTextMatrix(matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]})
		}
	case contentstream.OpNextLine:
		te.gs.NextLine()

	case contentstream.OpShowText:
		if len(op.Operands) == 1 {
			te.show(op.Operands[0])
		}
	case contentstream.OpNextLineShow:
		te.gs.NextLine()
		if len(op.Operands) == 1 {
			te.show(op.Operands[0])
		}
	case contentstream.OpNextLineShowSp:
		if len(op.Operands) == 3 {
			if aw, ok := core.ToFloat(op.Operands[0]); ok {
				te.gs.SetWordSpacing(aw)
			}
			if ac, ok := core.ToFloat(op.Operands[1]); ok {
				te.gs.SetCharSpacing(ac)
			}
			te.gs.NextLine()
			te.show(op.Operands[2])
		}
	case contentstream.OpShowTextArray:
		if len(op.Operands) == 1 {
			if arr, ok := op.Operands[0].(core.Array); ok {
				te.showArray(arr)
			}
		}
	}
}

// show records a Tj-style string and advances the text position.
func (te *TextExtractor) show(obj core.Object) {
	s, ok := obj.(core.String)
	if !ok {
		return
	}
	text := decodeText(string(s))
	x, y := te.gs.GetTextPosition()
	size := te.gs.GetEffectiveFontSize()
	te.gs.ShowText(text)
	te.record(text, x, y, size)
}

// showArray records a TJ array as one run. Large negative adjustments
// become spaces.
func (te *TextExtractor) showArray(arr core.Array) {
	x, y := te.gs.GetTextPosition()
	size := te.gs.GetEffectiveFontSize()

	var sb strings.Builder
	for _, item := range arr {
		switch v := item.(type) {
		case core.String:
			text := decodeText(string(v))
			sb.WriteString(text)
			te.gs.ShowText(text)
		case core.Int, core.Real:
			adj, _ := core.ToFloat(v)
			if adj <= spaceAdjustment && sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			te.gs.AdjustText(adj)
		}
	}
	te.record(sb.String(), x, y, size)
}

func (te *TextExtractor) record(text string, x, y, size float64) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	te.runs = append(te.runs, model.TextRun{Text: text, X: x, Y: y, FontSize: size})
}

// decodeText maps single-byte string data through Windows-1252, which
// covers the accented Latin letters of drawing labels.
func decodeText(raw string) string {
	s, err := charmap.Windows1252.NewDecoder().String(raw)
	if err != nil {
		return raw
	}
	return s
}
