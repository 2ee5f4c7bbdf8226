package graphicsstate

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"

	"github.com/obrafacil/takeoff/model"
)

// ErrStackUnderflow is returned by Restore when no state was saved.
var ErrStackUnderflow = errors.New("graphics state stack underflow")

// averageGlyphWidth approximates a glyph's advance in text space units
// (fraction of the font size) when no font metrics are available.
const averageGlyphWidth = 0.5

// GraphicsState represents the PDF graphics state
type GraphicsState struct {
	// Current Transformation Matrix
	CTM matrix.Matrix

	// Text state
	Text TextState

	// Graphics state stack (for q/Q operators)
	stack []savedState

	// Line width in user space units
	LineWidth float64
}

// savedState is the part of the graphics state covered by q/Q.
type savedState struct {
	ctm       matrix.Matrix
	lineWidth float64
	text      TextState
}

// TextState represents text-specific state
type TextState struct {
	// Font and size
	FontName string
	FontSize float64

	// Character and word spacing
	CharSpacing float64
	WordSpacing float64

	// Horizontal scaling (percentage)
	HorizontalScaling float64

	// Leading (line spacing)
	Leading float64

	// Text rise
	Rise float64

	// Text matrices
	TextMatrix     matrix.Matrix
	TextLineMatrix matrix.Matrix
}

// NewGraphicsState creates a new graphics state with default values
func NewGraphicsState() *GraphicsState {
	return &GraphicsState{
		CTM:       matrix.Identity,
		LineWidth: 1.0,
		Text: TextState{
			FontSize:          12.0,
			HorizontalScaling: 100.0,
			TextMatrix:        matrix.Identity,
			TextLineMatrix:    matrix.Identity,
		},
	}
}

// Save pushes the current graphics state onto the stack (q operator)
func (gs *GraphicsState) Save() {
	gs.stack = append(gs.stack, savedState{ctm: gs.CTM, lineWidth: gs.LineWidth, text: gs.Text})
}

// Restore pops a graphics state from the stack (Q operator). The state is
// left unchanged on underflow.
func (gs *GraphicsState) Restore() error {
	if len(gs.stack) == 0 {
		return ErrStackUnderflow
	}

	saved := gs.stack[len(gs.stack)-1]
	gs.stack = gs.stack[:len(gs.stack)-1]

	gs.CTM = saved.ctm
	gs.LineWidth = saved.lineWidth
	gs.Text = saved.text

	return nil
}

// Depth returns the number of saved states.
func (gs *GraphicsState) Depth() int {
	return len(gs.stack)
}

// Transform concatenates m to the CTM (cm operator): m is applied first,
// then the previous CTM.
func (gs *GraphicsState) Transform(m matrix.Matrix) {
	gs.CTM = m.Mul(gs.CTM)
}

// ToPage maps a user-space point to page space through the CTM.
func (gs *GraphicsState) ToPage(p model.Point) model.Point {
	x, y := gs.CTM.Apply(p.X, p.Y)
	return model.Point{X: x, Y: y}
}

// SetLineWidth sets the line width (w operator)
func (gs *GraphicsState) SetLineWidth(width float64) {
	gs.LineWidth = width
}

// DeviceLineWidth returns the line width scaled by the CTM into page
// space.
func (gs *GraphicsState) DeviceLineWidth() float64 {
	m := gs.CTM
	return gs.LineWidth * math.Sqrt(math.Abs(m[0]*m[3]-m[1]*m[2]))
}

// SetFont sets the current font (Tf operator)
func (gs *GraphicsState) SetFont(name string, size float64) {
	gs.Text.FontName = name
	gs.Text.FontSize = size
}

// SetCharSpacing sets character spacing (Tc operator)
func (gs *GraphicsState) SetCharSpacing(spacing float64) {
	gs.Text.CharSpacing = spacing
}

// SetWordSpacing sets word spacing (Tw operator)
func (gs *GraphicsState) SetWordSpacing(spacing float64) {
	gs.Text.WordSpacing = spacing
}

// SetHorizontalScaling sets horizontal scaling (Tz operator)
func (gs *GraphicsState) SetHorizontalScaling(scale float64) {
	gs.Text.HorizontalScaling = scale
}

// SetLeading sets text leading (TL operator)
func (gs *GraphicsState) SetLeading(leading float64) {
	gs.Text.Leading = leading
}

// SetTextRise sets text rise (Ts operator)
func (gs *GraphicsState) SetTextRise(rise float64) {
	gs.Text.Rise = rise
}

// BeginText initializes text state (BT operator)
func (gs *GraphicsState) BeginText() {
	gs.Text.TextMatrix = matrix.Identity
	gs.Text.TextLineMatrix = matrix.Identity
}

// SetTextMatrix sets the text matrix (Tm operator)
func (gs *GraphicsState) SetTextMatrix(m matrix.Matrix) {
	gs.Text.TextMatrix = m
	gs.Text.TextLineMatrix = m
}

// TranslateText moves to the start of the next line offset by (tx, ty)
// (Td operator): Tlm = T(tx, ty) × Tlm.
func (gs *GraphicsState) TranslateText(tx, ty float64) {
	gs.Text.TextLineMatrix = matrix.Translate(tx, ty).Mul(gs.Text.TextLineMatrix)
	gs.Text.TextMatrix = gs.Text.TextLineMatrix
}

// TranslateTextSetLeading translates text and sets leading (TD operator)
func (gs *GraphicsState) TranslateTextSetLeading(tx, ty float64) {
	gs.SetLeading(-ty)
	gs.TranslateText(tx, ty)
}

// NextLine moves to next line (T* operator)
func (gs *GraphicsState) NextLine() {
	gs.TranslateText(0, -gs.Text.Leading)
}

// ShowText advances the text matrix past text using an average glyph
// width, since font metrics are not loaded. It returns the advance in text
// space.
func (gs *GraphicsState) ShowText(text string) float64 {
	glyphs := float64(len([]rune(text)))
	return gs.ShowTextWithWidth(text, glyphs*averageGlyphWidth*gs.Text.FontSize)
}

// ShowTextWithWidth advances the text matrix past text whose unscaled glyph
// widths sum to width.
// tx = (w0·fs + Tc + Tw) · Th/100 summed over the glyphs.
func (gs *GraphicsState) ShowTextWithWidth(text string, width float64) float64 {
	numChars := 0.0
	numSpaces := 0.0
	for _, c := range text {
		numChars++
		if c == ' ' {
			numSpaces++
		}
	}

	scale := gs.Text.HorizontalScaling / 100.0
	advance := (width + numChars*gs.Text.CharSpacing + numSpaces*gs.Text.WordSpacing) * scale

	gs.Text.TextMatrix = matrix.Translate(advance, 0).Mul(gs.Text.TextMatrix)
	return advance
}

// AdjustText applies a TJ position adjustment given in thousandths of a
// text space unit.
func (gs *GraphicsState) AdjustText(adjustment float64) {
	tx := -adjustment / 1000.0 * gs.Text.FontSize * gs.Text.HorizontalScaling / 100.0
	gs.Text.TextMatrix = matrix.Translate(tx, 0).Mul(gs.Text.TextMatrix)
}

// GetTextPosition returns the current text origin in page space
func (gs *GraphicsState) GetTextPosition() (x, y float64) {
	return gs.Text.TextMatrix.Mul(gs.CTM).Apply(0, gs.Text.Rise)
}

// GetEffectiveFontSize returns the font size in page space, accounting for
// scaling by the text matrix and the CTM.
func (gs *GraphicsState) GetEffectiveFontSize() float64 {
	m := gs.Text.TextMatrix.Mul(gs.CTM)
	// length of the transformed text-space y unit vector
	scale := math.Hypot(m[2], m[3])
	if scale == 0 {
		scale = math.Hypot(m[0], m[1])
	}
	return math.Abs(gs.Text.FontSize) * scale
}
