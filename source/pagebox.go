package source

import (
	"math"

	"seehuhn.de/go/geom/matrix"

	"github.com/obrafacil/takeoff/contentstream"
	"github.com/obrafacil/takeoff/core"
	"github.com/obrafacil/takeoff/model"
)

// pageBox is a page's MediaBox together with its /Rotate entry.
type pageBox struct {
	llx, lly, urx, ury float64
	rotate             int
}

// letterBox is used when a page carries no usable MediaBox.
var letterBox = pageBox{urx: defaultPageWidth, ury: defaultPageHeight}

func newPageBox(llx, lly, urx, ury float64, rotate int) pageBox {
	return pageBox{
		llx:    math.Min(llx, urx),
		lly:    math.Min(lly, ury),
		urx:    math.Max(llx, urx),
		ury:    math.Max(lly, ury),
		rotate: rotate,
	}
}

// quarterTurns is the clockwise rotation in multiples of 90 degrees, 0 to 3.
func (b pageBox) quarterTurns() int {
	return ((b.rotate%360)+360)%360 / 90
}

// size returns the width and height of the page as a viewer shows it.
func (b pageBox) size() (width, height float64) {
	w, h := b.urx-b.llx, b.ury-b.lly
	if b.quarterTurns()%2 == 1 {
		return h, w
	}
	return w, h
}

// displayMatrix maps user space to display space: the lower-left corner of
// the box becomes the origin and the page is turned by /Rotate.
func (b pageBox) displayMatrix() matrix.Matrix {
	w, h := b.urx-b.llx, b.ury-b.lly
	m := matrix.Translate(-b.llx, -b.lly)
	switch b.quarterTurns() {
	case 1:
		m = m.Mul(matrix.Matrix{0, -1, 1, 0, 0, w})
	case 2:
		m = m.Mul(matrix.Matrix{-1, 0, 0, -1, w, h})
	case 3:
		m = m.Mul(matrix.Matrix{0, 1, -1, 0, h, 0})
	}
	return m
}

// toDisplay prefixes ops with a cm operation establishing m.
func toDisplay(ops []contentstream.Operation, m matrix.Matrix) []contentstream.Operation {
	if m == matrix.Identity {
		return ops
	}

	operands := make([]core.Object, len(m))
	for i, v := range m {
		operands[i] = core.Real(v)
	}
	out := make([]contentstream.Operation, 0, len(ops)+1)
	out = append(out, contentstream.Operation{Operator: contentstream.OpConcat, Operands: operands})
	return append(out, ops...)
}

// placeRuns moves run origins from user space to display space.
func placeRuns(runs []model.TextRun, m matrix.Matrix) []model.TextRun {
	if m == matrix.Identity {
		return runs
	}
	for i := range runs {
		runs[i].X, runs[i].Y = m.Apply(runs[i].X, runs[i].Y)
	}
	return runs
}
