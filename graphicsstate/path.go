package graphicsstate

import "github.com/obrafacil/takeoff/model"

// Path tracks the current point of the path under construction, in user
// space. Segments are not retained: lines are emitted as they are built.
type Path struct {
	// CurrentPoint is the current point in user space
	CurrentPoint model.Point

	// SubpathStart is the start of the current subpath (for closepath)
	SubpathStart model.Point

	// HasCurrentPoint indicates if a current point has been set
	HasCurrentPoint bool
}

// MoveTo starts a new subpath at the specified point (m operator)
func (p *Path) MoveTo(x, y float64) {
	pt := model.Point{X: x, Y: y}
	p.CurrentPoint = pt
	p.SubpathStart = pt
	p.HasCurrentPoint = true
}

// LineTo moves the current point to (x, y) and returns the segment's start
// point. ok is false when there was no current point, in which case LineTo
// behaves like MoveTo.
func (p *Path) LineTo(x, y float64) (start model.Point, ok bool) {
	if !p.HasCurrentPoint {
		p.MoveTo(x, y)
		return model.Point{}, false
	}
	start = p.CurrentPoint
	p.CurrentPoint = model.Point{X: x, Y: y}
	return start, true
}

// CurveTo moves the current point to the curve's end point (c, v, y
// operators). Curves are never emitted as lines.
func (p *Path) CurveTo(x3, y3 float64) {
	if !p.HasCurrentPoint {
		p.MoveTo(x3, y3)
		return
	}
	p.CurrentPoint = model.Point{X: x3, Y: y3}
}

// ClosePath returns the current point to the subpath start (h operator)
func (p *Path) ClosePath() {
	if p.HasCurrentPoint {
		p.CurrentPoint = p.SubpathStart
	}
}

// Rectangle returns the four corners of the rectangle in drawing order and
// leaves the current point at (x, y) (re operator).
func (p *Path) Rectangle(x, y, width, height float64) [4]model.Point {
	p.MoveTo(x, y)
	return [4]model.Point{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}
}

// Clear drops the current point.
func (p *Path) Clear() {
	*p = Path{}
}
