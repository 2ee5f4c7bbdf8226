package graphicsstate

import (
	"seehuhn.de/go/geom/matrix"

	"github.com/obrafacil/takeoff/contentstream"
	"github.com/obrafacil/takeoff/core"
	"github.com/obrafacil/takeoff/model"
)

// MinEmitLength is the shortest segment, in page units, the extractor emits.
const MinEmitLength = 0.5

// LineExtractor walks a page's operator list and emits straight segments in
// page space. It is not safe for concurrent use; use one per page.
type LineExtractor struct {
	gs    *GraphicsState
	path  Path
	lines []model.Line

	// MinLength is the emission threshold, MinEmitLength by default.
	MinLength float64
}

// NewLineExtractor creates a new line extractor
func NewLineExtractor() *LineExtractor {
	return &LineExtractor{
		gs:        NewGraphicsState(),
		MinLength: MinEmitLength,
	}
}

// ExtractLines runs a fresh LineExtractor over ops.
func ExtractLines(ops []contentstream.Operation) []model.Line {
	return NewLineExtractor().Extract(ops)
}

// Extract processes ops in order and returns the emitted lines in emission
// order. State from a previous call is discarded. Operators with missing or
// non-numeric operands are skipped.
func (le *LineExtractor) Extract(ops []contentstream.Operation) []model.Line {
	le.gs = NewGraphicsState()
	le.path.Clear()
	le.lines = nil

	for _, op := range ops {
		le.processOperation(op)
	}
	return le.lines
}

// processOperation processes a single content stream operation
func (le *LineExtractor) processOperation(op contentstream.Operation) {
	switch op.Operator {
	// Graphics state operators
	case contentstream.OpSave:
		le.gs.Save()
	case contentstream.OpRestore:
		// unbalanced Q is ignored
		_ = le.gs.Restore()
	case contentstream.OpConcat:
		if args, ok := floats(op.Operands, 6); ok {
			le.gs.Transform(matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]})
		}
	case contentstream.OpLineWidth:
		if args, ok := floats(op.Operands, 1); ok {
			le.gs.SetLineWidth(args[0])
		}

	// Path construction operators
	case contentstream.OpMoveTo, contentstream.OpLineTo, contentstream.OpCurveTo,
		contentstream.OpCurveToV, contentstream.OpCurveToY, contentstream.OpClosePath,
		contentstream.OpRectangle:
		pathOp, _ := contentstream.PathOpFromObject(core.Name(op.Operator))
		if args, ok := floats(op.Operands, pathOp.ArgCount()); ok {
			le.pathOp(pathOp, args)
		}
	case contentstream.OpConstructPath:
		le.constructPath(op.Operands)

	// Painting operators end the path; the current point no longer matters.
	case "S", "s", "f", "F", "f*", "B", "B*", "b", "b*", "n":
		le.path.Clear()
	}
}

// constructPath replays a composite path. Sub-operators consume their
// arguments from the shared data array; an unknown sub-operator or a
// cursor running past the data ends the path.
func (le *LineExtractor) constructPath(operands []core.Object) {
	if len(operands) < 2 {
		return
	}
	subOps, ok := operands[0].(core.Array)
	if !ok {
		return
	}
	data, ok := operands[1].(core.Array)
	if !ok {
		return
	}

	cursor := 0
	for _, obj := range subOps {
		pathOp, ok := contentstream.PathOpFromObject(obj)
		if !ok {
			return
		}
		n := pathOp.ArgCount()
		if cursor+n > len(data) {
			return
		}
		args, ok := floats(data[cursor:cursor+n], n)
		if !ok {
			return
		}
		cursor += n
		le.pathOp(pathOp, args)
	}
}

// pathOp applies one path-construction step with already decoded args.
func (le *LineExtractor) pathOp(op contentstream.PathOp, args []float64) {
	switch op {
	case contentstream.PathMoveTo:
		le.path.MoveTo(args[0], args[1])
	case contentstream.PathLineTo:
		if start, ok := le.path.LineTo(args[0], args[1]); ok {
			le.emit(start, le.path.CurrentPoint)
		}
	case contentstream.PathCurveTo:
		le.path.CurveTo(args[4], args[5])
	case contentstream.PathCurveTo2, contentstream.PathCurveTo3:
		le.path.CurveTo(args[2], args[3])
	case contentstream.PathClosePath:
		le.path.ClosePath()
	case contentstream.PathRectangle:
		corners := le.path.Rectangle(args[0], args[1], args[2], args[3])
		for i := range corners {
			le.emit(corners[i], corners[(i+1)%4])
		}
	}
}

// emit transforms a user-space segment to page space and records it when
// it is long enough.
func (le *LineExtractor) emit(from, to model.Point) {
	p1 := le.gs.ToPage(from)
	p2 := le.gs.ToPage(to)
	line := model.NewLine(p1.X, p1.Y, p2.X, p2.Y, le.gs.DeviceLineWidth())
	if line.Length < le.MinLength {
		return
	}
	le.lines = append(le.lines, line)
}

// floats converts exactly n numeric operands.
func floats(operands []core.Object, n int) ([]float64, bool) {
	if n < 0 || len(operands) != n {
		return nil, false
	}
	out := make([]float64, n)
	for i, o := range operands {
		v, ok := core.ToFloat(o)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
