package contentstream

import "github.com/obrafacil/takeoff/core"

// Operator names used by the extractors.
const (
	OpSave      = "q"
	OpRestore   = "Q"
	OpConcat    = "cm"
	OpLineWidth = "w"

	OpMoveTo    = "m"
	OpLineTo    = "l"
	OpCurveTo   = "c"
	OpCurveToV  = "v"
	OpCurveToY  = "y"
	OpClosePath = "h"
	OpRectangle = "re"

	// OpConstructPath is the composite path operator: operand 0 is an
	// array of sub-operators, operand 1 a flat array of numbers consumed in
	// order by those sub-operators.
	OpConstructPath = "constructPath"

	OpBeginText       = "BT"
	OpEndText         = "ET"
	OpSetFont         = "Tf"
	OpSetLeading      = "TL"
	OpMoveText        = "Td"
	OpMoveTextLeading = "TD"
	OpSetTextMatrix   = "Tm"
	OpNextLine        = "T*"
	OpShowText        = "Tj"
	OpShowTextArray   = "TJ"
	OpNextLineShow    = "'"
	OpNextLineShowSp  = `"`

	OpBeginInlineImage = "BI"
)

// PathOp identifies a sub-operator inside a constructPath operation. The
// numbering follows the operator-list convention of PDF.js so operator
// lists exported from a browser viewer can be fed in unchanged.
type PathOp int

const (
	PathMoveTo    PathOp = 13
	PathLineTo    PathOp = 14
	PathCurveTo   PathOp = 15
	PathCurveTo2  PathOp = 16 // v: first control point is the current point
	PathCurveTo3  PathOp = 17 // y: second control point is the end point
	PathClosePath PathOp = 18
	PathRectangle PathOp = 19
)

var pathOpByOperator = map[string]PathOp{
	OpMoveTo:    PathMoveTo,
	OpLineTo:    PathLineTo,
	OpCurveTo:   PathCurveTo,
	OpCurveToV:  PathCurveTo2,
	OpCurveToY:  PathCurveTo3,
	OpClosePath: PathClosePath,
	OpRectangle: PathRectangle,
}

// ArgCount returns how many numbers op consumes from the constructPath data
// array, or -1 for an unknown sub-operator.
func (op PathOp) ArgCount() int {
	switch op {
	case PathMoveTo, PathLineTo:
		return 2
	case PathCurveTo:
		return 6
	case PathCurveTo2, PathCurveTo3, PathRectangle:
		return 4
	case PathClosePath:
		return 0
	default:
		return -1
	}
}

// PathOpFromObject decodes a constructPath sub-operator written either as a
// numeric opcode or as an operator name such as /re.
func PathOpFromObject(obj core.Object) (PathOp, bool) {
	switch v := obj.(type) {
	case core.Int:
		op := PathOp(v)
		return op, op.ArgCount() >= 0
	case core.Real:
		op := PathOp(int(v))
		return op, float64(v) == float64(int(v)) && op.ArgCount() >= 0
	case core.Name:
		op, ok := pathOpByOperator[string(v)]
		return op, ok
	default:
		return 0, false
	}
}

// IsPathConstruction reports whether operator builds path segments.
func IsPathConstruction(operator string) bool {
	_, ok := pathOpByOperator[operator]
	return ok
}

// ConstructPaths folds every run of consecutive path-construction operators
// (m, l, c, v, y, h, re) into a single constructPath operation. Other
// operations pass through unchanged. A path operator with the wrong number
// of numeric operands ends the current run and is kept as-is.
func ConstructPaths(ops []Operation) []Operation {
	out := make([]Operation, 0, len(ops))
	var (
		subOps core.Array
		data   core.Array
	)

	flush := func() {
		if len(subOps) == 0 {
			return
		}
		out = append(out, Operation{
			Operator: OpConstructPath,
			Operands: []core.Object{subOps, data},
		})
		subOps, data = nil, nil
	}

	for _, op := range ops {
		pathOp, ok := pathOpByOperator[op.Operator]
		if !ok || !numericOperands(op.Operands, pathOp.ArgCount()) {
			flush()
			out = append(out, op)
			continue
		}
		subOps = append(subOps, core.Int(pathOp))
		data = append(data, op.Operands...)
	}
	flush()

	return out
}

func numericOperands(operands []core.Object, n int) bool {
	if len(operands) != n {
		return false
	}
	for _, o := range operands {
		if _, ok := core.ToFloat(o); !ok {
			return false
		}
	}
	return true
}
