package contentstream

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/obrafacil/takeoff/core"
)

func TestPathOpArgCount(t *testing.T) {
	tests := []struct {
		op       PathOp
		expected int
	}{
		{PathMoveTo, 2},
		{PathLineTo, 2},
		{PathCurveTo, 6},
		{PathCurveTo2, 4},
		{PathCurveTo3, 4},
		{PathClosePath, 0},
		{PathRectangle, 4},
		{PathOp(99), -1},
	}

	for _, tt := range tests {
		if got := tt.op.ArgCount(); got != tt.expected {
			t.Errorf("PathOp(%d).ArgCount() = %d, want %d", tt.op, got, tt.expected)
		}
	}
}

func TestPathOpFromObject(t *testing.T) {
	tests := []struct {
		name string
		obj  core.Object
		want PathOp
		ok   bool
	}{
		{"int opcode", core.Int(19), PathRectangle, true},
		{"real opcode", core.Real(14), PathLineTo, true},
		{"name", core.Name("c"), PathCurveTo, true},
		{"unknown int", core.Int(3), 0, false},
		{"unknown name", core.Name("S"), 0, false},
		{"string", core.String("m"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PathOpFromObject(tt.obj)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("PathOpFromObject() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestConstructPaths(t *testing.T) {
	ops, err := NewParser([]byte("q 0 0 m 10 0 l h 1 2 3 4 re S 5 5 m Q")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	got := ConstructPaths(ops)
	want := []Operation{
		{Operator: "q"},
		{Operator: OpConstructPath, Operands: []core.Object{
			core.Array{core.Int(PathMoveTo), core.Int(PathLineTo), core.Int(PathClosePath), core.Int(PathRectangle)},
			core.Array{core.Int(0), core.Int(0), core.Int(10), core.Int(0), core.Int(1), core.Int(2), core.Int(3), core.Int(4)},
		}},
		{Operator: "S"},
		{Operator: OpConstructPath, Operands: []core.Object{
			core.Array{core.Int(PathMoveTo)},
			core.Array{core.Int(5), core.Int(5)},
		}},
		{Operator: "Q"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ConstructPaths() mismatch (-want +got):\n%s", diff)
	}
}

func TestConstructPathsKeepsMalformed(t *testing.T) {
	ops := []Operation{
		{Operator: "m", Operands: []core.Object{core.Int(0), core.Int(0)}},
		{Operator: "l", Operands: []core.Object{core.Int(1)}},
		{Operator: "l", Operands: []core.Object{core.Int(5), core.Int(5)}},
	}

	got := ConstructPaths(ops)
	if len(got) != 3 {
		t.Fatalf("expected 3 operations, got %d: %+v", len(got), got)
	}
	if got[0].Operator != OpConstructPath || got[1].Operator != "l" || got[2].Operator != OpConstructPath {
		t.Errorf("unexpected operators: %s %s %s", got[0].Operator, got[1].Operator, got[2].Operator)
	}
}

func TestIsPathConstruction(t *testing.T) {
	for _, op := range []string{"m", "l", "c", "v", "y", "h", "re"} {
		if !IsPathConstruction(op) {
			t.Errorf("IsPathConstruction(%q) = false", op)
		}
	}
	for _, op := range []string{"S", "f", "q", "cm", "W"} {
		if IsPathConstruction(op) {
			t.Errorf("IsPathConstruction(%q) = true", op)
		}
	}
}
