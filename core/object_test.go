package core

import "testing"

func TestObjectStrings(t *testing.T) {
	tests := []struct {
		name     string
		obj      Object
		typ      ObjectType
		expected string
	}{
		{"null", Null{}, ObjNull, "null"},
		{"true", Bool(true), ObjBool, "true"},
		{"int", Int(-42), ObjInt, "-42"},
		{"real", Real(3.5), ObjReal, "3.5"},
		{"string", String("Planta Baixa"), ObjString, "Planta Baixa"},
		{"name", Name("F1"), ObjName, "/F1"},
		{"array", Array{Int(1), Real(2.5), Name("re")}, ObjArray, "[1 2.5 /re]"},
		{"dict", Dict{"W": Int(10), "H": Int(20)}, ObjDict, "<</H 20 /W 10>>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.obj.Type() != tt.typ {
				t.Errorf("Type() = %v, want %v", tt.obj.Type(), tt.typ)
			}
			if got := tt.obj.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
		want float64
		ok   bool
	}{
		{"int", Int(7), 7, true},
		{"real", Real(-1.25), -1.25, true},
		{"name", Name("m"), 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat(tt.obj)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ToFloat() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestArrayFloat(t *testing.T) {
	a := Array{Int(1), Real(2.5), String("x")}
	if v, ok := a.Float(1); !ok || v != 2.5 {
		t.Errorf("Float(1) = %v, %v", v, ok)
	}
	if _, ok := a.Float(2); ok {
		t.Error("Float(2) should fail for a string")
	}
	if _, ok := a.Float(5); ok {
		t.Error("Float(5) should fail out of range")
	}
}
