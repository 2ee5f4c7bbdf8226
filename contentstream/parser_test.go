package contentstream

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/obrafacil/takeoff/core"
)

// TestParseSimpleOperator tests parsing a simple operator with no operands
func TestParseSimpleOperator(t *testing.T) {
	ops, err := NewParser([]byte("q")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Operator != "q" {
		t.Errorf("expected operator 'q', got %q", ops[0].Operator)
	}
	if len(ops[0].Operands) != 0 {
		t.Errorf("expected 0 operands, got %d", len(ops[0].Operands))
	}
}

// TestParsePathConstruction tests the operators the line extractor consumes
func TestParsePathConstruction(t *testing.T) {
	input := []byte(`q
0.5 w
1 0 0 1 10.5 -20 cm
10 10 m
60 10 l
10 10 50 20 re
S
Q`)
	ops, err := NewParser(input).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []Operation{
		{Operator: "q"},
		{Operator: "w", Operands: []core.Object{core.Real(0.5)}},
		{Operator: "cm", Operands: []core.Object{core.Int(1), core.Int(0), core.Int(0), core.Int(1), core.Real(10.5), core.Int(-20)}},
		{Operator: "m", Operands: []core.Object{core.Int(10), core.Int(10)}},
		{Operator: "l", Operands: []core.Object{core.Int(60), core.Int(10)}},
		{Operator: "re", Operands: []core.Object{core.Int(10), core.Int(10), core.Int(50), core.Int(20)}},
		{Operator: "S"},
		{Operator: "Q"},
	}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

// TestParseTextBlock tests a text object with font and positioning
func TestParseTextBlock(t *testing.T) {
	input := []byte(`BT
/F1 12 Tf
100 700 Td
(Planta Baixa) Tj
[(3,) -120 (45)] TJ
(next) '
ET`)
	ops, err := NewParser(input).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []string{"BT", "Tf", "Td", "Tj", "TJ", "'", "ET"}
	if len(ops) != len(expected) {
		t.Fatalf("expected %d operations, got %d", len(expected), len(ops))
	}
	for i, op := range expected {
		if ops[i].Operator != op {
			t.Errorf("operation %d: expected %q, got %q", i, op, ops[i].Operator)
		}
	}

	if s, ok := ops[3].Operands[0].(core.String); !ok || s != "Planta Baixa" {
		t.Errorf("Tj operand = %v", ops[3].Operands[0])
	}
	arr, ok := ops[4].Operands[0].(core.Array)
	if !ok || len(arr) != 3 {
		t.Fatalf("TJ operand = %v", ops[4].Operands[0])
	}
}

// TestParseStrings tests literal and hex string decoding
func TestParseStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "(Hello) Tj", "Hello"},
		{"nested parentheses", "(a (b) c) Tj", "a (b) c"},
		{"escapes", `(line\n\(x\)) Tj`, "line\n(x)"},
		{"octal", `(\101\102) Tj`, "AB"},
		{"line continuation", "(ab\\\ncd) Tj", "abcd"},
		{"hex", "<48656C6C6F> Tj", "Hello"},
		{"hex odd length", "<414> Tj", "A@"},
		{"hex with whitespace", "<48 65 6c 6c 6f> Tj", "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := NewParser([]byte(tt.input)).Parse()
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(ops) != 1 || len(ops[0].Operands) != 1 {
				t.Fatalf("unexpected result: %+v", ops)
			}
			if got := ops[0].Operands[0].(core.String); string(got) != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestParseNumbers tests integer and real operands
func TestParseNumbers(t *testing.T) {
	ops, err := NewParser([]byte("-5 .5 -.25 +3 17.0 x")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []core.Object{core.Int(-5), core.Real(0.5), core.Real(-0.25), core.Int(3), core.Real(17)}
	if diff := cmp.Diff(want, ops[0].Operands); diff != "" {
		t.Errorf("operands mismatch (-want +got):\n%s", diff)
	}
}

// TestParseKeywords tests that true/false/null are operands, not operators
func TestParseKeywords(t *testing.T) {
	ops, err := NewParser([]byte("true false null [true null] <</On false>> op")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 1 || ops[0].Operator != "op" {
		t.Fatalf("expected a single 'op' operation, got %+v", ops)
	}
	want := []core.Object{
		core.Bool(true),
		core.Bool(false),
		core.Null{},
		core.Array{core.Bool(true), core.Null{}},
		core.Dict{"On": core.Bool(false)},
	}
	if diff := cmp.Diff(want, ops[0].Operands); diff != "" {
		t.Errorf("operands mismatch (-want +got):\n%s", diff)
	}
}

// TestParseNames tests name escapes and delimiters
func TestParseNames(t *testing.T) {
	ops, err := NewParser([]byte("/A#20B/C[/D] Do")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []core.Object{core.Name("A B"), core.Name("C"), core.Array{core.Name("D")}}
	if diff := cmp.Diff(want, ops[0].Operands); diff != "" {
		t.Errorf("operands mismatch (-want +got):\n%s", diff)
	}
}

// TestParseWithComments tests that % comments are skipped
func TestParseWithComments(t *testing.T) {
	input := []byte(`% frame
q % save
1 0 0 1 5 5 cm
Q`)
	ops, err := NewParser(input).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []string{"q", "cm", "Q"}
	if len(ops) != len(expected) {
		t.Fatalf("expected %d operations, got %d", len(expected), len(ops))
	}
	for i, op := range expected {
		if ops[i].Operator != op {
			t.Errorf("operation %d: expected %q, got %q", i, op, ops[i].Operator)
		}
	}
}

// TestParseInlineImage tests that inline image data is skipped
func TestParseInlineImage(t *testing.T) {
	input := []byte("q BI /W 2 /H 1 /BPC 8 ID \x00\xff EI Q 0 0 m")
	ops, err := NewParser(input).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []string{"q", "Q", "m"}
	if len(ops) != len(expected) {
		t.Fatalf("expected %d operations, got %d: %+v", len(expected), len(ops), ops)
	}
	for i, op := range expected {
		if ops[i].Operator != op {
			t.Errorf("operation %d: expected %q, got %q", i, op, ops[i].Operator)
		}
	}
}

// TestParseOperatorWithDigits tests Type 3 glyph operators
func TestParseOperatorWithDigits(t *testing.T) {
	ops, err := NewParser([]byte("500 0 d0")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 1 || ops[0].Operator != "d0" {
		t.Errorf("got %+v", ops)
	}
}

// TestParseEmptyInput tests empty and whitespace-only streams
func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "  \n\t\r "} {
		ops, err := NewParser([]byte(input)).Parse()
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		if len(ops) != 0 {
			t.Errorf("Parse(%q) = %d operations, want 0", input, len(ops))
		}
	}
}

// TestParseMalformed tests that Parse reports syntax errors
func TestParseMalformed(t *testing.T) {
	tests := []string{
		"(unclosed Tj",
		"[1 2 3",
		"<zz> Tj",
		"0 0 m ) l",
		"<</K 1",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := NewParser([]byte(input)).Parse(); err == nil {
				t.Errorf("expected error for %q", input)
			}
		})
	}
}

// TestParsePartial tests that operations before a syntax error are kept
func TestParsePartial(t *testing.T) {
	input := []byte("0 0 m 100 0 l S 5 ) 7 l")
	ops, err := NewParser(input).ParsePartial()
	if err == nil {
		t.Fatal("expected error")
	}

	expected := []string{"m", "l", "S"}
	if len(ops) != len(expected) {
		t.Fatalf("expected %d operations, got %d", len(expected), len(ops))
	}
	for i, op := range expected {
		if ops[i].Operator != op {
			t.Errorf("operation %d: expected %q, got %q", i, op, ops[i].Operator)
		}
	}
}

// TestParseConcurrent tests that parsers do not share operand state
func TestParseConcurrent(t *testing.T) {
	input := []byte("1 2 3 4 re 5 6 m 7 8 l S")

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				ops, err := NewParser(input).Parse()
				if err != nil {
					errs <- err.Error()
					return
				}
				if len(ops) != 4 || len(ops[0].Operands) != 4 || len(ops[1].Operands) != 2 {
					errs <- "operand leak between parsers"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
}

// ============================================================================
// Helper Tests
// ============================================================================

func TestHexValue(t *testing.T) {
	tests := []struct {
		input    byte
		expected byte
	}{
		{'0', 0}, {'9', 9}, {'a', 10}, {'f', 15}, {'A', 10}, {'F', 15}, {'g', 0},
	}

	for _, tt := range tests {
		if got := hexValue(tt.input); got != tt.expected {
			t.Errorf("hexValue(%c) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestIsDelimiter(t *testing.T) {
	for _, c := range []byte("()<>[]{}/%") {
		if !isDelimiter(c) {
			t.Errorf("isDelimiter(%c) = false, want true", c)
		}
	}
	for _, c := range []byte("a0 .") {
		if isDelimiter(c) {
			t.Errorf("isDelimiter(%c) = true, want false", c)
		}
	}
}
