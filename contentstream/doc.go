// Package contentstream parses PDF content streams into operations.
//
// A content stream is a postfix program: operands followed by an operator.
// The [Parser] turns the decoded stream bytes into an ordered list of
// [Operation] values, the language-neutral operator IR consumed by the
// graphicsstate extractors:
//
//	ops, err := contentstream.NewParser(streamData).Parse()
//	for _, op := range ops {
//	    fmt.Printf("Operator: %s, Operands: %v\n", op.Operator, op.Operands)
//	}
//
// Each Parser keeps its own operand stack, so pages can be parsed from
// separate goroutines. [Parser.ParsePartial] keeps the operations completed
// before a syntax error so that a damaged stream still yields its leading
// geometry. Comments are skipped and inline images (BI ... ID ... EI) are
// dropped.
//
// # Composite paths
//
// Some producers (notably viewer operator lists) group path construction
// into one constructPath operation carrying an array of sub-operators
// ([PathOp]) and a flat number array. [ConstructPaths] converts a plain
// operator list to that form:
//
//	m l l h re S   =>   constructPath([13 14 14 18 19], [...]) S
//
// # Operators
//
// Graphics state: q, Q, cm, w.
// Path construction: m, l, c, v, y, h, re, constructPath.
// Text: BT, ET, Tf, TL, Td, TD, Tm, T*, Tj, TJ, ', ".
package contentstream
