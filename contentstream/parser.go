package contentstream

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/obrafacil/takeoff/core"
)

// Operation represents a single content stream operation consisting of an
// operator and its operands. Operands are PDF objects that precede the operator.
type Operation struct {
	Operator string        // The operator (e.g., "Tj", "Tm", "q")
	Operands []core.Object // The operands
}

// Parser parses PDF content streams into a sequence of operations.
// Each operation consists of an operator and its operands.
type Parser struct {
	data     []byte
	pos      int
	ops      []Operation
	operands []core.Object // pending operands until the next operator
}

// NewParser creates a new content stream parser for the given data.
func NewParser(data []byte) *Parser {
	return &Parser{
		data: data,
		pos:  0,
		ops:  make([]Operation, 0),
	}
}

// Parse parses the content stream and returns all operations in order.
func (p *Parser) Parse() ([]Operation, error) {
	ops, err := p.ParsePartial()
	if err != nil {
		return nil, err
	}
	return ops, nil
}

// ParsePartial parses like Parse but, on a syntax error, also returns the
// operations completed before the error. Operands pending at the error
// position are discarded.
func (p *Parser) ParsePartial() ([]Operation, error) {
	for p.pos < len(p.data) {
		p.skipWhitespaceAndComments()

		if p.pos >= len(p.data) {
			break
		}

		if err := p.parseNext(); err != nil {
			p.operands = nil
			return p.ops, err
		}
	}

	return p.ops, nil
}

// parseNext parses the next token, which is either an operand (pushed onto the
// stack) or an operator (which consumes the operand stack and creates an Operation).
func (p *Parser) parseNext() error {
	start := p.pos

	c := p.data[p.pos]

	// Operators start with a letter or one of the quote operators. The
	// keywords true, false and null also start with a letter but are operands.
	if isLetter(c) || c == '\'' || c == '"' {
		if obj, ok := p.parseKeyword(); ok {
			p.operands = append(p.operands, obj)
			return nil
		}
		return p.parseOperator()
	}

	operand, err := p.parseOperand()
	if err != nil {
		return fmt.Errorf("at position %d: %w", start, err)
	}

	p.operands = append(p.operands, operand)
	return nil
}

// parseKeyword consumes true, false or null when the next token is exactly
// one of them.
func (p *Parser) parseKeyword() (core.Object, bool) {
	end := p.pos
	for end < len(p.data) && !isWhitespace(p.data[end]) && !isDelimiter(p.data[end]) {
		end++
	}

	var obj core.Object
	switch string(p.data[p.pos:end]) {
	case "true":
		obj = core.Bool(true)
	case "false":
		obj = core.Bool(false)
	case "null":
		obj = core.Null{}
	default:
		return nil, false
	}
	p.pos = end
	return obj, true
}

// parseOperator parses an operator and creates an operation with the current
// operand stack, then clears the stack.
func (p *Parser) parseOperator() error {
	start := p.pos

	// Read operator name: letters, quotes, '*' and trailing digits (d0, d1)
	var op bytes.Buffer
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isLetter(c) || c == '\'' || c == '"' || c == '*' || (op.Len() > 0 && c >= '0' && c <= '9') {
			op.WriteByte(c)
			p.pos++
		} else {
			break
		}
	}

	operator := op.String()
	if operator == "" {
		return fmt.Errorf("empty operator at position %d", start)
	}

	if operator == OpBeginInlineImage {
		p.operands = nil
		return p.skipInlineImage()
	}

	operation := Operation{
		Operator: operator,
		Operands: p.operands,
	}
	p.ops = append(p.ops, operation)
	p.operands = nil

	return nil
}

// skipInlineImage advances past an inline image (BI ... ID <data> EI). The
// image carries no geometry, so it produces no operation.
func (p *Parser) skipInlineImage() error {
	start := p.pos
	idx := bytes.Index(p.data[p.pos:], []byte("ID"))
	if idx < 0 {
		return fmt.Errorf("inline image at position %d: missing ID", start)
	}
	p.pos += idx + 2

	for p.pos+1 < len(p.data) {
		if p.data[p.pos] == 'E' && p.data[p.pos+1] == 'I' &&
			(p.pos == 0 || isWhitespace(p.data[p.pos-1])) &&
			(p.pos+2 >= len(p.data) || isWhitespace(p.data[p.pos+2]) || isDelimiter(p.data[p.pos+2])) {
			p.pos += 2
			return nil
		}
		p.pos++
	}
	return fmt.Errorf("inline image at position %d: missing EI", start)
}

// parseOperand parses a single operand, which can be a number, string, name,
// array or dictionary. The keywords true, false and null are handled by
// the callers.
func (p *Parser) parseOperand() (core.Object, error) {
	p.skipWhitespace()
	if p.pos >= len(p.data) {
		return nil, fmt.Errorf("unexpected end of stream")
	}

	switch c := p.data[p.pos]; {
	case c == '-' || c == '+' || c == '.' || isDigit(c):
		return p.parseNumber()
	case c == '(':
		return p.parseString()
	case c == '<' && p.peek(1) == '<':
		return p.parseDict()
	case c == '<':
		return p.parseHexString()
	case c == '/':
		return p.parseName()
	case c == '[':
		return p.parseArray()
	default:
		return nil, fmt.Errorf("unexpected character at position %d: %c", p.pos, c)
	}
}

// peek returns the byte n positions ahead, or 0 past the end.
func (p *Parser) peek(n int) byte {
	if p.pos+n < len(p.data) {
		return p.data[p.pos+n]
	}
	return 0
}

// parseNumber parses an integer or real number operand. A number with a
// decimal point is real, anything else an integer.
func (p *Parser) parseNumber() (core.Object, error) {
	start := p.pos
	if c := p.data[p.pos]; c == '+' || c == '-' {
		p.pos++
	}
	dot := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '.' && !dot {
			dot = true
		} else if !isDigit(c) {
			break
		}
		p.pos++
	}

	tok := string(p.data[start:p.pos])
	if dot {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real number %q: %w", tok, err)
		}
		return core.Real(v), nil
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", tok, err)
	}
	return core.Int(v), nil
}

// stringEscapes maps the single-character escapes of literal strings.
var stringEscapes = map[byte]byte{
	'n': '\n', 'r': '\r', 't': '\t', 'b': '\b', 'f': '\f',
	'(': '(', ')': ')', '\\': '\\',
}

// parseString parses a literal string (...). Balanced parentheses nest;
// a backslash starts an escape, an octal code or a line continuation.
func (p *Parser) parseString() (core.Object, error) {
	start := p.pos
	p.pos++ // (

	var out []byte
	for depth := 1; ; {
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed string at position %d", start)
		}
		c := p.data[p.pos]
		p.pos++

		switch c {
		case '(':
			depth++
		case ')':
			if depth--; depth == 0 {
				return core.String(out), nil
			}
		case '\\':
			if b, ok := p.unescape(); ok {
				out = append(out, b)
			}
			continue
		}
		out = append(out, c)
	}
}

// unescape decodes the escape after a backslash. It reports false for a
// line continuation, which contributes no byte.
func (p *Parser) unescape() (byte, bool) {
	if p.pos >= len(p.data) {
		return 0, false
	}
	c := p.data[p.pos]
	p.pos++

	switch {
	case c == '\r':
		if p.peek(0) == '\n' {
			p.pos++
		}
		return 0, false
	case c == '\n':
		return 0, false
	case c >= '0' && c <= '7':
		v := int(c - '0')
		for i := 0; i < 2 && p.peek(0) >= '0' && p.peek(0) <= '7'; i++ {
			v = v<<3 | int(p.data[p.pos]-'0')
			p.pos++
		}
		return byte(v), true
	}
	if b, ok := stringEscapes[c]; ok {
		return b, true
	}
	// unknown escape: the backslash is dropped
	return c, true
}

// parseHexString parses a hexadecimal string <...>. Whitespace between
// digits is ignored and an odd final digit is padded with 0.
func (p *Parser) parseHexString() (core.Object, error) {
	start := p.pos
	p.pos++ // <

	var digits []byte
	for {
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed hex string at position %d", start)
		}
		c := p.data[p.pos]
		p.pos++
		if c == '>' {
			break
		}
		if isWhitespace(c) {
			continue
		}
		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex digit: %c", c)
		}
		digits = append(digits, c)
	}

	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, len(digits)/2)
	for i := range out {
		out[i] = hexValue(digits[2*i])<<4 | hexValue(digits[2*i+1])
	}
	return core.String(out), nil
}

// parseName parses a name object /Name. #xx sequences are decoded; a # not
// followed by two hex digits is kept literally.
func (p *Parser) parseName() (core.Object, error) {
	p.pos++ // /

	var out []byte
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isWhitespace(c) || isDelimiter(c) {
			break
		}
		if c == '#' && isHexDigit(p.peek(1)) && isHexDigit(p.peek(2)) {
			out = append(out, hexValue(p.peek(1))<<4|hexValue(p.peek(2)))
			p.pos += 3
			continue
		}
		out = append(out, c)
		p.pos++
	}
	return core.Name(out), nil
}

// parseArray parses an array [...] of operands.
func (p *Parser) parseArray() (core.Object, error) {
	if p.data[p.pos] != '[' {
		return nil, fmt.Errorf("array must start with '['")
	}
	p.pos++ // skip '['

	var arr core.Array

	for {
		p.skipWhitespaceAndComments()

		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed array")
		}

		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}

		obj, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		arr = append(arr, obj)
	}
}

// parseDict parses a dictionary <<...>> (rare in content streams).
func (p *Parser) parseDict() (core.Object, error) {
	if p.pos+1 >= len(p.data) || p.data[p.pos] != '<' || p.data[p.pos+1] != '<' {
		return nil, fmt.Errorf("dictionary must start with '<<'")
	}
	p.pos += 2 // skip '<<'

	dict := make(core.Dict)

	for {
		p.skipWhitespaceAndComments()

		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed dictionary")
		}

		if p.pos+1 < len(p.data) && p.data[p.pos] == '>' && p.data[p.pos+1] == '>' {
			p.pos += 2
			return dict, nil
		}

		// Parse key (must be a name)
		if p.data[p.pos] != '/' {
			return nil, fmt.Errorf("dictionary key must be a name")
		}

		key, err := p.parseName()
		if err != nil {
			return nil, err
		}

		name, ok := key.(core.Name)
		if !ok {
			return nil, fmt.Errorf("expected name for dictionary key")
		}

		p.skipWhitespaceAndComments()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed dictionary")
		}

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		dict[string(name)] = value
	}
}

// parseValue parses an operand nested inside an array or dictionary, where
// the keywords true, false and null are also allowed.
func (p *Parser) parseValue() (core.Object, error) {
	if isLetter(p.data[p.pos]) {
		if obj, ok := p.parseKeyword(); ok {
			return obj, nil
		}
		return nil, fmt.Errorf("unexpected keyword at position %d", p.pos)
	}
	return p.parseOperand()
}

// skipWhitespace advances past PDF whitespace characters.
func (p *Parser) skipWhitespace() {
	for p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}
}

// skipWhitespaceAndComments advances past whitespace and % comments.
func (p *Parser) skipWhitespaceAndComments() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case isWhitespace(c):
			p.pos++
		case c == '%':
			for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
				p.pos++
			}
		default:
			return
		}
	}
}

// Helper functions

// isWhitespace reports whether c is a PDF whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDelimiter reports whether c is a PDF delimiter character.
func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' ||
		c == '[' || c == ']' || c == '{' || c == '}' ||
		c == '/' || c == '%'
}

// isDigit reports whether c is a decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isHexDigit reports whether c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	return isDigit(c) || (c|0x20 >= 'a' && c|0x20 <= 'f')
}

// hexValue returns the value of a hexadecimal digit, 0 for anything else.
func hexValue(c byte) byte {
	switch {
	case isDigit(c):
		return c - '0'
	case isHexDigit(c):
		return c|0x20 - 'a' + 10
	}
	return 0
}
