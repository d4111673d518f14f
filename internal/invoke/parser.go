// Package invoke parses legacy inline-handler call expressions of the
// form funcName(arg1, 'arg2', ...) into structured invocations.
//
// The grammar is deliberately small: a handler name, a parenthesized
// argument list, and arguments that are either bare numerals/identifiers
// or single-quoted string literals. Arbitrary JavaScript is rejected,
// with one carve-out: a lone this.-rooted expression (the
// closeModal(this.closest('.fixed')) idiom) parses as a call with no
// literal arguments.
package invoke

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInvocation is returned when an input string does not
// match the legacy call-expression grammar.
var ErrMalformedInvocation = errors.New("malformed invocation")

// Invocation is a parsed legacy inline-handler call. Args holds the
// positional argument values in order, with string-literal quotes
// already stripped.
type Invocation struct {
	Func string
	Args []string
}

// Parse parses a canonical legacy call-expression string. It either
// fully succeeds or returns an error wrapping ErrMalformedInvocation;
// there are no partial results.
func Parse(raw string) (Invocation, error) {
	p := &parser{input: strings.TrimSpace(raw)}

	inv, err := p.parseCall()
	if err != nil {
		return Invocation{}, fmt.Errorf("%w: %q: %v", ErrMalformedInvocation, raw, err)
	}

	return inv, nil
}

// parser is a single-pass scanner over one call expression.
type parser struct {
	input string
	pos   int
}

func (p *parser) parseCall() (Invocation, error) {
	name, err := p.parseIdent()
	if err != nil {
		return Invocation{}, err
	}

	p.skipSpaces()

	if !p.consume('(') {
		return Invocation{}, fmt.Errorf("expected '(' at offset %d", p.pos)
	}

	args, err := p.parseArgs()
	if err != nil {
		return Invocation{}, err
	}

	if !p.consume(')') {
		return Invocation{}, fmt.Errorf("expected ')' at offset %d", p.pos)
	}

	p.skipSpaces()

	if p.pos != len(p.input) {
		return Invocation{}, fmt.Errorf("trailing characters at offset %d", p.pos)
	}

	return Invocation{Func: name, Args: args}, nil
}

// parseArgs parses the argument list up to, but not including, the
// closing parenthesis.
func (p *parser) parseArgs() ([]string, error) {
	p.skipSpaces()

	if p.peek() == ')' {
		return nil, nil
	}

	// The closeModal(this.closest('.fixed')) idiom: a single
	// this.-rooted expression carries no literal arguments.
	if p.hasThisExpr() {
		return nil, p.skipThisExpr()
	}

	var args []string

	for {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		p.skipSpaces()

		if p.peek() != ',' {
			return args, nil
		}

		p.pos++ // consume ','
		p.skipSpaces()

		if p.peek() == ')' {
			return nil, fmt.Errorf("trailing comma at offset %d", p.pos)
		}
	}
}

// parseArg parses one argument: a single-quoted string literal or a
// bare numeral/identifier token.
func (p *parser) parseArg() (string, error) {
	p.skipSpaces()

	if p.peek() == '\'' {
		return p.parseQuoted()
	}

	start := p.pos
	for p.pos < len(p.input) && isBareArgChar(p.input[p.pos]) {
		p.pos++
	}

	if p.pos == start {
		return "", fmt.Errorf("expected argument at offset %d", start)
	}

	return p.input[start:p.pos], nil
}

// parseQuoted parses a single-quoted string literal and strips the
// quotes. The literal may not contain an unescaped single quote.
func (p *parser) parseQuoted() (string, error) {
	start := p.pos
	p.pos++ // consume opening quote

	for p.pos < len(p.input) {
		if p.input[p.pos] == '\'' {
			value := p.input[start+1 : p.pos]
			p.pos++ // consume closing quote

			return value, nil
		}

		p.pos++
	}

	return "", fmt.Errorf("unterminated string literal at offset %d", start)
}

// parseIdent parses the handler function name.
func (p *parser) parseIdent() (string, error) {
	start := p.pos

	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if p.pos == start {
			if !isIdentStart(c) {
				break
			}
		} else if !isIdentPart(c) {
			break
		}

		p.pos++
	}

	if p.pos == start {
		return "", fmt.Errorf("expected function name at offset %d", start)
	}

	return p.input[start:p.pos], nil
}

// hasThisExpr reports whether the input at the current position starts
// a this.-rooted member expression.
func (p *parser) hasThisExpr() bool {
	return strings.HasPrefix(p.input[p.pos:], "this.")
}

// skipThisExpr consumes a this.-rooted expression up to the enclosing
// call's closing parenthesis, balancing nested parentheses and skipping
// over single-quoted literals. It must be the only argument.
func (p *parser) skipThisExpr() error {
	depth := 0

	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '\'':
			if _, err := p.parseQuoted(); err != nil {
				return err
			}

			continue
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return nil
			}

			depth--
		case ',':
			if depth == 0 {
				return fmt.Errorf("this-expression must be the only argument, found ',' at offset %d", p.pos)
			}
		}

		p.pos++
	}

	return fmt.Errorf("unbalanced parentheses at offset %d", p.pos)
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}

	return p.input[p.pos]
}

// consume advances past c if it is next, reporting whether it did.
func (p *parser) consume(c byte) bool {
	if p.peek() != c {
		return false
	}

	p.pos++

	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// isBareArgChar covers unquoted numerals and identifier-like tokens.
func isBareArgChar(c byte) bool {
	return isIdentPart(c) || c == '.' || c == '-'
}
