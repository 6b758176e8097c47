// Package snbt implements the textual NBT codec (spec §4.3): a
// recursive-descent lexer/parser that reads tags from text, and a
// printer that emits canonical text back.
package snbt

import (
	"fmt"

	"github.com/aetherworks/anvil/errs"
	"github.com/aetherworks/anvil/tag"
)

// Parse reads a single tag from s. Trailing non-whitespace after a
// complete value is a syntax error (spec §4.3).
func Parse(s string) (tag.Tag, error) {
	c := &cursor{s: s}
	c.skipSpace()
	if c.eof() {
		return nil, fmt.Errorf("%w: empty input", errs.ErrSyntax)
	}

	v, err := parseValue(c)
	if err != nil {
		return nil, err
	}

	c.skipSpace()
	if !c.eof() {
		return nil, fmt.Errorf("%w: trailing input at byte %d", errs.ErrSyntax, c.pos)
	}
	return v, nil
}

func parseValue(c *cursor) (tag.Tag, error) {
	c.skipSpace()
	if c.eof() {
		return nil, fmt.Errorf("%w: nothing to parse", errs.ErrSyntax)
	}

	switch b := c.peek(); {
	case b == '"' || b == '\'':
		s, err := parseQuotedString(c)
		if err != nil {
			return nil, err
		}
		st, err := tag.NewString(s)
		if err != nil {
			return nil, err
		}
		return st, nil

	case b == '[' && isArrayPrefix(c):
		return parseTypedArray(c)

	case b == '[':
		return parseList(c)

	case b == '{':
		return parseCompound(c)

	default:
		return parseNumberBoolOrString(c)
	}
}

// isArrayPrefix reports whether the cursor sits on "[X;" for X in B, I, L.
func isArrayPrefix(c *cursor) bool {
	x := c.peekAt(1)
	return (x == 'B' || x == 'I' || x == 'L') && c.peekAt(2) == ';'
}

// parseQuotedString parses a ', or "-delimited string with backslash
// escapes for the opening quote character and for backslash itself.
func parseQuotedString(c *cursor) (string, error) {
	quote := c.advance()
	start := c.pos
	var out []byte
	plain := true // true while no escape has been seen, so we can return s[start:i] directly

	for {
		if c.eof() {
			return "", fmt.Errorf("%w: unclosed string literal", errs.ErrSyntax)
		}
		b := c.s[c.pos]
		if b == quote {
			if plain {
				out = []byte(c.s[start:c.pos])
			}
			c.pos++
			return string(out), nil
		}
		if b == '\\' && c.pos+1 < len(c.s) && (c.s[c.pos+1] == quote || c.s[c.pos+1] == '\\') {
			if plain {
				out = []byte(c.s[start:c.pos])
				plain = false
			}
			out = append(out, c.s[c.pos+1])
			c.pos += 2
			continue
		}
		if !plain {
			out = append(out, b)
		}
		c.pos++
	}
}

// parseTypedArray parses [B;...], [I;...] or [L;...].
func parseTypedArray(c *cursor) (tag.Tag, error) {
	c.advance() // '['
	kindLetter := c.advance()
	c.advance() // ';'

	var byteVals []int8
	var intVals []int32
	var longVals []int64
	count := 0

	for {
		c.skipSpace()
		if c.eof() {
			return nil, fmt.Errorf("%w: unclosed array literal", errs.ErrSyntax)
		}
		if c.peek() == ']' {
			c.advance()
			break
		}
		if count > 0 {
			if c.peek() != ',' {
				return nil, fmt.Errorf("%w: array elements must be comma-separated", errs.ErrSyntax)
			}
			c.advance()
			c.skipSpace()
		}

		tokStart := c.pos
		tok := c.scanUnquotedToken()
		if tok == "" {
			return nil, fmt.Errorf("%w: expected an integer in array literal", errs.ErrSyntax)
		}
		lit, ok := scanNumberLiteral(tok)
		if !ok || lit.asFloat() {
			return nil, fmt.Errorf("%w: expected integer at byte %d", errs.ErrMismatchedArray, tokStart)
		}

		suffix := lit.suffix
		if suffix == 0 {
			suffix = 'i'
		}
		if suffix != kindLetterSuffix(kindLetter) {
			return nil, fmt.Errorf("%w: element suffix %q does not match array kind %q", errs.ErrMismatchedArray, suffix, kindLetter)
		}

		switch kindLetter {
		case 'B':
			byteVals = append(byteVals, int8(lit.intWrapped(8)))
		case 'I':
			intVals = append(intVals, int32(lit.intWrapped(32)))
		case 'L':
			longVals = append(longVals, lit.intWrapped(64))
		}
		count++
	}

	switch kindLetter {
	case 'B':
		return tag.NewByteArray(byteVals), nil
	case 'L':
		return tag.NewLongArray(longVals), nil
	default:
		return tag.NewIntArray(intVals), nil
	}
}

func kindLetterSuffix(kindLetter byte) byte {
	switch kindLetter {
	case 'B':
		return 'b'
	case 'L':
		return 'l'
	default:
		return 'i'
	}
}

// parseList parses a [v1,v2,...] list. The element kind is fixed by the
// first parsed element; an empty list defaults to Int (spec §4.3, chosen
// "as good as any" for test determinism).
func parseList(c *cursor) (tag.Tag, error) {
	c.advance() // '['

	var elements []tag.Tag
	var elemKind tag.Kind
	haveKind := false

	for {
		c.skipSpace()
		if c.eof() {
			return nil, fmt.Errorf("%w: unclosed list literal", errs.ErrSyntax)
		}
		if c.peek() == ']' {
			c.advance()
			break
		}
		if len(elements) > 0 {
			if c.peek() != ',' {
				return nil, fmt.Errorf("%w: list elements must be comma-separated", errs.ErrSyntax)
			}
			c.advance()
			c.skipSpace()
			if !c.eof() && c.peek() == ']' {
				return nil, fmt.Errorf("%w: trailing comma in list literal", errs.ErrSyntax)
			}
		}

		v, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		if !haveKind {
			elemKind = v.Kind()
			haveKind = true
		} else if v.Kind() != elemKind {
			return nil, fmt.Errorf("%w: element kind %s does not match list kind %s", errs.ErrHeterogeneousList, v.Kind(), elemKind)
		}
		elements = append(elements, v)
	}

	if !haveKind {
		elemKind = tag.KindInt
	}
	return tag.NewList(elemKind, elements...)
}

// parseCompound parses a {k:v,...} compound. Keys are unquoted (same
// charset as UnquotedString) or quoted.
func parseCompound(c *cursor) (tag.Tag, error) {
	c.advance() // '{'
	out := tag.NewCompound()
	seenAny := false

	for {
		c.skipSpace()
		if c.eof() {
			return nil, fmt.Errorf("%w: unclosed compound literal", errs.ErrSyntax)
		}
		if c.peek() == '}' {
			c.advance()
			break
		}
		if seenAny {
			if c.peek() != ',' {
				return nil, fmt.Errorf("%w: compound entries must be comma-separated", errs.ErrSyntax)
			}
			c.advance()
			c.skipSpace()
			if !c.eof() && c.peek() == '}' {
				return nil, fmt.Errorf("%w: trailing comma in compound literal", errs.ErrSyntax)
			}
		}

		var key string
		var err error
		if b := c.peek(); b == '"' || b == '\'' {
			key, err = parseQuotedString(c)
		} else {
			key = c.scanUnquotedToken()
			if key == "" {
				err = fmt.Errorf("%w: expected a compound key", errs.ErrSyntax)
			}
		}
		if err != nil {
			return nil, err
		}

		c.skipSpace()
		if c.eof() || c.peek() != ':' {
			return nil, fmt.Errorf("%w: expected ':' after compound key %q", errs.ErrSyntax, key)
		}
		c.advance()

		value, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		if err := out.Set(key, value); err != nil {
			return nil, err
		}
		seenAny = true
	}

	return out, nil
}

// parseNumberBoolOrString handles the fallback branch of the
// disambiguation rule: scan an unquoted token, then try float, then
// integer, then the true/false literals, then fall back to String.
func parseNumberBoolOrString(c *cursor) (tag.Tag, error) {
	start := c.pos
	tok := c.scanUnquotedToken()
	if tok == "" {
		return nil, fmt.Errorf("%w: unexpected character %q at byte %d", errs.ErrSyntax, c.peek(), c.pos)
	}

	if lit, ok := scanNumberLiteral(tok); ok {
		if lit.asFloat() {
			v, err := lit.floatValue()
			if err != nil {
				return nil, fmt.Errorf("%w: malformed float literal %q", errs.ErrSyntax, tok)
			}
			if lit.suffix == 'f' {
				return tag.NewFloat(v), nil
			}
			return tag.NewDouble(v), nil
		}

		switch lit.suffix {
		case 'b':
			return tag.NewByte(lit.intWrapped(8)), nil
		case 's':
			return tag.NewShort(lit.intWrapped(16)), nil
		case 'l':
			return tag.NewLong(lit.intWrapped(64)), nil
		default:
			return tag.NewInt(lit.intWrapped(32)), nil
		}
	}

	switch tok {
	case "true":
		return tag.NewByte[int8](1), nil
	case "false":
		return tag.NewByte[int8](0), nil
	}

	s, err := tag.NewString(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: at byte %d: %v", errs.ErrSyntax, start, err)
	}
	return s, nil
}
