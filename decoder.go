package jsonly

import (
	"fmt"
	"io"
	"strconv"

	"github.com/viant/jsonly/source"
)

// decoder performs recursive descent over a byte source with one byte of
// lookahead. It consumes exactly one JSON value and leaves trailing bytes
// unread in the source.
type decoder struct {
	src   source.Source
	opts  *Options
	depth int
}

func (d *decoder) offset() int64 {
	return d.src.Offset()
}

// readByte maps the source's io.EOF into the typed end of stream error.
// production names the grammar production being read, for diagnostics.
func (d *decoder) readByte(production string) (byte, error) {
	c, err := d.src.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, endOfStreamError(d.offset(), production, err)
		}
		return 0, d.readFailure(err)
	}
	return c, nil
}

// readFailure wraps a non EOF source error with the current position.
func (d *decoder) readFailure(err error) error {
	return fmt.Errorf("read failed at %d: %w", d.offset(), err)
}

// skipWhitespace discards space, tab, carriage return and line feed bytes and
// pushes back the first byte that is none of those. Exhaustion is not an
// error here; the next read decides whether EOF is legal.
func (d *decoder) skipWhitespace() error {
	for {
		c, err := d.src.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return d.readFailure(err)
		}
		switch c {
		case ' ', '\t', '\r', '\n':
		default:
			d.src.Unread(c)
			return nil
		}
	}
}

func (d *decoder) parseValue() (*Value, error) {
	if err := d.skipWhitespace(); err != nil {
		return nil, err
	}
	c, err := d.src.ReadByte()
	if err != nil {
		if err == io.EOF {
			return nil, endOfStreamError(d.offset(), "value", err)
		}
		return nil, d.readFailure(err)
	}
	d.src.Unread(c)
	if d.opts.MaxDepth > 0 && d.depth >= d.opts.MaxDepth {
		return nil, syntaxErrorf(d.offset(), "nesting exceeds %d levels", d.opts.MaxDepth)
	}
	d.depth++
	v, err := d.parseDispatch(c)
	d.depth--
	return v, err
}

// parseDispatch selects a production by the pushed back byte c.
func (d *decoder) parseDispatch(c byte) (*Value, error) {
	switch {
	case c == '{':
		return d.parseObject()
	case c == '[':
		return d.parseArray()
	case c == '"':
		return d.parseString()
	case c == 't' || c == 'f':
		return d.parseBool()
	case c == 'n':
		return d.parseNull()
	case c >= '0' && c <= '9', c == '-', c == '.', c == 'e':
		return d.parseNumber()
	}
	return nil, syntaxErrorf(d.offset(), "unexpected character %q", c)
}

func (d *decoder) parseObject() (*Value, error) {
	c, err := d.readByte("object")
	if err != nil {
		return nil, err
	}
	if c != '{' {
		return nil, syntaxErrorf(d.offset(), "expected '{', got %q", c)
	}
	obj := NewObject()
	if err = d.skipWhitespace(); err != nil {
		return nil, err
	}
	c, err = d.readByte("object")
	if err != nil {
		return nil, err
	}
	if c == '}' {
		return obj, nil
	}
	d.src.Unread(c)
	entries := obj.Object()
	for {
		if err = d.skipWhitespace(); err != nil {
			return nil, err
		}
		key, err := d.parseStringText()
		if err != nil {
			return nil, err
		}
		if err = d.skipWhitespace(); err != nil {
			return nil, err
		}
		c, err = d.readByte("object")
		if err != nil {
			return nil, err
		}
		if c != ':' {
			return nil, syntaxErrorf(d.offset(), "expected ':' after object key, got %q", c)
		}
		value, err := d.parseValue()
		if err != nil {
			return nil, err
		}
		entries.Set(key, value)
		if err = d.skipWhitespace(); err != nil {
			return nil, err
		}
		c, err = d.readByte("object")
		if err != nil {
			return nil, err
		}
		if c == '}' {
			return obj, nil
		}
		if d.opts.Separator == StrictSeparators && c != ',' {
			return nil, syntaxErrorf(d.offset(), "expected ',' or '}' in object, got %q", c)
		}
		// Lenient mode treats any non '}' byte as "more entries follow";
		// the next key parse rejects anything that is not a string.
	}
}

func (d *decoder) parseArray() (*Value, error) {
	c, err := d.readByte("array")
	if err != nil {
		return nil, err
	}
	if c != '[' {
		return nil, syntaxErrorf(d.offset(), "expected '[', got %q", c)
	}
	arr := NewArray()
	if err = d.skipWhitespace(); err != nil {
		return nil, err
	}
	c, err = d.readByte("array")
	if err != nil {
		return nil, err
	}
	if c == ']' {
		return arr, nil
	}
	d.src.Unread(c)
	for {
		item, err := d.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Append(item)
		if err = d.skipWhitespace(); err != nil {
			return nil, err
		}
		c, err = d.readByte("array")
		if err != nil {
			return nil, err
		}
		if c == ']' {
			return arr, nil
		}
		if c != ',' {
			return nil, syntaxErrorf(d.offset(), "expected ',' or ']' in array, got %q", c)
		}
	}
}

func (d *decoder) parseString() (*Value, error) {
	text, err := d.parseStringText()
	if err != nil {
		return nil, err
	}
	return NewString(text), nil
}

// parseStringText consumes a quoted string and decodes its escapes. The
// recognized escapes are \\ \" \n \r \t; for any other escape the backslash
// is dropped and the following byte taken literally.
func (d *decoder) parseStringText() (string, error) {
	c, err := d.readByte("string")
	if err != nil {
		return "", err
	}
	if c != '"' {
		return "", syntaxErrorf(d.offset(), "expected '\"', got %q", c)
	}
	var buf []byte
	for {
		c, err = d.readByte("string")
		if err != nil {
			return "", err
		}
		switch c {
		case '"':
			return string(buf), nil
		case '\\':
			esc, err := d.readByte("string")
			if err != nil {
				return "", err
			}
			switch esc {
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			default:
				// Covers \\ and \" as well as unrecognized escapes.
				buf = append(buf, esc)
			}
		default:
			buf = append(buf, c)
		}
	}
}

func isBoolAlphabet(c byte) bool {
	switch c {
	case 't', 'r', 'u', 'e', 'f', 'a', 'l', 's':
		return true
	}
	return false
}

func isNullAlphabet(c byte) bool {
	return c == 'n' || c == 'u' || c == 'l'
}

func isNumberAlphabet(c byte) bool {
	return c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E'
}

// collectToken accumulates bytes accepted by the alphabet; the first rejected
// byte is pushed back and exhaustion simply ends the token.
func (d *decoder) collectToken(alphabet func(byte) bool) (string, error) {
	var buf []byte
	for {
		c, err := d.src.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", d.readFailure(err)
		}
		if !alphabet(c) {
			d.src.Unread(c)
			break
		}
		buf = append(buf, c)
	}
	return string(buf), nil
}

// matchKeyword consumes word byte for byte; used by the exact literal policy.
func (d *decoder) matchKeyword(word string) error {
	for i := 0; i < len(word); i++ {
		c, err := d.readByte("literal")
		if err != nil {
			return err
		}
		if c != word[i] {
			return syntaxErrorf(d.offset(), "invalid literal, expected %q", word)
		}
	}
	return nil
}

func (d *decoder) parseBool() (*Value, error) {
	if d.opts.Literal == ExactLiterals {
		c, err := d.readByte("literal")
		if err != nil {
			return nil, err
		}
		d.src.Unread(c)
		word := "true"
		if c == 'f' {
			word = "false"
		}
		if err = d.matchKeyword(word); err != nil {
			return nil, err
		}
		return NewBool(word == "true"), nil
	}
	start := d.offset()
	token, err := d.collectToken(isBoolAlphabet)
	if err != nil {
		return nil, err
	}
	switch token {
	case "true":
		return NewBool(true), nil
	case "false":
		return NewBool(false), nil
	}
	return nil, syntaxErrorf(start, "invalid literal %q", token)
}

func (d *decoder) parseNull() (*Value, error) {
	if d.opts.Literal == ExactLiterals {
		if err := d.matchKeyword("null"); err != nil {
			return nil, err
		}
		return Null(), nil
	}
	start := d.offset()
	token, err := d.collectToken(isNullAlphabet)
	if err != nil {
		return nil, err
	}
	if token != "null" {
		return nil, syntaxErrorf(start, "invalid literal %q", token)
	}
	return Null(), nil
}

// parseNumber accumulates the full JSON number alphabet, a superset of the
// dispatch set, and defers validation to strconv.
func (d *decoder) parseNumber() (*Value, error) {
	start := d.offset()
	token, err := d.collectToken(isNumberAlphabet)
	if err != nil {
		return nil, err
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, numberError(start, token, err)
	}
	return NewNumber(f), nil
}
