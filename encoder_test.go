package jsonly

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	var testCases = []struct {
		description string
		value       *Value
		expect      string
	}{
		{
			description: "null",
			value:       Null(),
			expect:      "null",
		},
		{
			description: "nil value renders as null",
			value:       nil,
			expect:      "null",
		},
		{
			description: "booleans",
			value:       NewArray(NewBool(true), NewBool(false)),
			expect:      "[true,false]",
		},
		{
			description: "integral double",
			value:       NewNumber(2),
			expect:      "2",
		},
		{
			description: "negative scaled double",
			value:       NewNumber(-150),
			expect:      "-150",
		},
		{
			description: "fraction",
			value:       NewNumber(0.5),
			expect:      "0.5",
		},
		{
			description: "newline re-escaped",
			value:       NewString("a\nb"),
			expect:      `"a\nb"`,
		},
		{
			description: "carriage return re-escaped",
			value:       NewString("a\rb"),
			expect:      `"a\rb"`,
		},
		{
			description: "tab passes through raw",
			value:       NewString("a\tb"),
			expect:      "\"a\tb\"",
		},
		{
			description: "quote and backslash re-escaped",
			value:       NewString(`a"b\c`),
			expect:      `"a\"b\\c"`,
		},
		{
			description: "empty containers",
			value:       NewArray(NewArray(), NewObject()),
			expect:      "[[],{}]",
		},
		{
			description: "object pairs in insertion order, no whitespace",
			value: func() *Value {
				v := NewObject()
				v.Object().Set("b", NewNumber(2))
				v.Object().Set("a", NewNumber(1))
				return v
			}(),
			expect: `{"b":2,"a":1}`,
		},
		{
			description: "object keys escaped like string values",
			value: func() *Value {
				v := NewObject()
				v.Object().Set("a\nb", Null())
				return v
			}(),
			expect: `{"a\nb":null}`,
		},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, string(Stringify(testCase.value)), testCase.description)
	}
}

func TestStringify_LargeExponentRoundTrips(t *testing.T) {
	out := string(Stringify(NewNumber(1e21)))
	assert.Equal(t, "1e+21", out)
	back, err := ParseString(out)
	assert.Nil(t, err)
	assert.Equal(t, 1e21, back.Float())
}

func TestStringifyTo(t *testing.T) {
	var buf bytes.Buffer
	err := StringifyTo(&buf, NewArray(NewString("foo"), NewNumber(2)))
	assert.Nil(t, err)
	assert.Equal(t, `["foo",2]`, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestStringifyTo_WriteFailure(t *testing.T) {
	err := StringifyTo(failingWriter{}, Null())
	assert.NotNil(t, err)
}

func TestStringify_OversizedSessionNotPooled(t *testing.T) {
	text := strings.Repeat("x", maxSessionBuffer)
	out := Stringify(NewArray(NewString(text)))
	assert.Equal(t, `["`+text+`"]`, string(out))

	// The session that grew past maxSessionBuffer is dropped rather than
	// pooled; subsequent small encodes behave as before.
	assert.Equal(t, "true", string(Stringify(NewBool(true))))
}

func TestAppendValue(t *testing.T) {
	buf := append([]byte(nil), "prefix:"...)
	buf = AppendValue(buf, NewBool(true))
	assert.Equal(t, "prefix:true", string(buf))
}
