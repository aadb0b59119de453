package jsonly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
	}{
		{description: "null", input: "null"},
		{description: "bool", input: "true"},
		{description: "number", input: "-1.5e2"},
		{description: "string", input: `"foo bar"`},
		{description: "escaped string", input: `"a\nb\\c\"d"`},
		{description: "array", input: `["foo",2,null,false]`},
		{description: "object", input: `{"a":1,"b":[true,"x"],"c":{"d":null}}`},
		{description: "deep nesting", input: `[[[["deep"]]]]`},
	}

	for _, testCase := range testCases {
		first, err := ParseString(testCase.input)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		text := Stringify(first)
		second, err := Parse(text)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.True(t, Equal(first, second), testCase.description)
	}
}

func TestRoundTrip_EscapeAsymmetry(t *testing.T) {
	// \n survives a full cycle: decoded to a literal newline, re-escaped on
	// output. \t decodes but is emitted raw; the raw tab then re-parses to
	// the same value because the decoder passes unescaped bytes through.
	v, err := ParseString(`"a\nb\tc"`)
	assert.Nil(t, err)
	assert.Equal(t, "a\nb\tc", v.Text())

	text := string(Stringify(v))
	assert.Equal(t, "\"a\\nb\tc\"", text)

	back, err := ParseString(text)
	assert.Nil(t, err)
	assert.True(t, Equal(v, back))
}

func TestRoundTrip_Programmatic(t *testing.T) {
	doc := NewObject()
	doc.Object().Set("name", NewString("jsonly"))
	doc.Object().Set("version", NewNumber(1))
	doc.Object().Set("tags", NewArray(NewString("codec"), NewString("tree")))
	doc.Object().Set("stable", NewBool(true))
	doc.Object().Set("deprecated", Null())

	back, err := Parse(Stringify(doc))
	assert.Nil(t, err)
	assert.True(t, Equal(doc, back))
	assert.Equal(t, []string{"name", "version", "tags", "stable", "deprecated"}, back.Object().Keys())
}
