// Package jsonly parses JSON text into an order preserving value tree and
// serializes the tree back to compact JSON text.
//
// The decoder is a recursive descent parser over a pull based byte source
// with a single byte of pushback (see the source subpackage). It consumes
// exactly one value and leaves trailing input unread. Object key order is
// first insertion order; a duplicate key overwrites its value in place.
//
// By default the decoder reproduces the reference behavior it was modeled
// on: object entries may be separated by any byte, true/false/null are
// matched greedily over their letter alphabets, and recursion depth is
// unbounded. ModeStrict, or the individual policies, tighten each of these.
package jsonly

import (
	"io"

	"github.com/viant/jsonly/source"
)

// Parse decodes one JSON value from data.
func Parse(data []byte, opts ...Option) (*Value, error) {
	return ParseSource(source.FromBytes(data), opts...)
}

// ParseString decodes one JSON value from s.
func ParseString(s string, opts ...Option) (*Value, error) {
	return ParseSource(source.FromString(s), opts...)
}

// ParseReader decodes one JSON value from r. Bytes past the value remain
// unread in the underlying reader, subject to source buffering.
func ParseReader(r io.Reader, opts ...Option) (*Value, error) {
	return ParseSource(source.FromReader(r), opts...)
}

// ParseSource decodes one JSON value from src. Trailing bytes stay in the
// source; callers that require exhausted input should check src themselves.
func ParseSource(src source.Source, opts ...Option) (*Value, error) {
	d := &decoder{src: src, opts: resolveOptions(opts)}
	return d.parseValue()
}
