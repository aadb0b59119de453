package jsonly

import (
	"io"
	"strconv"
	"sync"
)

type encoderSession struct {
	buf []byte
}

// Sessions whose buffer grew past this are not pooled, so one oversized
// document does not pin its buffer for the process lifetime.
const maxSessionBuffer = 64 << 10

var sessionPool = sync.Pool{New: func() interface{} { return &encoderSession{buf: make([]byte, 0, 256)} }}

func putSession(sess *encoderSession) {
	if cap(sess.buf) > maxSessionBuffer {
		return
	}
	sessionPool.Put(sess)
}

// Stringify renders v as compact single line JSON text. No whitespace is
// ever emitted.
func Stringify(v *Value) []byte {
	sess := sessionPool.Get().(*encoderSession)
	sess.buf = AppendValue(sess.buf[:0], v)
	out := make([]byte, len(sess.buf))
	copy(out, sess.buf)
	putSession(sess)
	return out
}

// StringifyTo writes the compact JSON rendering of v to w. The only failure
// path is the sink's write error.
func StringifyTo(w io.Writer, v *Value) error {
	sess := sessionPool.Get().(*encoderSession)
	sess.buf = AppendValue(sess.buf[:0], v)
	_, err := w.Write(sess.buf)
	putSession(sess)
	return err
}

// AppendValue appends the compact JSON rendering of v to dst. A nil Value
// renders as null.
func AppendValue(dst []byte, v *Value) []byte {
	if v == nil {
		return append(dst, "null"...)
	}
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindNumber:
		return strconv.AppendFloat(dst, v.num, 'g', -1, 64)
	case KindString:
		return appendQuoted(dst, v.text)
	case KindArray:
		dst = append(dst, '[')
		for i, item := range v.items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendValue(dst, item)
		}
		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		for i, key := range v.obj.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendQuoted(dst, key)
			dst = append(dst, ':')
			dst = AppendValue(dst, v.obj.values[i])
		}
		return append(dst, '}')
	}
	return dst
}

// appendQuoted re-escapes backslash, quote, newline and carriage return only;
// every other byte, tab included, passes through raw. The decoder accepts the
// wider escape set, so emitted text still round trips.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			dst = append(dst, '\\', '\\')
		case '"':
			dst = append(dst, '\\', '"')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}
