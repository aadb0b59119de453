// Package source provides the pull based byte stream the jsonly decoder reads
// from. A Source delivers one byte at a time and keeps a single pushback slot,
// which is all the lookahead the JSON grammar needs.
package source

import "io"

// Source is a sequential byte stream with a single pushback slot.
type Source interface {
	// ReadByte returns the next byte, or io.EOF once the input is exhausted.
	ReadByte() (byte, error)
	// Unread pushes b back so the next ReadByte returns it. At most one
	// pushed back byte may be outstanding at a time.
	Unread(b byte)
	// Offset reports the number of bytes consumed so far, net of pushback.
	Offset() int64
}

// Bytes reads from an in memory buffer.
type Bytes struct {
	data       []byte
	pos        int
	pending    byte
	hasPending bool
}

// FromBytes returns a Source over data. The buffer is not copied.
func FromBytes(data []byte) *Bytes {
	return &Bytes{data: data}
}

// FromString returns a Source over s.
func FromString(s string) *Bytes {
	return &Bytes{data: []byte(s)}
}

func (b *Bytes) ReadByte() (byte, error) {
	if b.hasPending {
		b.hasPending = false
		return b.pending, nil
	}
	if b.pos >= len(b.data) {
		return 0, io.EOF
	}
	c := b.data[b.pos]
	b.pos++
	return c, nil
}

func (b *Bytes) Unread(c byte) {
	b.pending = c
	b.hasPending = true
}

func (b *Bytes) Offset() int64 {
	offset := int64(b.pos)
	if b.hasPending {
		offset--
	}
	return offset
}

// Reader adapts an arbitrary io.Reader to the Source contract.
type Reader struct {
	reader     io.ByteReader
	consumed   int64
	pending    byte
	hasPending bool
}

// FromReader returns a Source over r. When r already implements io.ByteReader
// it is used directly, otherwise bytes are pulled with one byte reads.
func FromReader(r io.Reader) *Reader {
	byteReader, ok := r.(io.ByteReader)
	if !ok {
		byteReader = &singleByteReader{reader: r}
	}
	return &Reader{reader: byteReader}
}

func (r *Reader) ReadByte() (byte, error) {
	if r.hasPending {
		r.hasPending = false
		r.consumed++
		return r.pending, nil
	}
	c, err := r.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	r.consumed++
	return c, nil
}

func (r *Reader) Unread(c byte) {
	r.pending = c
	r.hasPending = true
	r.consumed--
}

func (r *Reader) Offset() int64 {
	return r.consumed
}

type singleByteReader struct {
	reader io.Reader
	buf    [1]byte
}

func (s *singleByteReader) ReadByte() (byte, error) {
	for {
		n, err := s.reader.Read(s.buf[:])
		if n == 1 {
			return s.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
