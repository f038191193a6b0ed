package qs

import (
	"net/url"
	"strings"
)

// Buffer accumulates key/value pairs into a query string, percent-encoding
// both sides. It is the write side of Parse: the multipart form decoder
// reduces every part into a Buffer before the nested parse.
type Buffer struct {
	b strings.Builder
}

// Add appends one pair. Keys keep their bracket structure through the
// encode/decode cycle because Parse percent-decodes before splitting.
func (b *Buffer) Add(key, value string) {
	if b.b.Len() > 0 {
		b.b.WriteByte('&')
	}
	b.b.WriteString(url.QueryEscape(key))
	b.b.WriteByte('=')
	b.b.WriteString(url.QueryEscape(value))
}

// Bytes returns the accumulated query string.
func (b *Buffer) Bytes() []byte {
	return []byte(b.b.String())
}

// Len reports the accumulated size in bytes.
func (b *Buffer) Len() int {
	return b.b.Len()
}
