//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"hash"
)

// buffer implements hash.Hash by collecting the written message and
// computing its checksum with Sum.
type buffer struct {
	data []byte
}

// New returns a new hash.Hash computing the SHA-256 checksum. Written
// data is buffered in memory and the checksum is computed over the
// complete message when Sum is called.
func New() hash.Hash {
	return new(buffer)
}

func (b *buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *buffer) Sum(in []byte) []byte {
	digest := Sum(b.data)
	return append(in, digest[:]...)
}

func (b *buffer) Reset() {
	b.data = b.data[:0]
}

func (b *buffer) Size() int { return Size }

func (b *buffer) BlockSize() int { return BlockSize }
