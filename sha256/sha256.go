//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4. The digest is computed over a complete in-memory
// message: the message is padded into a fresh buffer and the buffer
// is compressed block by block.
package sha256

import (
	"encoding/binary"
	"encoding/hex"
)

// The size of a SHA-256 checksum in bytes.
const Size = 32

// The blocksize of SHA-256 in bytes.
const BlockSize = 64

const (
	init0 = 0x6A09E667
	init1 = 0xBB67AE85
	init2 = 0x3C6EF372
	init3 = 0xA54FF53A
	init4 = 0x510E527F
	init5 = 0x9B05688C
	init6 = 0x1F83D9AB
	init7 = 0x5BE0CD19

	// lengthOffset is the block offset of the bit-length field.
	lengthOffset = BlockSize - 8
)

// Digest holds a SHA-256 checksum.
type Digest [Size]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Bytes returns the digest as a newly allocated byte slice.
func (d Digest) Bytes() []byte {
	result := make([]byte, Size)
	copy(result, d[:])
	return result
}

// Sum returns the SHA-256 checksum of the data.
func Sum(data []byte) Digest {
	state := NewState()
	state.Blocks(Pad(data))
	return state.Digest()
}

// PaddedLen returns the length of the padded buffer for a message of
// n bytes.
func PaddedLen(n int) int {
	var t int
	if n%BlockSize < lengthOffset {
		t = lengthOffset - n%BlockSize
	} else {
		t = BlockSize + lengthOffset - n%BlockSize
	}
	return n + t + 8
}

// Pad returns a new buffer holding data followed by the SHA-256
// padding. Add a 1 bit and 0 bits until 56 bytes mod 64, then the
// message length in bits as a 64-bit big-endian integer. The length
// of the result is a multiple of BlockSize.
func Pad(data []byte) []byte {
	buf := make([]byte, PaddedLen(len(data)))
	copy(buf, data)
	buf[len(data)] = 0x80
	binary.BigEndian.PutUint64(buf[len(buf)-8:], uint64(len(data))<<3)
	return buf
}
