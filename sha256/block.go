//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// State holds the eight working hash values of a digest computation.
type State [8]uint32

// NewState returns the initial hash value H(0).
func NewState() State {
	return State{init0, init1, init2, init3, init4, init5, init6, init7}
}

// Blocks runs the compression function over each 64-byte block of
// p. The length of p must be a multiple of BlockSize.
func (s *State) Blocks(p []byte) {
	if len(p)%BlockSize != 0 {
		panic(fmt.Sprintf("sha256: partial block: %d bytes", len(p)))
	}
	var w [64]uint32

	h0, h1, h2, h3, h4, h5, h6, h7 := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]
	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}
		for i := 16; i < 64; i++ {
			v1 := w[i-2]
			s1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
			v2 := w[i-15]
			s0 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
			w[i] = w[i-16] + s0 + w[i-7] + s1
		}

		a, b, c, d, e, f, g, h := h0, h1, h2, h3, h4, h5, h6, h7

		for i := 0; i < 64; i++ {
			t1 := h +
				(bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
				((e & f) ^ (^e & g)) + _K[i] + w[i]
			t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
				((a & b) ^ (a & c) ^ (b & c))

			h = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e
		h5 += f
		h6 += g
		h7 += h

		p = p[BlockSize:]
	}

	s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7] = h0, h1, h2, h3, h4, h5, h6, h7
}

// Digest encodes the hash values as a big-endian checksum.
func (s *State) Digest() Digest {
	var digest Digest
	for i, v := range s {
		binary.BigEndian.PutUint32(digest[i*4:], v)
	}
	return digest
}
