//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package hmac implements the keyed-hash message authentication code
// HMAC-SHA256 as defined in RFC 2104 and FIPS 198-1.
//
//	HMAC(K, m) = H((K0 ^ opad) || H((K0 ^ ipad) || m))
//
// where K0 is the key padded with zeros to the SHA-256 block size, or
// the SHA-256 digest of the key padded with zeros if the key is
// longer than the block size.
package hmac

import (
	"errors"

	"github.com/markkurossi/hmacsha256/sha256"
)

const (
	ipad = 0x36
	opad = 0x5c
)

var (
	// ErrNilKey is returned if the HMAC key is missing.
	ErrNilKey = errors.New("hmac: nil key")
)

// HMAC computes HMAC-SHA256 authentication codes with a fixed secret
// key. HMAC is safe for concurrent use.
type HMAC struct {
	key [sha256.BlockSize]byte
}

// New creates a new HMAC for the key. The key can have any length but
// it must not be nil.
func New(key []byte) (*HMAC, error) {
	if key == nil {
		return nil, ErrNilKey
	}
	h := new(HMAC)
	if len(key) > sha256.BlockSize {
		digest := sha256.Sum(key)
		copy(h.key[:], digest[:])
	} else {
		copy(h.key[:], key)
	}
	return h, nil
}

// Sum computes HMAC-SHA256 of the message.
func Sum(key, message []byte) (sha256.Digest, error) {
	h, err := New(key)
	if err != nil {
		return sha256.Digest{}, err
	}
	return h.Sum(message), nil
}

// Sum computes the authentication code of the message.
func (h *HMAC) Sum(message []byte) sha256.Digest {
	inner := sha256.Sum(h.InnerBuffer(message))
	return sha256.Sum(h.OuterBuffer(inner))
}

// InnerBuffer returns the input of the inner hash computation:
// (K0 ^ ipad) || message.
func (h *HMAC) InnerBuffer(message []byte) []byte {
	return h.buffer(ipad, message)
}

// OuterBuffer returns the input of the outer hash computation:
// (K0 ^ opad) || inner.
func (h *HMAC) OuterBuffer(inner sha256.Digest) []byte {
	return h.buffer(opad, inner[:])
}

func (h *HMAC) buffer(pad byte, data []byte) []byte {
	buf := make([]byte, sha256.BlockSize+len(data))
	for i := 0; i < sha256.BlockSize; i++ {
		buf[i] = h.key[i] ^ pad
	}
	copy(buf[sha256.BlockSize:], data)
	return buf
}
