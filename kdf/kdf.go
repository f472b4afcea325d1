//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package kdf implements the HMAC-based extract-and-expand key
// derivation function HKDF-SHA256 as defined in RFC 5869.
package kdf

import (
	"errors"
	"io"

	"github.com/markkurossi/hmacsha256/sha256"
	"golang.org/x/crypto/hkdf"
)

// MaxLength is the maximum number of bytes Expand can produce.
const MaxLength = 255 * sha256.Size

var (
	// ErrLength is returned if the requested output length is not in
	// the range 1...MaxLength.
	ErrLength = errors.New("kdf: invalid output length")
)

// Extract derives a pseudorandom key from the secret and salt. An
// empty salt is replaced with sha256.Size zero bytes.
func Extract(secret, salt []byte) []byte {
	return hkdf.Extract(sha256.New, secret, salt)
}

// Expand expands the pseudorandom key into length bytes of output
// keying material bound to the info.
func Expand(prk, info []byte, length int) ([]byte, error) {
	if length <= 0 || length > MaxLength {
		return nil, ErrLength
	}
	result := make([]byte, length)
	_, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Key derives length bytes of keying material from the secret, salt,
// and info.
func Key(secret, salt, info []byte, length int) ([]byte, error) {
	return Expand(Extract(secret, salt), info, length)
}
