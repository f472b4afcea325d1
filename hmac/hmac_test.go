//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package hmac

import (
	"bytes"
	stdhmac "crypto/hmac"
	stdsha256 "crypto/sha256"
	"errors"
	"testing"

	"github.com/markkurossi/hmacsha256/sha256"
)

var hmacTests = []struct {
	key  []byte
	data []byte
	mac  string
}{
	{
		key:  []byte("key"),
		data: []byte("The quick brown fox jumps over the lazy dog"),
		mac:  "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8",
	},
	// RFC 4231 test case 1.
	{
		key:  bytes.Repeat([]byte{0x0b}, 20),
		data: []byte("Hi There"),
		mac:  "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
	},
	// RFC 4231 test case 2.
	{
		key:  []byte("Jefe"),
		data: []byte("what do ya want for nothing?"),
		mac:  "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
	},
	// RFC 4231 test case 3.
	{
		key:  bytes.Repeat([]byte{0xaa}, 20),
		data: bytes.Repeat([]byte{0xdd}, 50),
		mac:  "773ea91e36800e46854db8ebd09181a72959098b3ef8c122d9635514ced565fe",
	},
	// RFC 4231 test case 6.
	{
		key:  bytes.Repeat([]byte{0xaa}, 131),
		data: []byte("Test Using Larger Than Block-Size Key - Hash Key First"),
		mac:  "60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54",
	},
	// RFC 4231 test case 7.
	{
		key: bytes.Repeat([]byte{0xaa}, 131),
		data: []byte("This is a test using a larger than block-size key and " +
			"a larger than block-size data. The key needs to be hashed " +
			"before being used by the HMAC algorithm."),
		mac: "9b09ffa71b942fcb27635fbcd5b0e944bfdc63644f0713938a7f51535c3a35e2",
	},
}

func TestHMAC(t *testing.T) {
	for idx, test := range hmacTests {
		mac, err := Sum(test.key, test.data)
		if err != nil {
			t.Fatalf("test %d: Sum failed: %s", idx, err)
		}
		if mac.String() != test.mac {
			t.Errorf("test %d: got %s, expected %s", idx, mac, test.mac)
		}
	}
}

func TestNilKey(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ErrNilKey) {
		t.Fatalf("New(nil): expected ErrNilKey, got %v", err)
	}
	_, err = Sum(nil, []byte("message"))
	if !errors.Is(err, ErrNilKey) {
		t.Fatalf("Sum(nil, ...): expected ErrNilKey, got %v", err)
	}
}

func TestEmptyKeyAndMessage(t *testing.T) {
	mac, err := Sum([]byte{}, nil)
	if err != nil {
		t.Fatalf("Sum failed: %s", err)
	}
	expected := "b613679a0814d9ec772f95d778c35fc5ff1697c493715653c6c712144292c5ad"
	if mac.String() != expected {
		t.Fatalf("got %s, expected %s", mac, expected)
	}
}

func TestKeyLengthBoundary(t *testing.T) {
	data := []byte("key length boundary")

	key64 := bytes.Repeat([]byte{0x42}, sha256.BlockSize)
	key65 := bytes.Repeat([]byte{0x42}, sha256.BlockSize+1)

	h64, err := New(key64)
	if err != nil {
		t.Fatal(err)
	}
	h65, err := New(key65)
	if err != nil {
		t.Fatal(err)
	}

	// A block-size key is used as-is.
	if !bytes.Equal(h64.key[:], key64) {
		t.Errorf("64-byte key was transformed")
	}

	// A longer key is replaced with its digest.
	hashed := sha256.Sum(key65)
	hh, err := New(hashed[:])
	if err != nil {
		t.Fatal(err)
	}
	if h65.Sum(data) != hh.Sum(data) {
		t.Errorf("65-byte key was not hashed")
	}
	if !bytes.Equal(h65.key[:sha256.Size], hashed[:]) {
		t.Errorf("hashed key not stored")
	}
	for i := sha256.Size; i < sha256.BlockSize; i++ {
		if h65.key[i] != 0 {
			t.Fatalf("hashed key not zero padded at %d", i)
		}
	}
	if h64.Sum(data) == h65.Sum(data) {
		t.Errorf("64 and 65 byte keys produced the same code")
	}
}

func TestIdempotent(t *testing.T) {
	key := []byte("secret")
	data := []byte("message")

	h, err := New(key)
	if err != nil {
		t.Fatal(err)
	}
	mac := h.Sum(data)
	if h.Sum(data) != mac {
		t.Fatalf("Sum is not idempotent")
	}

	inner := sha256.Sum(h.InnerBuffer(data))
	outer := sha256.Sum(h.OuterBuffer(inner))
	if outer != mac {
		t.Fatalf("intermediate buffers do not reproduce the code")
	}

	buf := h.InnerBuffer(data)
	if len(buf) != sha256.BlockSize+len(data) {
		t.Fatalf("invalid inner buffer length %d", len(buf))
	}
	if buf[0] != key[0]^ipad || buf[len(key)] != ipad {
		t.Fatalf("invalid inner padding")
	}
	buf = h.OuterBuffer(inner)
	if len(buf) != sha256.BlockSize+sha256.Size {
		t.Fatalf("invalid outer buffer length %d", len(buf))
	}
	if buf[0] != key[0]^opad || buf[len(key)] != opad {
		t.Fatalf("invalid outer padding")
	}
}

func TestKeyCopied(t *testing.T) {
	key := []byte("mutable key")
	data := []byte("message")

	h, err := New(key)
	if err != nil {
		t.Fatal(err)
	}
	mac := h.Sum(data)
	key[0] ^= 0xff
	if h.Sum(data) != mac {
		t.Fatalf("HMAC depends on the caller's key buffer")
	}
}

func TestStandardLibrary(t *testing.T) {
	data := []byte("cross-checked with the standard library")
	for l := 0; l <= 2*sha256.BlockSize+2; l++ {
		key := make([]byte, l)
		for i := range key {
			key[i] = byte(i + l)
		}
		mac, err := Sum(key, data)
		if err != nil {
			t.Fatal(err)
		}
		m := stdhmac.New(stdsha256.New, key)
		m.Write(data)
		expected := m.Sum(nil)
		if !bytes.Equal(mac[:], expected) {
			t.Errorf("key length %d: got %s, expected %x", l, mac, expected)
		}
	}
}

func FuzzHMAC(f *testing.F) {
	f.Add([]byte("key"), []byte("message"))
	f.Add(bytes.Repeat([]byte{0xaa}, 65), []byte{})
	f.Fuzz(func(t *testing.T, key, data []byte) {
		if key == nil {
			key = []byte{}
		}
		mac, err := Sum(key, data)
		if err != nil {
			t.Fatal(err)
		}
		m := stdhmac.New(stdsha256.New, key)
		m.Write(data)
		if !bytes.Equal(mac[:], m.Sum(nil)) {
			t.Errorf("code mismatch for key %x", key)
		}
	})
}
