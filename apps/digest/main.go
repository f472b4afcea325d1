//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/markkurossi/hmacsha256/hmac"
	"github.com/markkurossi/hmacsha256/kdf"
	"github.com/markkurossi/hmacsha256/sha256"
	"github.com/markkurossi/hmacsha256/timing"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

var (
	verbose = false
)

// Params define the digest operation.
type Params struct {
	Key    []byte
	Derive int
	Salt   []byte
	Info   []byte
	Timing bool
}

// Result holds the digest of one input.
type Result struct {
	Name   string
	Size   timing.FileSize
	Blocks int
	Output []byte
	Timing *timing.Timing
}

func main() {
	key := flag.String("k", "", "HMAC key")
	keyHex := flag.String("kx", "", "HMAC key in hex")
	derive := flag.Int("derive", 0, "Derive `n` bytes of HKDF output")
	salt := flag.String("salt", "", "HKDF salt")
	info := flag.String("info", "", "HKDF info")
	fTiming := flag.Bool("t", false, "Print timing report")
	table := flag.Bool("table", false, "Print results as a table")
	fVerbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	log.SetFlags(0)
	verbose = *fVerbose

	params, err := newParams(*key, *keyHex, *derive, *salt, *info)
	if err != nil {
		log.Fatal(err)
	}
	params.Timing = *fTiming

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	var results []*Result
	for _, arg := range args {
		result, err := processFile(params, arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		if !*table {
			fmt.Printf("%x  %s\n", result.Output, result.Name)
		}
		if result.Timing != nil {
			result.Timing.Print(os.Stdout, result.Size)
		}
		results = append(results, result)
	}
	if *table {
		printTable(os.Stdout, results)
	}
}

func newParams(key, keyHex string, derive int, salt, info string) (
	*Params, error) {

	params := &Params{
		Derive: derive,
		Salt:   []byte(salt),
		Info:   []byte(info),
	}
	if len(key) > 0 && len(keyHex) > 0 {
		return nil, errors.New("both -k and -kx specified")
	}
	if len(key) > 0 {
		params.Key = []byte(key)
	} else if len(keyHex) > 0 {
		k, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, fmt.Errorf("invalid hex key: %w", err)
		}
		params.Key = k
	}
	if derive != 0 {
		if params.Key != nil {
			return nil, errors.New("-derive can't be used with an HMAC key")
		}
		if derive < 0 || derive > kdf.MaxLength {
			return nil, fmt.Errorf("invalid -derive %d: %w", derive,
				kdf.ErrLength)
		}
	}
	return params, nil
}

func processFile(params *Params, name string) (*Result, error) {
	var in io.Reader
	if name == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	result, err := process(params, name, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return result, nil
}

func process(params *Params, name string, in io.Reader) (*Result, error) {
	t := timing.New()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	t.Sample("Read", nil)

	result := &Result{
		Name: name,
		Size: timing.FileSize(len(data)),
	}
	if params.Timing {
		result.Timing = t
	}

	switch {
	case params.Key != nil:
		h, err := hmac.New(params.Key)
		if err != nil {
			return nil, err
		}
		inner := sha256.Sum(h.InnerBuffer(data))
		t.Sample("Inner", nil)
		mac := sha256.Sum(h.OuterBuffer(inner))
		t.Sample("Outer", nil)

		result.Blocks = (sha256.PaddedLen(sha256.BlockSize+len(data)) +
			sha256.PaddedLen(sha256.BlockSize+sha256.Size)) / sha256.BlockSize
		result.Output = mac.Bytes()
		debugf("inner: %s\n", inner)

	case params.Derive > 0:
		prk := kdf.Extract(data, params.Salt)
		t.Sample("Extract", nil)
		okm, err := kdf.Expand(prk, params.Info, params.Derive)
		if err != nil {
			return nil, err
		}
		t.Sample("Expand", nil)

		result.Output = okm
		debugf("prk: %x\n", prk)

	default:
		padded := sha256.Pad(data)
		t.Sample("Pad", nil)
		state := sha256.NewState()
		state.Blocks(padded)
		t.Sample("Compress", []string{timing.FileSize(len(padded)).String()})
		digest := state.Digest()
		t.Sample("Encode", nil)

		result.Blocks = len(padded) / sha256.BlockSize
		result.Output = digest.Bytes()
		debugf("padded: %d bytes, %d blocks, length field %d bits < 2%s\n",
			len(padded), result.Blocks, uint64(len(data))<<3,
			superscript.Itoa(64))
	}

	return result, nil
}

func printTable(w io.Writer, results []*Result) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Input").SetAlign(tabulate.ML)
	tab.Header("Size").SetAlign(tabulate.MR)
	tab.Header("Blocks").SetAlign(tabulate.MR)
	tab.Header("Output").SetAlign(tabulate.ML)

	for _, result := range results {
		row := tab.Row()
		row.Column(result.Name)
		row.Column(result.Size.String())
		if result.Blocks > 0 {
			row.Column(fmt.Sprintf("%d", result.Blocks))
		} else {
			row.Column("-")
		}
		row.Column(hex.EncodeToString(result.Output))
	}
	tab.Print(w)
}

func debugf(format string, a ...interface{}) {
	if !verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format, a...)
}
