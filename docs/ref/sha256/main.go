// SHA-256 block boundaries compared with the Go standard library.

package main

import (
	stdsha256 "crypto/sha256"
	"fmt"
	"strings"

	"github.com/markkurossi/hmacsha256/sha256"
)

func main() {
	for _, l := range []int{0, 55, 56, 57, 63, 64, 119} {
		data := []byte(strings.Repeat("-", l))
		padded := sha256.Pad(data)

		fmt.Printf("len=%d padded=%d\n", l, len(padded))
		fmt.Printf("%s\n", sha256.Sum(data))
		fmt.Printf("%x\n", stdsha256.Sum256(data))
		fmt.Println()
	}
}
