// Package hy36 converts between integers and the fixed-width
// hybrid-36 strings used by the old PDB format when a serial or
// residue number no longer fits its decimal column. Values below
// 10^width are written as zero-padded decimal. The next block of
// 26*36^(width-1) values gets an uppercase leading letter with
// uppercase base-36 digits, the block after that the same in
// lowercase. Anything larger does not fit and is an error, never
// truncated.
package hy36

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// RangeError says a number cannot be written in a field of the
// requested width.
type RangeError struct {
	N     int
	Width int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("number %d does not fit a hybrid-36 field of width %d", e.N, e.Width)
}

// FormatError says a string is neither plain decimal nor valid
// hybrid-36.
type FormatError struct {
	S string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("%q is neither decimal nor hybrid-36", e.S)
}

// pow is integer exponentiation for the small arguments we need.
func pow(b, e int) int {
	r := 1
	for i := 0; i < e; i++ {
		r *= b
	}
	return r
}

// encBlock writes m as a leading letter from one of the 26-letter
// blocks followed by width-1 base-36 digits of the same case.
func encBlock(m, width int, digits string) string {
	tail := pow(36, width-1)
	b := make([]byte, width)
	b[0] = digits[10+m/tail]
	m %= tail
	for i := width - 1; i > 0; i-- {
		b[i] = digits[m%36]
		m /= 36
	}
	return string(b)
}

// Encode renders n in exactly width characters. The width must be
// positive; a non-positive width is a caller bug, not a data error.
func Encode(n, width int) (string, error) {
	if width < 1 {
		panic("hy36.Encode: width must be positive")
	}
	decTop := pow(10, width)
	block := 26 * pow(36, width-1)
	switch {
	case n < 0 || n >= decTop+2*block:
		return "", RangeError{N: n, Width: width}
	case n < decTop:
		return fmt.Sprintf("%0*d", width, n), nil
	case n < decTop+block:
		return encBlock(n-decTop, width, upperDigits), nil
	default:
		return encBlock(n-decTop-block, width, lowerDigits), nil
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Decode recovers the integer from a decimal or hybrid-36 string.
// The field width is taken from the trimmed input, so the caller
// does not have to repeat it.
func Decode(s string) (int, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, FormatError{S: s}
	}
	if allDigits(t) {
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, FormatError{S: s}
		}
		return n, nil
	}

	width := len(t)
	block := 26 * pow(36, width-1)
	var digits string
	var offset int
	switch c := t[0]; {
	case c >= 'A' && c <= 'Z':
		digits = upperDigits
		offset = pow(10, width)
	case c >= 'a' && c <= 'z':
		digits = lowerDigits
		offset = pow(10, width) + block
	default:
		return 0, FormatError{S: s}
	}

	n := 0
	for i := 0; i < len(t); i++ {
		v := strings.IndexByte(digits, t[i])
		if v < 0 {
			return 0, FormatError{S: s}
		}
		n = n*36 + v
	}
	// The leading letter parsed as its base-36 value, 10..35. Strip
	// the 10 and shift into the right block.
	return n - 10*pow(36, width-1) + offset, nil
}
