// Two derived chain labels that are not hybrid-36, but live here
// because they come from the same underlying chain number.

package hy36

// chainAlphabet is what tools with a one-character chain field get.
const chainAlphabet = "ABCDEFGHIJ"

// TwoLetter maps a zero-indexed chain number to a short uppercase
// label: A..Z, then AA..ZZ and so on. It is injective for every
// n >= 0, so it can be inverted by anyone who cares to.
func TwoLetter(n int) (string, error) {
	if n < 0 {
		return "", RangeError{N: n, Width: 2}
	}
	var b []byte
	for {
		b = append([]byte{'A' + byte(n%26)}, b...)
		if n < 26 {
			break
		}
		n = n/26 - 1
	}
	return string(b), nil
}

// ChainChar returns the one-character chain hint: the last decimal
// digit of n+1 keyed into a ten-letter alphabet. Deliberately lossy.
// Display only, never a chain identity.
func ChainChar(n int) byte {
	if n < 0 {
		n = -n
	}
	return chainAlphabet[(n+1)%10]
}
