// An error implementation that keeps the line number and the line we
// were trying to read, so the message points at the damage.

package parse

import "strconv"

const maxMsgLen = 70

type lineError struct {
	fname  string
	n      int    // line number
	inline string // the line that provoked the error
	err    error  // what went wrong with it
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

func (e *lineError) Error() string {
	msg := e.fname + " line " + strconv.Itoa(e.n) + ": " + e.err.Error()
	return msg + "\nLine starting with\n" + firstPart(e.inline)
}

// Unwrap exposes the codec or field error underneath, so a caller
// can still pick it apart with errors.As.
func (e *lineError) Unwrap() error { return e.err }
