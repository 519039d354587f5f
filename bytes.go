package bytecursor

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Concat returns a new slice holding a followed by b.
func Concat(a, b []byte) []byte {
	c := make([]byte, len(a)+len(b))
	n := copy(c, a)
	copy(c[n:], b)
	return c
}

// Fit normalizes b to exactly size bytes.
//
// A nil b yields size zero bytes. A shorter b is right-aligned in a new
// zero-filled slice. A b of exactly size bytes is returned as is, without a
// copy. A longer b is never truncated; Fit returns ErrOversize instead.
func Fit(b []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, reject("fit", logrus.Fields{"size": size}, fmt.Errorf("%w: size %d", ErrNegativeLength, size))
	}
	if b == nil {
		return make([]byte, size), nil
	}
	switch {
	case len(b) > size:
		return nil, reject("fit", logrus.Fields{"len": len(b), "size": size},
			fmt.Errorf("%w: %d bytes into %d", ErrOversize, len(b), size))
	case len(b) < size:
		padded := make([]byte, size)
		copy(padded[size-len(b):], b)
		return padded, nil
	}
	return b, nil
}
