package bytecursor

import "errors"

var (
	// ErrOversize is returned by Fit when the input is longer than the target size.
	ErrOversize = errors.New("bytecursor: data size larger than allowed")

	// ErrOutOfRange is returned when a cursor read would pass the end of its buffer.
	ErrOutOfRange = errors.New("bytecursor: read out of range")

	// ErrUnsupportedWidth is returned for integer widths other than 1, 2 or 4 bytes.
	ErrUnsupportedWidth = errors.New("bytecursor: unsupported width")

	// ErrValueOverflow is returned when a value does not fit the requested width.
	ErrValueOverflow = errors.New("bytecursor: value overflows width")

	// ErrNegativeLength is returned for negative sizes and counts.
	ErrNegativeLength = errors.New("bytecursor: negative length")
)
