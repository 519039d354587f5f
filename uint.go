package bytecursor

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Width is the byte length of an encoded unsigned integer.
type Width int

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
)

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32:
		return true
	}
	return false
}

func (w Width) String() string {
	switch w {
	case Width8:
		return "uint8"
	case Width16:
		return "uint16"
	case Width32:
		return "uint32"
	default:
		return "Width(" + strconv.Itoa(int(w)) + ")"
	}
}

// maxValue returns the largest value that fits in w bytes.
func (w Width) maxValue() uint64 {
	return 1<<(8*uint(w)) - 1
}

// DecodeUint interprets b as a little-endian unsigned integer. The length of b
// selects the width and must be 1, 2 or 4.
func DecodeUint(b []byte) (uint32, error) {
	if !Width(len(b)).Valid() {
		return 0, reject("decode_uint", logrus.Fields{"len": len(b)},
			fmt.Errorf("%w: %d bytes", ErrUnsupportedWidth, len(b)))
	}
	return decodeUint(b), nil
}

// decodeUint expects len(b) to be a valid width.
func decodeUint(b []byte) uint32 {
	switch Width(len(b)) {
	case Width8:
		return uint32(b[0])
	case Width16:
		return uint32(binary.LittleEndian.Uint16(b))
	default:
		return binary.LittleEndian.Uint32(b)
	}
}

// EncodeUint returns v as a new little-endian slice of width bytes.
func EncodeUint(v uint64, width Width) ([]byte, error) {
	var dst []byte
	if width.Valid() {
		dst = make([]byte, 0, int(width))
	}
	b, err := AppendUint(dst, v, width)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// AppendUint appends the little-endian encoding of v in width bytes to dst.
// On error dst is returned unchanged.
func AppendUint(dst []byte, v uint64, width Width) ([]byte, error) {
	if !width.Valid() {
		return dst, reject("encode_uint", logrus.Fields{"width": int(width)},
			fmt.Errorf("%w: %d", ErrUnsupportedWidth, int(width)))
	}
	if v > width.maxValue() {
		return dst, reject("encode_uint", logrus.Fields{"width": int(width), "value": v},
			fmt.Errorf("%w: %d does not fit in %s", ErrValueOverflow, v, width))
	}
	switch width {
	case Width8:
		return append(dst, byte(v)), nil
	case Width16:
		return binary.LittleEndian.AppendUint16(dst, uint16(v)), nil
	default:
		return binary.LittleEndian.AppendUint32(dst, uint32(v)), nil
	}
}
