// Package byteutil provides bounds-checked byte-slice helpers used by the
// key codec.
package byteutil

import (
	"fmt"

	"github.com/driftspin/libsignal-protocol-go/libsignal/errors"
)

// Copy copies n bytes from src starting at srcOff into dst starting at
// dstOff. Unlike the built-in copy, it fails instead of truncating when
// either range is out of bounds.
func Copy(dst []byte, dstOff int, src []byte, srcOff, n int) error {
	if n < 0 || srcOff < 0 || dstOff < 0 {
		return errors.InvalidArgumentError("byteutil: negative range")
	}
	if srcOff+n > len(src) {
		return errors.InvalidArgumentError(fmt.Sprintf("byteutil: source range [%d:%d) exceeds length %d", srcOff, srcOff+n, len(src)))
	}
	if dstOff+n > len(dst) {
		return errors.InvalidArgumentError(fmt.Sprintf("byteutil: destination range [%d:%d) exceeds length %d", dstOff, dstOff+n, len(dst)))
	}
	copy(dst[dstOff:dstOff+n], src[srcOff:srcOff+n])
	return nil
}

// ToArray32 converts b into a fixed 32-byte array. The length must be
// exactly 32.
func ToArray32(b []byte) ([32]byte, error) {
	var out [32]byte
	if len(b) != len(out) {
		return out, errors.InvalidArgumentError(fmt.Sprintf("byteutil: need 32 bytes, have %d", len(b)))
	}
	copy(out[:], b)
	return out, nil
}
