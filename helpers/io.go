package helpers

import (
	"fmt"
	"io"
)

// A Write returning 0 on a nonempty buffer means the peer is gone;
// surfacing it keeps WriteAll callers out of a busy loop.
var ErrWriteNoProgress = fmt.Errorf("zero-length write, connection closed by peer")

// WriteAll resubmits w.Write until all of b is accounted for.
func WriteAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		if n == len(b) {
			return nil
		}
		if n == 0 {
			return ErrWriteNoProgress
		}
		b = b[n:]
	}
	return nil
}
