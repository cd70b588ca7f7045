package lineio

import (
	"fmt"
	"io"
)

const defaultCopyBufferSize = 32 * 1024

// Copy streams src into dst through the given buffer and returns the number
// of bytes written. A nil or empty buf gets a default-sized one. Short
// writes are reported as errors rather than silently truncating.
func Copy(dst io.Writer, src io.Reader, buf []byte) (int64, error) {
	if len(buf) == 0 {
		buf = make([]byte, defaultCopyBufferSize)
	}

	var written int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			w, writeErr := dst.Write(buf[:n])
			written += int64(w)
			if writeErr != nil {
				return written, fmt.Errorf("copy write: %w", writeErr)
			}
			if w < n {
				return written, io.ErrShortWrite
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("copy read: %w", readErr)
		}
	}
}
