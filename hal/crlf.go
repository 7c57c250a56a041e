package hal

import (
	"bytes"
	"io"
)

// NewCRLFWriter returns a writer that turns "\n" into "\r\n", as serial
// terminals expect.
func NewCRLFWriter(w io.Writer) io.Writer {
	return crlfWriter{w: w}
}

type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
