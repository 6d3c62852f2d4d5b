package vos

import (
	"io"
	"os"
)

// VIO is the triple of standard streams owned by a session or process.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// VIOAdapter adapts any reader/writer pair into a VIO. Nil streams behave
// like /dev/null.
type VIOAdapter struct {
	IStdin  io.ReadCloser
	IStdout io.WriteCloser
	IStderr io.WriteCloser
}

func NewVIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *VIOAdapter {
	return &VIOAdapter{
		IStdin:  toReadCloserOrDiscard(stdin),
		IStdout: toWriteCloserOrDiscard(stdout),
		IStderr: toWriteCloserOrDiscard(stderr),
	}
}

// NewRedirectIO returns a VIO that reads from the session's stdin but sends
// both output streams to the same writer, the shape produced by the `>`
// operator.
func NewRedirectIO(session VIO, target io.Writer) VIO {
	return NewVIOAdapter(session.Stdin(), target, target)
}

var _ VIO = (*VIOAdapter)(nil)

func (v *VIOAdapter) Stdin() io.ReadCloser   { return v.IStdin }
func (v *VIOAdapter) Stdout() io.WriteCloser { return v.IStdout }
func (v *VIOAdapter) Stderr() io.WriteCloser { return v.IStderr }

func toWriteCloserOrDiscard(w io.Writer) io.WriteCloser {
	if w == nil {
		return &devNull{}
	}
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}
	return nopWriteCloser{w}
}

func toReadCloserOrDiscard(r io.Reader) io.ReadCloser {
	if r == nil {
		return &devNull{}
	}
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// devNull fails reads and discards writes.
type devNull struct{}

var _ io.ReadCloser = (*devNull)(nil)
var _ io.WriteCloser = (*devNull)(nil)

func (*devNull) Read([]byte) (int, error) {
	return 0, os.ErrClosed
}

func (*devNull) Write(b []byte) (int, error) {
	return len(b), nil
}

func (*devNull) Close() error {
	return nil
}
