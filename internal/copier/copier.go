// Package copier copies one regular file to another through a fixed-size
// buffer.
package copier

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	// BufferSize is the capacity of the transfer buffer.
	BufferSize = 1024
	// DestinationPerm is the mode a newly created destination gets (before umask).
	DestinationPerm os.FileMode = 0o644
)

// ValidateArgs reports a KindUsage error unless args holds exactly a source
// and a destination path.
func ValidateArgs(args []string) error {
	if len(args) != 2 {
		return &Error{Kind: KindUsage, Err: errors.Errorf("accepts 2 arg(s), received %d", len(args))}
	}
	return nil
}

// Copy copies the contents of src to dst. dst is created if absent and
// truncated if present. Both files are closed before Copy returns.
func Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &Error{Kind: KindSourceOpen, Path: src, Err: errors.WithStack(err)}
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DestinationPerm)
	if err != nil {
		in.Close()
		return &Error{Kind: KindDestinationOpen, Path: dst, Err: errors.WithStack(err)}
	}

	adviseSequential(in)

	readErr, writeErr := transfer(out, in, make([]byte, BufferSize))
	if writeErr != nil {
		in.Close()
		out.Close()
		return &Error{Kind: KindWrite, Path: dst, Err: errors.WithStack(writeErr)}
	}

	// Both handles are released before the read error is surfaced.
	in.Close()
	closeErr := out.Close()

	if readErr != nil {
		return &Error{Kind: KindRead, Path: src, Err: errors.WithStack(readErr)}
	}
	if closeErr != nil {
		return &Error{Kind: KindWrite, Path: dst, Err: errors.WithStack(closeErr)}
	}
	return nil
}

// transfer moves bytes from src to dst through buf until src reports end of
// input (io.EOF or a zero-byte read) or an error. Bytes returned together
// with a read error are written before the read error is reported.
func transfer(dst io.Writer, src io.Reader, buf []byte) (readErr, writeErr error) {
	for {
		n, err := src.Read(buf)
		if n > 0 {
			written, werr := dst.Write(buf[:n])
			if werr != nil {
				return nil, werr
			}
			if written != n {
				return nil, io.ErrShortWrite
			}
		}
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return err, nil
		}
		if n == 0 {
			return nil, nil
		}
	}
}
