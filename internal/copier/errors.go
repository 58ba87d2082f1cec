package copier

import (
	"fmt"
	"io/fs"

	"github.com/pkg/errors"
)

// Kind classifies why a copy failed.
type Kind int

const (
	KindUsage Kind = iota + 1
	KindSourceOpen
	KindDestinationOpen
	KindRead
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindSourceOpen:
		return "open source file"
	case KindDestinationOpen:
		return "open/create destination file"
	case KindRead:
		return "read source file"
	case KindWrite:
		return "write to destination file"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by ValidateArgs and Copy.
// Path is the file the failure concerns (empty for KindUsage).
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Reason returns the system-reported cause without the operation and path
// prefix added by the os package, e.g. "no such file or directory".
func (e *Error) Reason() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return pathErr.Err.Error()
	}
	return errors.Cause(e.Err).Error()
}
