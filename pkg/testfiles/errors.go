package testfiles

import (
	"errors"
	"fmt"
	"io/fs"
)

// Op identifies the phase of a file operation that failed.
type Op string

const (
	OpCreate      Op = "create"
	OpWrite       Op = "write"
	OpAppendOpen  Op = "append-open"
	OpAppendWrite Op = "append-write"
	OpAppendFlush Op = "append-flush"
	OpReadOpen    Op = "read-open"
	OpRead        Op = "read"
	OpRemove      Op = "remove"
)

// ErrIsDirectory is the cause attached to a remove failure when the path points at a directory.
var ErrIsDirectory = errors.New("is a directory")

// FileError records the failing phase, the affected path and the underlying cause.
type FileError struct {
	Op   Op
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// SyscallError reports a negative return code from a low-level call.
type SyscallError struct {
	Label string
	Code  int64
	Err   error
}

func (e *SyscallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: syscall returned %d (%v)", e.Label, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: syscall returned %d", e.Label, e.Code)
}

func (e *SyscallError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether err signals a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func newFileError(op Op, path string, err error) error {
	return &FileError{Op: op, Path: path, Err: err}
}
