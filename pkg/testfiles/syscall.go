package testfiles

import (
	"errors"
	"syscall"
)

// EnsureSyscallSuccess passes ret through unchanged unless it is negative, in
// which case a *SyscallError naming label and ret is returned alongside it.
func EnsureSyscallSuccess(ret int64, label string) (int64, error) {
	if ret < 0 {
		return ret, &SyscallError{Label: label, Code: ret}
	}
	return ret, nil
}

// CheckErrno adapts the error half of a raw syscall result. A nil error or a
// zero errno is success. Any other error is wrapped in a *SyscallError whose
// Code is the negated errno, or -1 when err is not an errno.
func CheckErrno(label string, err error) error {
	if err == nil {
		return nil
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == 0 {
			return nil
		}
		return &SyscallError{Label: label, Code: -int64(errno), Err: err}
	}

	return &SyscallError{Label: label, Code: -1, Err: err}
}
