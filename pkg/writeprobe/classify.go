package writeprobe

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// Classify maps an error returned while writing the target to a Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindSuccess
	case IsPermissionError(err):
		return KindDenied
	default:
		return KindFailed
	}
}

// IsPermissionError reports whether err was caused by access control or by a
// read-only mount.
func IsPermissionError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, syscall.EACCES) ||
		errors.Is(err, syscall.EPERM) ||
		errors.Is(err, syscall.EROFS)
}

// SystemMessage returns the operating system's description of err, falling
// back to the full error string when no such description is available.
func SystemMessage(err error) string {
	if err == nil {
		return ""
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Err != nil {
		return pathErr.Err.Error()
	}

	var sysErr *os.SyscallError
	if errors.As(err, &sysErr) && sysErr.Err != nil {
		return sysErr.Err.Error()
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno.Error()
	}

	return err.Error()
}
