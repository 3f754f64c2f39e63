package writeprobe

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func pathErr(errno syscall.Errno) error {
	return &fs.PathError{Op: "open", Path: "/probe/target", Err: errno}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind Kind
	}{
		{"nil", nil, KindSuccess},
		{"access denied", pathErr(syscall.EACCES), KindDenied},
		{"operation not permitted", pathErr(syscall.EPERM), KindDenied},
		{"read-only filesystem", pathErr(syscall.EROFS), KindDenied},
		{"wrapped read-only filesystem", pkgerrors.Wrap(pathErr(syscall.EROFS), "writing"), KindDenied},
		{"fs.ErrPermission", fs.ErrPermission, KindDenied},
		{"disk full", pathErr(syscall.ENOSPC), KindFailed},
		{"is a directory", pathErr(syscall.EISDIR), KindFailed},
		{"no such file", pathErr(syscall.ENOENT), KindFailed},
		{"plain error", errors.New("boom"), KindFailed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.kind, Classify(c.err))
		})
	}
}

func TestSystemMessage(t *testing.T) {
	assert.Equal(t, "", SystemMessage(nil))
	assert.Equal(t, syscall.EROFS.Error(), SystemMessage(pathErr(syscall.EROFS)))
	assert.Equal(t, syscall.EACCES.Error(), SystemMessage(pkgerrors.Wrap(pathErr(syscall.EACCES), "outer")))
	assert.Equal(t, syscall.ENOSPC.Error(), SystemMessage(os.NewSyscallError("write", syscall.ENOSPC)))
	assert.Equal(t, syscall.EPERM.Error(), SystemMessage(syscall.EPERM))
	assert.Equal(t, "boom", SystemMessage(errors.New("boom")))
}
