package pidfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// PIDFile guards a long-running writeprobe server against concurrent
// instances using the same pid file path.
type PIDFile struct {
	path string
	file *os.File
}

func New(path string) *PIDFile {
	return &PIDFile{
		path: path,
	}
}

func (f *PIDFile) Acquire() error {
	if f.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create pid file directory %q", filepath.Dir(f.path))
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	switch {
	case os.IsExist(err):
		if err := f.removeIfOutdated(); err != nil {
			return err
		}

		return f.Acquire()
	case err != nil:
		return errors.Wrapf(err, "failed to open pid file %q", f.path)
	}

	if _, err := file.WriteString(strconv.Itoa(os.Getpid())); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "failed to write pid to pid file %q", f.path)
	}

	log.WithField("path", f.path).Info("acquired pid file")
	f.file = file
	return nil
}

func (f *PIDFile) removeIfOutdated() error {
	contents, err := os.ReadFile(f.path)
	if err != nil {
		return errors.Wrapf(err, "failed to read pid file %q", f.path)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(contents)))
	if err != nil {
		return errors.Wrapf(err, "failed to parse pid file %q", f.path)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return errors.Wrapf(err, "failed to find process with pid %d", pid)
	}

	if err := process.Signal(syscall.Signal(0)); err == nil {
		return fmt.Errorf("pid file %q already exists and contains the PID of a running process", f.path)
	}

	log.WithField("path", f.path).Info("existing pid file contains the PID of a non-running process; removing it")

	if err := os.Remove(f.path); err != nil {
		return errors.Wrapf(err, "failed to remove pid file %q", f.path)
	}

	return nil
}

func (f *PIDFile) Release() error {
	if f.path == "" || f.file == nil {
		return nil
	}

	if err := f.file.Close(); err != nil {
		return errors.Wrapf(err, "failed to close pid file %q", f.path)
	}
	f.file = nil

	if err := os.Remove(f.path); err != nil {
		return errors.Wrapf(err, "failed to remove pid file %q", f.path)
	}

	log.WithField("path", f.path).Info("released pid file")
	return nil
}
