package writeprobe

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Payload is written verbatim into every probed target.
const Payload = "sandbox-write"

const (
	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

// Run performs a single write attempt against target. It never retries.
// ".." elements are left to the operating system, so symlinks along the
// path are honoured.
func Run(target string) Outcome {
	target = normalizePath(target)
	logger := log.WithFields(log.Fields{"kind": "probe", "target": target})

	if err := ensureParent(target); err != nil {
		logger.WithError(err).Debug("could not prepare parent directories")
		return Outcome{
			Target:  target,
			Code:    ExitFailed,
			Kind:    KindUnclassified,
			Message: err.Error(),
			Err:     err,
		}
	}

	if err := os.WriteFile(target, []byte(Payload), fileMode); err != nil {
		kind := Classify(err)
		code := ExitFailed
		if kind == KindDenied {
			code = ExitDenied
		}

		logger.WithFields(log.Fields{"class": kind, "err": err}).Debug("write rejected")
		return Outcome{
			Target:  target,
			Code:    code,
			Kind:    kind,
			Message: SystemMessage(err),
			Err:     err,
		}
	}

	logger.Debug("write succeeded")
	return Outcome{Target: target, Code: ExitOK, Kind: KindSuccess}
}

func ensureParent(target string) error {
	dir := parentDir(target)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return errors.Wrapf(err, "failed to create parent directory %q", dir)
	}

	return nil
}
