package probe

import (
	"fmt"

	"github.com/mittwald/writeprobe/internal/config"
	"github.com/mittwald/writeprobe/pkg/writeprobe"
	log "github.com/sirupsen/logrus"
)

// MismatchError is returned by a write probe whose outcome did not meet the
// configured expectation.
type MismatchError struct {
	Expect  string
	Outcome writeprobe.Outcome
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected %s, got %s: %s", e.Expect, e.Outcome.Kind, e.Outcome.Line())
}

// writeProbe runs a single write attempt and compares the outcome with the
// configured expectation.
type writeProbe struct {
	target string
	expect string
}

func NewWriteProbe(cfg *config.Probe) Probe {
	expect := cfg.Expect
	if expect == "" {
		expect = config.ExpectWritable
	}

	return &writeProbe{
		target: cfg.Target,
		expect: expect,
	}
}

func (w *writeProbe) Target() string { return w.target }
func (w *writeProbe) Expect() string { return w.expect }

func (w *writeProbe) Exec() error {
	outcome := writeprobe.Run(w.target)
	fields := log.Fields{"kind": "probe", "target": outcome.Target, "code": outcome.Code}

	switch {
	case w.expect == config.ExpectWritable && outcome.Code == writeprobe.ExitOK:
		log.WithFields(fields).Debug("target is writable")
		return nil
	case w.expect == config.ExpectDenied && outcome.Code == writeprobe.ExitDenied:
		log.WithFields(fields).Debug("write was denied")
		return nil
	}

	log.WithFields(fields).Warn("unexpected probe outcome")
	return &MismatchError{Expect: w.expect, Outcome: outcome}
}
