package probe

import (
	"errors"

	"github.com/mittwald/writeprobe/internal/config"
	"github.com/mittwald/writeprobe/pkg/writeprobe"
)

func newResult(name string, p Probe) *ProbeResult {
	res := &ProbeResult{Name: name}
	if d, ok := p.(describer); ok {
		res.Target = d.Target()
		res.Expect = d.Expect()
	}
	return res
}

func timedOutResult(name string, p Probe) *ProbeResult {
	res := newResult(name, p)
	res.Kind = KindTimedOut
	res.Code = writeprobe.ExitFailed
	res.Message = "timed out"
	return res
}

// resultFromExec turns the error returned by Exec into a ProbeResult. A met
// expectation fully determines the outcome: "writable" is only met by a
// successful write and "denied" only by a classified denial.
func resultFromExec(name string, p Probe, err error) *ProbeResult {
	res := newResult(name, p)

	var mismatch *MismatchError
	switch {
	case err == nil:
		res.OK = true
		res.Kind, res.Code = writeprobe.KindSuccess, writeprobe.ExitOK
		if res.Expect == config.ExpectDenied {
			res.Kind, res.Code = writeprobe.KindDenied, writeprobe.ExitDenied
		}
	case errors.As(err, &mismatch):
		res.Target = mismatch.Outcome.Target
		res.Kind = mismatch.Outcome.Kind
		res.Code = mismatch.Outcome.Code
		res.Message = err.Error()
	default:
		res.Kind, res.Code = writeprobe.KindFailed, writeprobe.ExitFailed
		res.Message = err.Error()
	}

	return res
}
