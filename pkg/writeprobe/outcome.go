package writeprobe

import (
	"fmt"
	"io"
)

type ExitCode int

const (
	ExitOK     ExitCode = 0
	ExitFailed ExitCode = 1
	ExitDenied ExitCode = 42
)

type Kind string

const (
	KindSuccess Kind = "success"
	// KindDenied covers access-control and read-only filesystem rejections.
	KindDenied Kind = "denied"
	KindFailed Kind = "failed"
	// KindUnclassified is reported when the parent directories could not be
	// created; such errors are never eligible for ExitDenied.
	KindUnclassified Kind = "unclassified"
)

// Outcome is the result of a single probe run: the exit code together with
// the message printed to the caller.
type Outcome struct {
	Target  string
	Code    ExitCode
	Kind    Kind
	Message string
	Err     error
}

func (o Outcome) OK() bool {
	return o.Code == ExitOK
}

// Line returns the single line the probe reports, without trailing newline.
func (o Outcome) Line() string {
	switch o.Kind {
	case KindSuccess:
		return fmt.Sprintf("wrote to %s", o.Target)
	case KindUnclassified:
		return fmt.Sprintf("probe failed: %s", o.Message)
	default:
		return fmt.Sprintf("write failed: %s", o.Message)
	}
}

// Write prints the outcome line to stdout on success and to stderr otherwise.
func (o Outcome) Write(stdout, stderr io.Writer) error {
	w := stderr
	if o.OK() {
		w = stdout
	}

	_, err := fmt.Fprintln(w, o.Line())
	return err
}
