package probe

import "github.com/mittwald/writeprobe/pkg/writeprobe"

// KindTimedOut marks probes that did not finish within the handler timeout.
const KindTimedOut writeprobe.Kind = "timed-out"

type Probe interface {
	Exec() error
}

// describer is implemented by probes that can name what they check.
type describer interface {
	Target() string
	Expect() string
}

type ProbeResult struct {
	Name    string              `json:"-"`
	OK      bool                `json:"ok"`
	Target  string              `json:"target,omitempty"`
	Expect  string              `json:"expect,omitempty"`
	Kind    writeprobe.Kind     `json:"kind,omitempty"`
	Code    writeprobe.ExitCode `json:"code"`
	Message string              `json:"message,omitempty"`
}

type StatusResponse struct {
	Probes map[string]*ProbeResult `json:"probes"`
}
