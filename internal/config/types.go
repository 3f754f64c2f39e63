package config

const (
	ExpectWritable = "writable"
	ExpectDenied   = "denied"
)

// Probe describes a single named write probe.
//
//	probe "tmp" {
//	  target = "{{ env \"TMPDIR\" | default \"/tmp\" }}/writeprobe"
//	  expect = "writable"
//	}
type Probe struct {
	Name   string `hcl:",key"`
	Target string `hcl:"target"`
	Expect string `hcl:"expect"`
}

type Ignition struct {
	Probes []Probe `hcl:"probe"`
}
