// Package report renders probe-set results for terminals and machines.
package report

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mittwald/writeprobe/pkg/probe"
	"github.com/tidwall/pretty"
)

func sortedNames(results map[string]*probe.ProbeResult) []string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resultLine(name string, res *probe.ProbeResult) string {
	if res.OK {
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleOK.Render("✔"), " ",
			styleHighlight.Render(name), " (",
			styleNotSet.Render(res.Target), "; ",
			styleOK.Render(res.Expect), ")",
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Left,
			styleFailed.Render("✖"), " ",
			styleHighlight.Render(name), " (",
			styleNotSet.Render(res.Target), "; expected ",
			styleFailed.Render(res.Expect), ")",
		),
		styleMessage.Render(res.Message),
	)
}

// Render returns one block per probe, ordered by probe name.
func Render(results map[string]*probe.ProbeResult) string {
	lines := make([]string, 0, len(results))
	for _, name := range sortedNames(results) {
		lines = append(lines, resultLine(name, results[name]))
	}
	return strings.Join(lines, "\n")
}

func JSON(results map[string]*probe.ProbeResult, color bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")

	if err := enc.Encode(probe.StatusResponse{Probes: results}); err != nil {
		return "", err
	}

	out := buf.Bytes()
	if color {
		out = pretty.Color(out, nil)
	}
	return strings.TrimRight(string(out), "\n"), nil
}
