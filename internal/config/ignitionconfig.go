package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/hashicorp/hcl"
	"github.com/mittwald/writeprobe/internal/helper"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func (ignitionConfig *Ignition) GenerateFromConfigDir(configDir string) error {
	configDir = strings.TrimRight(configDir, "/")

	matches, err := findFilesInPath(configDir)
	if err != nil {
		return err
	}

	for _, m := range matches {
		log.Debugf("found config file: %s", m)

		contents, err := os.ReadFile(m)
		if err != nil {
			return errors.Wrapf(err, "could not read configuration file %s", m)
		}

		if err := hcl.Unmarshal(contents, ignitionConfig); err != nil {
			return errors.Wrapf(err, "could not parse configuration file %s", m)
		}
	}

	return ignitionConfig.normalize()
}

func (ignitionConfig *Ignition) normalize() error {
	seen := make(map[string]struct{}, len(ignitionConfig.Probes))

	for i := range ignitionConfig.Probes {
		p := &ignitionConfig.Probes[i]

		if p.Name == "" {
			return fmt.Errorf("probe #%d has no name", i+1)
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("probe %q is defined more than once", p.Name)
		}
		seen[p.Name] = struct{}{}

		target, err := renderTarget(p.Name, helper.ResolveEnv(p.Target))
		if err != nil {
			return err
		}
		if target == "" {
			return fmt.Errorf("probe %q has no target", p.Name)
		}
		p.Target = target

		p.Expect = strings.ToLower(helper.SetDefaultStringIfEmpty(helper.ResolveEnv(p.Expect), ExpectWritable, "expect", p.Name))
		if p.Expect != ExpectWritable && p.Expect != ExpectDenied {
			return fmt.Errorf("probe %q: expect must be %q or %q, got %q", p.Name, ExpectWritable, ExpectDenied, p.Expect)
		}
	}

	return nil
}

func renderTarget(name, target string) (string, error) {
	if !strings.Contains(target, "{{") {
		return target, nil
	}

	tpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(target)
	if err != nil {
		return "", errors.Wrapf(err, "probe %q: invalid target template", name)
	}

	var out bytes.Buffer
	if err := tpl.Execute(&out, nil); err != nil {
		return "", errors.Wrapf(err, "probe %q: could not render target", name)
	}

	return strings.TrimSpace(out.String()), nil
}
