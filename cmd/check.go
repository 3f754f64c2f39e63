package cmd

import (
	"fmt"
	"time"

	"github.com/mittwald/writeprobe/internal/config"
	"github.com/mittwald/writeprobe/pkg/probe"
	"github.com/mittwald/writeprobe/pkg/report"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var (
		configDir string
		asJSON    bool
		color     bool
		timeout   time.Duration
	)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Run all configured probes once",
		Long:  "This sub-command runs every probe found in the config dir once and exits with 0 if all of them met their expectation, 1 otherwise.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := loadProbeHandler(configDir, timeout)
			if err != nil {
				return usageError(err)
			}

			results, runErr := handler.RunAll()

			out := report.Render(results)
			if asJSON {
				if out, err = report.JSON(results, color); err != nil {
					return &ExitError{Code: 1, Err: errors.Wrap(err, "failed to encode results")}
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if runErr != nil {
				log.WithError(runErr).Debug("probe check failed")
				return &ExitError{Code: 1}
			}
			return nil
		},
	}

	checkCmd.Flags().StringVarP(&configDir, "config-dir", "c", defaultConfigDir, "directory containing the .hcl probe definitions")
	checkCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print results as JSON")
	checkCmd.Flags().BoolVar(&color, "color", false, "colorize JSON output")
	checkCmd.Flags().DurationVar(&timeout, "timeout", probe.DefaultTimeout, "time to wait for all probes to finish")

	return checkCmd
}

func loadProbeHandler(configDir string, timeout time.Duration) (*probe.Handler, error) {
	ignitionConfig := &config.Ignition{}
	if err := ignitionConfig.GenerateFromConfigDir(configDir); err != nil {
		return nil, errors.Wrapf(err, "failed while trying to generate probe config from dir %q", configDir)
	}

	handler, err := probe.NewProbeHandler(ignitionConfig, timeout)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up probes")
	}

	return handler, nil
}
