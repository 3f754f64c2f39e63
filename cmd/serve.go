package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mittwald/writeprobe/pkg/pidfile"
	"github.com/mittwald/writeprobe/pkg/probe"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		configDir  string
		listenPort int
		pidFile    string
		timeout    time.Duration
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve probe results over HTTP",
		Long:  "This sub-command exposes the configured probes at GET /status; every request runs all probes and answers 503 if any of them missed its expectation.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := loadProbeHandler(configDir, timeout)
			if err != nil {
				return usageError(err)
			}

			pidFileHandle := pidfile.New(pidFile)
			if err := pidFileHandle.Acquire(); err != nil {
				return &ExitError{Code: 1, Err: errors.Wrapf(err, "failed to write pid file to %q", pidFile)}
			}

			defer func() {
				if err := pidFileHandle.Release(); err != nil {
					log.Errorf("error while cleaning up the pid file: %s", err)
				}
			}()

			signals := make(chan os.Signal, 1)
			signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)
			defer signal.Stop(signals)

			log.Infof("probe server listens on port %d", listenPort)
			if err := probe.RunProbeServer(handler, signals, listenPort); err != nil {
				return &ExitError{Code: 1, Err: errors.Wrap(err, "probe server stopped with error")}
			}

			log.Info("probe server stopped without error")
			return nil
		},
	}

	serveCmd.Flags().StringVarP(&configDir, "config-dir", "c", defaultConfigDir, "directory containing the .hcl probe definitions")
	serveCmd.Flags().IntVarP(&listenPort, "listen-port", "p", 9102, "port to listen for status requests")
	serveCmd.Flags().StringVar(&pidFile, "pidfile", "", "write the process id to this file")
	serveCmd.Flags().DurationVar(&timeout, "timeout", probe.DefaultTimeout, "time to wait for all probes to finish per request")

	return serveCmd
}
