package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mittwald/writeprobe/pkg/writeprobe"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultConfigDir = "/etc/writeprobe.d"

func newRootCmd() *cobra.Command {
	var (
		target   string
		logLevel string
	)

	rootCmd := &cobra.Command{
		Use:   "writeprobe --target <path>",
		Short: "writeprobe - check whether a filesystem location is writable",
		Long: "writeprobe creates the parent directories of the target, writes a fixed payload to it and reports the result as exit code: " +
			"0 if the write succeeded, 42 if it was denied by permissions or a read-only filesystem, 1 for any other error.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return usageError(errors.Wrapf(err, "invalid --log-level %q", logLevel))
			}
			log.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if target == "" {
				return usageError(errors.New("--target must not be empty"))
			}

			outcome := writeprobe.Run(target)
			if err := outcome.Write(cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
				log.WithError(err).Error("failed to print probe outcome")
			}

			if !outcome.OK() {
				return &ExitError{Code: int(outcome.Code)}
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&target, "target", "", "file to write the probe payload to")
	_ = rootCmd.MarkFlagRequired("target")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", log.WarnLevel.String(), "log level for diagnostics written to stderr")

	rootCmd.AddCommand(newCheckCmd(), newServeCmd(), newVersionCmd())

	return rootCmd
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", exitErr.Err)
		}
		return exitErr.Code
	}

	// flag and argument parsing errors from cobra
	fmt.Fprintf(stderr, "Error: %s\n", err)
	return ExitUsage
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}
