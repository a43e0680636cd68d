// Command autoreg generates registering accessors for the struct fields
// tagged `autoreg:""` in the given packages.
//
// Usage:
//
//	autoreg generate [--prune] [--dry-run] [packages]
//	autoreg watch [packages]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"goa.design/clue/log"
)

// options holds the flags shared by all commands.
type options struct {
	configPath string
	debug      bool
	tags       []string
	prune      bool
	dryRun     bool
	keepGoing  bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return newCommand(&options{})
}

// newCommand returns the root command binding its flags to opts.
func newCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "autoreg",
		Short:         "Generate accessors that keep tagged fields registered as submodules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(logContext(cmd.Context(), opts.debug))
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logs")
	flags.StringSliceVar(&opts.tags, "tags", nil, "Build tags used when loading packages")
	flags.BoolVar(&opts.prune, "prune", false, "Remove generated files whose field is no longer tagged")
	flags.BoolVar(&opts.keepGoing, "keep-going", false, "Exit successfully even when some tagged fields produce no accessor")
	cmd.AddCommand(newGenerateCommand(opts))
	cmd.AddCommand(newWatchCommand(opts))
	return cmd
}

// logContext returns a context carrying the clue logger configuration. Logs
// go to stderr, stdout lists the changed files.
func logContext(ctx context.Context, debug bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	format := log.FormatJSON
	if log.IsTerminal() {
		format = log.FormatTerminal
	}
	ctx = log.Context(ctx, log.WithFormat(format), log.WithOutput(os.Stderr))
	if debug {
		ctx = log.Context(ctx, log.WithDebug())
		log.Debugf(ctx, "debug logs enabled")
	}
	return ctx
}
