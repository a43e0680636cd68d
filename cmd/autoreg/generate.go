package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"goa.design/clue/log"

	"goa.design/autoreg/codegen"
)

// errDiagnosed is returned when tagged fields produced no accessor.
var errDiagnosed = errors.New("some tagged fields have no accessor")

func newGenerateCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [packages]",
		Short: "Generate the accessors of the tagged fields of the given packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			g, err := s.generator("")
			if err != nil {
				return err
			}
			_, err = runGenerate(cmd.Context(), g, s, cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report the files that would change without writing them")
	return cmd
}

// runGenerate runs one generation pass and writes its outputs. Accessors of
// healthy fields are written even when other fields are diagnosed.
func runGenerate(ctx context.Context, g *codegen.Generator, s *settings, stdout, stderr io.Writer, patterns []string) (*codegen.Result, error) {
	res, err := g.Generate(ctx, patterns...)
	if err != nil {
		return nil, err
	}
	for _, terr := range res.TypeErrors {
		log.Debug(ctx, log.KV{K: "msg", V: "type error"}, log.KV{K: "err", V: terr.Error()})
	}
	changes, werr := codegen.Write(ctx, res, s.writeOptions())
	for _, c := range changes {
		if c.Action == codegen.Unchanged {
			continue
		}
		fmt.Fprintf(stdout, "%s %s\n", c.Action, c.Path)
	}
	for _, d := range res.Diagnostics {
		fmt.Fprintln(stderr, d)
	}
	log.Info(ctx,
		log.KV{K: "msg", V: "generated"},
		log.KV{K: "outputs", V: len(res.Outputs)},
		log.KV{K: "diagnostics", V: len(res.Diagnostics)},
		log.KV{K: "dry-run", V: s.dryRun})
	if werr != nil {
		return res, werr
	}
	if res.Diagnosed() && !s.keepGoing {
		return res, errDiagnosed
	}
	return res, nil
}
