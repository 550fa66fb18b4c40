package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/objkit/internal/report"
	"github.com/Faultbox/objkit/internal/source"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse files and report the first error in each",
		Long: `Parse each file and report whether it is well formed.

With --validate, index references are also checked against the vertex
pools of their object. The command fails if any file has a problem.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				doc, err := source.Load(path, a.cfg.Input)
				if err != nil {
					fmt.Fprint(out, report.Failure(err))
					failed++
					continue
				}
				if len(doc.Problems) > 0 {
					fmt.Fprint(out, report.Problems(doc))
					failed++
					continue
				}
				fmt.Fprint(out, report.Success(doc))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files: %w", failed, len(args), errReported)
			}
			return nil
		},
	}
}
