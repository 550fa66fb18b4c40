package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/objkit/internal/report"
	"github.com/Faultbox/objkit/internal/source"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>...",
		Short: "Show the objects, pools and bounds of OBJ files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				doc, err := source.Load(path, a.cfg.Input)
				if err != nil {
					return err
				}
				summary, err := report.Summary(doc)
				if err != nil {
					return err
				}
				fmt.Fprint(out, summary)
				fmt.Fprint(out, report.Problems(doc))
			}
			return nil
		},
	}
}
