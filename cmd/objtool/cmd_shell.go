package main

import (
	"github.com/spf13/cobra"

	"github.com/Faultbox/objkit/internal/shell"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell [file]",
		Short: "Inspect OBJ files interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := shell.New(a.cfg, cmd.OutOrStdout())
			if len(args) == 1 {
				if err := sh.Load(args[0]); err != nil {
					return err
				}
			}
			return sh.Run("obj > ")
		},
	}
}
