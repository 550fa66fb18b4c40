package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Faultbox/objkit/internal/source"
)

func newFmtCmd(a *app) *cobra.Command {
	var (
		overwrite bool
		header    string
	)

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite an OBJ file in canonical form",
		Long: `Parse an OBJ file and print it in canonical form.

If no file is provided, reads OBJ text from stdin.
Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := a.cfg.Output
			if cmd.Flags().Changed("header") {
				output.Header = header
			}

			var doc *source.Document
			if len(args) == 0 {
				if overwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				if doc, err = source.Parse("<stdin>", data, a.cfg.Input); err != nil {
					return err
				}
			} else {
				var err error
				if doc, err = source.Load(args[0], a.cfg.Input); err != nil {
					return err
				}
			}

			if overwrite {
				return source.Write(doc.Path, doc.Set, output)
			}
			data, err := source.Render(doc.Set, output)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "overwrite the file in place")
	cmd.Flags().StringVar(&header, "header", "", "comment to write at the top of the output")

	return cmd
}
