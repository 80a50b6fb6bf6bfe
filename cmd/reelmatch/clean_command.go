package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelmatch/internal/textutil"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var showTitle bool
	var showStripped bool

	cmd := &cobra.Command{
		Use:   "clean NAME",
		Short: "Produce a comparison-friendly form of a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, textutil.Clean(name))
			if showStripped {
				fmt.Fprintln(out, textutil.StripInvalid(name))
			}
			if showTitle {
				fmt.Fprintln(out, textutil.TitleCase(textutil.Clean(name)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTitle, "title", false, "Also print the display-title casing of the cleaned name")
	cmd.Flags().BoolVar(&showStripped, "strip", false, "Also print the name with filesystem-invalid characters removed")

	return cmd
}
