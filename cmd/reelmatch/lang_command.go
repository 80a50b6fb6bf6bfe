package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelmatch/internal/language"
)

func newLangCommand(ctx *commandContext) *cobra.Command {
	var request string

	cmd := &cobra.Command{
		Use:   "lang [TAG]",
		Short: "Normalize a language tag and show derived provider parameters",
		Long: `Normalize a language tag the way provider requests expect it, and show the
image-languages parameter derived from it. With no TAG the configured search
language is used. --request widens a bare 2-letter tag to the requested tag
when they share a base.

Examples:
  reelmatch lang de-ch
  reelmatch lang en --request en-US
  reelmatch lang`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := ""
			if len(args) > 0 {
				tag = strings.TrimSpace(args[0])
			}
			if tag == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				tag = cfg.Search.Language
			}

			normalized := language.Normalize(tag)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "normalized:      %s\n", normalized)
			fmt.Fprintf(out, "image languages: %s\n", language.ImageLanguages(tag))
			fmt.Fprintf(out, "iso 639-1:       %s\n", language.ToISO2(normalized))
			fmt.Fprintf(out, "display name:    %s\n", language.DisplayName(normalized))
			if request != "" {
				fmt.Fprintf(out, "adjusted:        %s\n", language.AdjustImageLanguage(normalized, request))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&request, "request", "", "Request-language tag to widen the normalized tag against")

	return cmd
}
