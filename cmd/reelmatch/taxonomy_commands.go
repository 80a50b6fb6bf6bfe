package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelmatch/internal/crew"
	"reelmatch/internal/ratings"
	"reelmatch/internal/videos"
)

func newRoleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "role DEPARTMENT JOB",
		Short: "Map a provider crew department/job pair to a person role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), crew.MapRole(args[0], args[1]))
			return nil
		},
	}
}

func newTrailerCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "trailer SITE TYPE",
		Short: "Report whether a provider video record is a playable trailer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), videos.IsTrailer(args[0], args[1]))
			return nil
		},
	}
}

func newRatingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rating COUNTRY VALUE",
		Short: "Build a display parental rating from a country code and value",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ratings.Build(args[0], args[1]))
			return nil
		},
		Args: cobra.ExactArgs(2),
	}
}
