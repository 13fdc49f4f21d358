package main

import (
	"github.com/spf13/cobra"
)

func newCoversCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "covers",
		Short: "List the cover templates available for fax jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cli, err := buildClient(ctx, cmd, opts)
			if err != nil {
				return recordFailure(opts.failLogPath, "", "login", err)
			}

			resp, err := cli.ListAvailableCovers(ctx)
			if err != nil {
				return recordFailure(opts.failLogPath, "", "covers", err)
			}
			return writeResult(cmd.OutOrStdout(), opts.format, resp.Covers.Content)
		},
	}
}
