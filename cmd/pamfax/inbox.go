package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	pamfax "github.com/dynaptico/pamfax-go"
)

var faxFolders = []string{"inbox", "outbox", "sent", "trash", "unpaid"}

func newInboxCmd(opts *cliOptions) *cobra.Command {
	var (
		page   pamfax.Page
		folder string
	)

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "List the faxes of one history folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cli, err := buildClient(ctx, cmd, opts)
			if err != nil {
				return recordFailure(opts.failLogPath, "", "login", err)
			}

			var list func(ctx context.Context, page pamfax.Page) (*pamfax.Payload, error)
			switch folder {
			case "inbox":
				list = cli.ListInboxFaxes
			case "outbox":
				list = cli.ListOutboxFaxes
			case "sent":
				list = cli.ListSentFaxes
			case "trash":
				list = cli.ListTrash
			case "unpaid":
				list = cli.ListUnpaidFaxes
			default:
				return fmt.Errorf("unsupported folder: %s", folder)
			}

			payload, err := list(ctx, page)
			if err != nil {
				return recordFailure(opts.failLogPath, "", folder, err)
			}
			return writeResult(cmd.OutOrStdout(), opts.format, payload)
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "inbox", "Fax folder: inbox|outbox|sent|trash|unpaid")
	cmd.Flags().IntVar(&page.Current, "page", 0, "Page to fetch (0 uses the server default)")
	cmd.Flags().IntVar(&page.PerPage, "per-page", 0, "Items per page (0 uses the server default)")
	_ = cmd.RegisterFlagCompletionFunc("folder", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return faxFolders, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
