package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	pamfax "github.com/dynaptico/pamfax-go"
)

func newStateCmd(opts *cliOptions) *cobra.Command {
	var (
		wait     bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show the state of the fax job bound to the session",
		Long: `Show the state of the fax job bound to a session. The session is named by
--user-token (or PAMFAX_USER_TOKEN), as printed by "pamfax send --wait=false".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cli, err := buildClient(ctx, cmd, opts)
			if err != nil {
				return recordFailure(opts.failLogPath, "", "login", err)
			}

			var state *pamfax.FaxState
			if wait {
				state, err = cli.WaitForFaxReady(ctx, interval)
			} else {
				state, err = cli.GetFaxState(ctx)
			}
			if err != nil {
				return recordFailure(opts.failLogPath, "", "state", err)
			}

			logEvent(cmd, opts, slog.LevelDebug, "Fax state fetched",
				slog.String("fax", state.Container.UUID),
				slog.String("state", string(state.ContainerState)),
				slog.Bool("converting", state.Converting),
			)
			return writeResult(cmd.OutOrStdout(), opts.format, state)
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Poll until the job is ready to send or has failed")
	cmd.Flags().DurationVar(&interval, "interval", pamfax.DefaultPollInterval, "Polling interval when waiting")

	return cmd
}
