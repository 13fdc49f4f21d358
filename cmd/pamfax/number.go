package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	pamfax "github.com/dynaptico/pamfax-go"
)

type numberResult struct {
	Number string          `json:"number"`
	Info   *pamfax.Payload `json:"info,omitempty"`
	Price  *pamfax.Payload `json:"price,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func newNumberCmd(opts *cliOptions) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "number NUMBER...",
		Short: "Look up zone, carrier and page price for fax numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cli, err := buildClient(ctx, cmd, opts)
			if err != nil {
				return recordFailure(opts.failLogPath, "", "login", err)
			}

			results, failed := lookupNumbers(cmd, cli, args, concurrency, opts.failLogPath)
			if err := writeResult(cmd.OutOrStdout(), opts.format, results); err != nil {
				return err
			}

			logEvent(cmd, opts, slog.LevelDebug, "Numbers looked up",
				slog.Int("numbers", len(results)),
				slog.Int("failed", failed),
			)
			if failed > 0 {
				return errors.New("some number lookups failed, see the fail log")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 3, "Number of concurrent lookups")

	return cmd
}

// lookupNumbers queries every number concurrently. Results keep the order of
// numbers; a failed lookup is recorded in its result and does not cancel the rest.
func lookupNumbers(cmd *cobra.Command, cli pamfax.NumberInfoAPI, numbers []string, concurrency int, failLog string) ([]numberResult, int) {
	results := make([]numberResult, len(numbers))

	eg, ctx := errgroup.WithContext(cmd.Context())
	if concurrency > 0 {
		eg.SetLimit(concurrency)
	}

	for i, number := range numbers {
		i, number := i, number
		eg.Go(func() error {
			res := numberResult{Number: number}
			defer func() { results[i] = res }()

			info, err := cli.GetNumberInfo(ctx, number)
			if err != nil {
				res.Error = recordFailure(failLog, "", number, err).Error()
				return nil
			}
			res.Info = info

			price, err := cli.GetPagePrice(ctx, number)
			if err != nil {
				res.Error = recordFailure(failLog, "", number, err).Error()
				return nil
			}
			res.Price = price
			return nil
		})
	}
	_ = eg.Wait()

	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
	}
	return results, failed
}
