package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	pamfax "github.com/dynaptico/pamfax-go"
)

func newSendCmd(opts *cliOptions) *cobra.Command {
	so := &sendOptions{opts: opts}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Create a fax job, attach documents and recipients, and send it",
		Example: `  pamfax send --to +14155551212 --file contract.pdf
  pamfax send --to +14155551212 --remote-url https://example.com/a.pdf --cover 3 --cover-text "Please sign"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := so.Complete(); err != nil {
				return recordFailure(opts.failLogPath, "", "send", err)
			}
			return so.Run(cmd)
		},
	}

	so.addFlags(cmd)

	return cmd
}

// preparedJob is printed when send returns before the job is ready.
type preparedJob struct {
	FaxUUID   string `json:"fax_uuid"`
	UserToken string `json:"user_token"`
}

type sendOptions struct {
	files      []string
	remoteURLs []string
	recipients []string
	coverID    int
	coverText  string
	wait       bool
	interval   time.Duration
	later      bool
	noSend     bool
	opts       *cliOptions
}

func (o *sendOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&o.recipients, "to", "t", nil, "Recipient fax number in international format (repeatable)")
	cmd.Flags().StringSliceVarP(&o.files, "file", "f", nil, "Local document to upload (repeatable)")
	cmd.Flags().StringSliceVar(&o.remoteURLs, "remote-url", nil, "Document URL for the service to fetch (repeatable)")
	cmd.Flags().IntVar(&o.coverID, "cover", 0, "Cover template id as listed by the covers command")
	cmd.Flags().StringVar(&o.coverText, "cover-text", "", "Text printed on the cover page")
	cmd.Flags().BoolVar(&o.wait, "wait", true, "Wait for document conversion before sending")
	cmd.Flags().DurationVar(&o.interval, "interval", pamfax.DefaultPollInterval, "Polling interval for the fax state")
	cmd.Flags().BoolVar(&o.later, "later", false, "Queue the fax until enough credit is available")
	cmd.Flags().BoolVar(&o.noSend, "no-send", false, "Stop after the job is ready and print its state")
}

func (o *sendOptions) Complete() error {
	if len(o.recipients) == 0 {
		return errors.New("at least one --to recipient is required")
	}
	if len(o.files) == 0 && len(o.remoteURLs) == 0 {
		return errors.New("flag --file or --remote-url is required")
	}
	if o.coverText != "" && o.coverID <= 0 {
		return errors.New("--cover-text needs a --cover template id")
	}
	for _, file := range o.files {
		info, err := os.Stat(file)
		if err != nil {
			return fmt.Errorf("stat file: %w", err)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("not a regular file: %s", file)
		}
	}
	if !o.wait && o.noSend {
		return errors.New("--no-send requires --wait")
	}
	return nil
}

func (o *sendOptions) Run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	failLog := o.opts.failLogPath

	cli, err := buildClient(ctx, cmd, o.opts)
	if err != nil {
		return recordFailure(failLog, "", "login", err)
	}

	job, err := cli.Create(ctx)
	if err != nil {
		return recordFailure(failLog, "", "create", err)
	}
	faxUUID := job.FaxContainer.UUID
	logEvent(cmd, o.opts, slog.LevelInfo, "Fax job created", slog.String("fax", faxUUID))

	if o.coverID > 0 {
		if err := cli.SetCover(ctx, o.coverID, o.coverText); err != nil {
			return recordFailure(failLog, faxUUID, fmt.Sprintf("cover %d", o.coverID), err)
		}
		logEvent(cmd, o.opts, slog.LevelInfo, "Cover set", slog.String("fax", faxUUID), slog.Int("cover", o.coverID))
	}

	for _, path := range o.files {
		added, err := uploadFile(ctx, cli, path)
		if err != nil {
			return recordFailure(failLog, faxUUID, path, err)
		}
		logEvent(cmd, o.opts, slog.LevelInfo, "File uploaded",
			slog.String("fax", faxUUID),
			slog.String("file", filepath.Base(path)),
			slog.String("file_uuid", added.FaxContainerFile.FileUUID),
		)
	}

	for _, remote := range o.remoteURLs {
		added, err := cli.AddRemoteFile(ctx, remote)
		if err != nil {
			return recordFailure(failLog, faxUUID, remote, err)
		}
		logEvent(cmd, o.opts, slog.LevelInfo, "Remote file added",
			slog.String("fax", faxUUID),
			slog.String("url", remote),
			slog.String("file_uuid", added.FaxContainerFile.FileUUID),
		)
	}

	for _, number := range o.recipients {
		added, err := cli.AddRecipient(ctx, number, "")
		if err != nil {
			return recordFailure(failLog, faxUUID, number, err)
		}
		logEvent(cmd, o.opts, slog.LevelInfo, "Recipient added",
			slog.String("fax", faxUUID),
			slog.String("number", added.FaxRecipient.Number),
			slog.Float64("price_per_page", added.FaxRecipient.PricePerPage),
		)
	}

	if !o.wait {
		logEvent(cmd, o.opts, slog.LevelInfo, "Fax job prepared, follow it with `pamfax state --wait --user-token`",
			slog.String("fax", faxUUID),
		)
		return writeResult(cmd.OutOrStdout(), o.opts.format, preparedJob{FaxUUID: faxUUID, UserToken: cli.UserToken()})
	}

	state, err := cli.WaitForFaxReady(ctx, o.interval)
	if err != nil {
		return recordFailure(failLog, faxUUID, "wait", err)
	}
	logEvent(cmd, o.opts, slog.LevelInfo, "Fax job ready",
		slog.String("fax", faxUUID),
		slog.String("state", string(state.ContainerState)),
		slog.Int("files", len(state.Files)),
		slog.Float64("price", state.Container.Price),
	)

	if o.noSend {
		return writeResult(cmd.OutOrStdout(), o.opts.format, state)
	}

	if o.later {
		err = cli.SendLater(ctx)
	} else {
		err = cli.Send(ctx)
	}
	if err != nil {
		if pamfax.IsCode(err, pamfax.CodeNotEnoughCredit) && !o.later {
			err = fmt.Errorf("%w (retry with --later to queue the fax)", err)
		}
		return recordFailure(failLog, faxUUID, "send", err)
	}

	logEvent(cmd, o.opts, slog.LevelInfo, "Fax submitted",
		slog.String("fax", faxUUID),
		slog.Bool("later", o.later),
	)
	return nil
}

// uploadFile streams one local document into the fax job.
func uploadFile(ctx context.Context, cli pamfax.FaxJobAPI, path string) (*pamfax.FaxContainerFileResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}
	defer f.Close()

	return cli.AddFileReader(ctx, path, f)
}
