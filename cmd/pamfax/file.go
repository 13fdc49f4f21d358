package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newFileCmd(opts *cliOptions) *cobra.Command {
	var (
		output string
		dir    string
	)

	cmd := &cobra.Command{
		Use:   "file FILE_UUID",
		Short: "Download a fax document or page file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fileUUID := args[0]

			cli, err := buildClient(ctx, cmd, opts)
			if err != nil {
				return recordFailure(opts.failLogPath, "", "login", err)
			}

			target := output
			if target == "" {
				target = filepath.Join(dir, fileUUID+".download")
			}
			if err := ensureDir(target); err != nil {
				return recordFailure(opts.failLogPath, "", fileUUID, err)
			}

			f, err := os.Create(target)
			if err != nil {
				return recordFailure(opts.failLogPath, "", fileUUID, fmt.Errorf("create file: %w", err))
			}
			contentType, err := cli.GetFileTo(ctx, fileUUID, f)
			if closeErr := f.Close(); err == nil && closeErr != nil {
				err = fmt.Errorf("close file: %w", closeErr)
			}
			if err != nil {
				_ = os.Remove(target)
				return recordFailure(opts.failLogPath, "", fileUUID, err)
			}

			if output == "" {
				named := filepath.Join(dir, defaultDownloadName(fileUUID, contentType))
				if err := os.Rename(target, named); err != nil {
					return recordFailure(opts.failLogPath, "", fileUUID, fmt.Errorf("rename download: %w", err))
				}
				target = named
			}

			logEvent(cmd, opts, slog.LevelInfo, "Downloaded file",
				slog.String("file_uuid", fileUUID),
				slog.String("content_type", contentType),
				slog.String("path", target),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output-file", "", "Path to write the file (defaults to FILE_UUID plus an extension for its type)")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory for downloads when --output-file is not set")

	return cmd
}
