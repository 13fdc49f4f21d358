package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	pamfax "github.com/dynaptico/pamfax-go"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

const (
	envAPIKey    = "PAMFAX_API_KEY"
	envAPISecret = "PAMFAX_API_SECRET"
	envUsername  = "PAMFAX_USERNAME"
	envPassword  = "PAMFAX_PASSWORD"
	envUserToken = "PAMFAX_USER_TOKEN"
	envBaseURL   = "PAMFAX_BASE_URL"
)

func validateFormat(format string) error {
	switch strings.ToLower(format) {
	case formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// resolveCredentials fills unset flags from the environment.
func resolveCredentials(opts *cliOptions) error {
	opts.apiKey = firstNonEmpty(opts.apiKey, os.Getenv(envAPIKey))
	opts.apiSecret = firstNonEmpty(opts.apiSecret, os.Getenv(envAPISecret))
	opts.username = firstNonEmpty(opts.username, os.Getenv(envUsername))
	opts.password = firstNonEmpty(opts.password, os.Getenv(envPassword))
	opts.userToken = firstNonEmpty(opts.userToken, os.Getenv(envUserToken))

	if opts.apiKey == "" {
		return errors.New("api key is required (flag --api-key or " + envAPIKey + ")")
	}
	if opts.apiSecret == "" {
		return errors.New("api secret is required (flag --api-secret or " + envAPISecret + ")")
	}
	if opts.userToken == "" && opts.username == "" {
		return errors.New("username is required (flag --username or " + envUsername + ") unless a user token is given")
	}
	return nil
}

func resolveBaseURL(opts *cliOptions) string {
	if opts.baseURL != "" {
		return opts.baseURL
	}
	if env := os.Getenv(envBaseURL); env != "" {
		return env
	}
	if opts.sandbox {
		return pamfax.SandboxBaseURL
	}
	return pamfax.DefaultBaseURL
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// buildClient returns a client bound to a session, either the one named by
// the user token or a fresh one from VerifyUser.
func buildClient(ctx context.Context, cmd *cobra.Command, opts *cliOptions) (pamfax.Client, error) {
	if err := resolveCredentials(opts); err != nil {
		return nil, err
	}

	options := []pamfax.Option{
		pamfax.WithAPIKey(opts.apiKey, opts.apiSecret),
		pamfax.WithBaseURL(resolveBaseURL(opts)),
		pamfax.WithTimeout(opts.timeout),
		pamfax.WithProcessingTimeout(opts.processingTimeout),
	}
	if opts.verbose {
		options = append(options, pamfax.WithLogger(opts.logger(cmd)))
	}
	if opts.userToken != "" {
		return pamfax.NewClient(append(options, pamfax.WithUserToken(opts.userToken))...), nil
	}

	cli := pamfax.NewClient(options...)
	if err := cli.Login(ctx, opts.username, opts.password); err != nil {
		return nil, fmt.Errorf("login as %s: %w", opts.username, err)
	}
	logEvent(cmd, opts, slog.LevelDebug, "Logged in", slog.String("username", opts.username))

	return cli, nil
}

// writeResult prints v to the command's stdout as indented JSON or as YAML.
func writeResult(w io.Writer, format string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if strings.EqualFold(format, formatYAML) {
		if content, err = jsonToYAML(content); err != nil {
			return err
		}
	} else {
		content = append(content, '\n')
	}

	_, err = w.Write(content)
	return err
}

func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("convert result to yaml: %w", err)
	}
	resetStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// resetStyle drops the flow and quoting styles inherited from JSON so the
// encoder emits block YAML.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		resetStyle(child)
	}
}

func defaultDownloadName(fileUUID, contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	ext := ".bin"
	if mt := mimetype.Lookup(strings.TrimSpace(mediaType)); mt != nil && mt.Extension() != "" {
		ext = mt.Extension()
	}
	return fileUUID + ext
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	return nil
}

func (o *cliOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return newLogger(cmd.ErrOrStderr(), level)
}

func logEvent(cmd *cobra.Command, opts *cliOptions, level slog.Level, msg string, attrs ...slog.Attr) {
	opts.logger(cmd).LogAttrs(cmd.Context(), level, msg, attrs...)
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(handler)
}
