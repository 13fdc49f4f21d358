package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	pamfax "github.com/dynaptico/pamfax-go"
)

const defaultEnvFile = ".env"

type cliOptions struct {
	apiKey            string
	apiSecret         string
	username          string
	password          string
	userToken         string
	baseURL           string
	sandbox           bool
	timeout           time.Duration
	processingTimeout time.Duration
	failLogPath       string
	envFile           string
	format            string
	verbose           bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:           "pamfax",
		Short:         "Send and inspect faxes through the PamFax API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(opts.envFile, cmd.Flags().Changed("env-file")); err != nil {
				return err
			}
			return validateFormat(opts.format)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.apiKey, "api-key", "", "PamFax API key (or set PAMFAX_API_KEY)")
	flags.StringVar(&opts.apiSecret, "api-secret", "", "PamFax API secret (or set PAMFAX_API_SECRET)")
	flags.StringVarP(&opts.username, "username", "u", "", "PamFax username (or set PAMFAX_USERNAME)")
	flags.StringVar(&opts.password, "password", "", "PamFax password (or set PAMFAX_PASSWORD)")
	flags.StringVar(&opts.userToken, "user-token", "", "Reuse an existing session instead of logging in (or set PAMFAX_USER_TOKEN)")
	flags.StringVar(&opts.baseURL, "base-url", "", "Base URL for the PamFax API (or set PAMFAX_BASE_URL, default "+pamfax.DefaultBaseURL+")")
	flags.BoolVar(&opts.sandbox, "sandbox", false, "Use the sandbox API at "+pamfax.SandboxBaseURL)
	flags.DurationVar(&opts.timeout, "timeout", pamfax.DefaultTimeout, "HTTP timeout for API requests")
	flags.DurationVar(&opts.processingTimeout, "processing-timeout", 0, "Upper bound for waiting on conversion (0 waits until the job settles)")
	flags.StringVar(&opts.failLogPath, "fail-log", "fail.log", "Path to write failed operation logs")
	flags.StringVar(&opts.envFile, "env-file", defaultEnvFile, "Dotenv file with PAMFAX_* variables")
	flags.StringVarP(&opts.format, "format", "o", formatJSON, "Result output format: json|yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every API request")

	cmd.AddCommand(newSendCmd(opts))
	cmd.AddCommand(newStateCmd(opts))
	cmd.AddCommand(newCoversCmd(opts))
	cmd.AddCommand(newNumberCmd(opts))
	cmd.AddCommand(newInboxCmd(opts))
	cmd.AddCommand(newFileCmd(opts))
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// loadEnvFile reads a dotenv file without overriding variables already set.
// A missing default file is not an error.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
