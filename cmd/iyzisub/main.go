// Command iyzisub is a small operator console for the iyzico subscription
// API. It reads credentials from the environment (or a .env file), runs one
// API call per invocation, and prints the result as JSON so the output can
// be piped into jq or test harnesses.
//
// Environment:
//
//	IYZICO_API_KEY             production API key
//	IYZICO_SECRET_KEY          production secret key
//	IYZICO_SANDBOX_API_KEY     sandbox API key
//	IYZICO_SANDBOX_SECRET_KEY  sandbox secret key
//	IYZICO_BASE_URL            endpoint override
//	IYZICO_SANDBOX             "true" switches to sandbox mode
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	iyzisub "github.com/iyzisub/client-go"
)

// app carries the root flags every subcommand builds its client from.
type app struct {
	sandbox bool
	debug   bool
	timeout time.Duration
}

// client builds an SDK client from the environment and the root flags.
// IYZICO_SANDBOX=true enables sandbox mode without the --sandbox flag.
func (a *app) client() (*iyzisub.Client, error) {
	var opts []iyzisub.Option
	if baseURL := os.Getenv("IYZICO_BASE_URL"); baseURL != "" {
		opts = append(opts, iyzisub.WithBaseURL(baseURL))
	}

	sandbox := a.sandbox
	if !sandbox {
		sandbox, _ = strconv.ParseBool(os.Getenv("IYZICO_SANDBOX"))
	}
	if sandbox {
		opts = append(opts,
			iyzisub.WithSandbox(),
			iyzisub.WithSandboxCredentials(
				os.Getenv("IYZICO_SANDBOX_API_KEY"),
				os.Getenv("IYZICO_SANDBOX_SECRET_KEY"),
			),
		)
	}
	if a.timeout > 0 {
		opts = append(opts, iyzisub.WithTimeout(a.timeout))
	}
	if a.debug {
		opts = append(opts, iyzisub.WithDebug(true))
	}

	return iyzisub.New(os.Getenv("IYZICO_API_KEY"), os.Getenv("IYZICO_SECRET_KEY"), opts...)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:     "iyzisub",
		Short:   "Manage iyzico subscription products, plans, customers, and subscriptions",
		Version: iyzisub.Version,
		// Errors are printed once in main, not by every command.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().BoolVar(&a.sandbox, "sandbox", false, "use the sandbox environment")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log requests and retries to stderr")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "per-request timeout (default 30s)")

	root.AddCommand(newProductsCmd(a))
	root.AddCommand(newPlansCmd(a))
	root.AddCommand(newCustomersCmd(a))
	root.AddCommand(newSubscriptionsCmd(a))
	root.AddCommand(newCheckoutCmd(a))
	root.AddCommand(newHealthCmd(a))
	return root
}

func main() {
	// A .env file in the working directory supplies credentials during
	// development. Missing files are fine.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readRequest decodes a JSON request document from the command's stdin.
// Commands with nested payloads (customers, subscriptions, checkout forms)
// take their request this way instead of through dozens of flags.
func readRequest(cmd *cobra.Command, v interface{}) error {
	if err := json.NewDecoder(cmd.InOrStdin()).Decode(v); err != nil {
		return fmt.Errorf("parse request from stdin: %w", err)
	}
	return nil
}
