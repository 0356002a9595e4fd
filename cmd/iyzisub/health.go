package main

import (
	"github.com/spf13/cobra"

	iyzisub "github.com/iyzisub/client-go"
)

func newHealthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check connectivity and look up card BINs",
	}
	cmd.AddCommand(newHealthCheckCmd(a))
	cmd.AddCommand(newHealthBinCmd(a))
	return cmd
}

func newHealthCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify connectivity and credentials with a signed request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if err := client.Health.Check(cmd.Context()); err != nil {
				return err
			}
			return printJSON(cmd, map[string]bool{"healthy": true})
		},
	}
}

func newHealthBinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bin <bin-number>",
		Short: "Look up the card metadata behind a BIN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			details, err := client.Health.BinCheck(cmd.Context(), &iyzisub.BinCheckRequest{BinNumber: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd, details)
		},
	}
}
