package main

import (
	"github.com/spf13/cobra"

	iyzisub "github.com/iyzisub/client-go"
)

func newCheckoutCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Manage hosted checkout forms",
	}
	cmd.AddCommand(newCheckoutInitCmd(a))
	cmd.AddCommand(newCheckoutGetCmd(a))
	cmd.AddCommand(newCheckoutCardUpdateCmd(a))
	return cmd
}

func newCheckoutInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a hosted checkout form from a JSON document on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req iyzisub.InitializeCheckoutFormRequest
			if err := readRequest(cmd, &req); err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			form, err := client.CheckoutForms.Initialize(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return printJSON(cmd, form)
		},
	}
}

func newCheckoutGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <token>",
		Short: "Reconcile a completed checkout form",
		Long: `Reconcile a completed checkout form by token and print the
subscription it created. Call this from the callback URL handler after the
customer finishes the hosted payment page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			sub, err := client.CheckoutForms.Retrieve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, sub)
		},
	}
}

func newCheckoutCardUpdateCmd(a *app) *cobra.Command {
	var (
		callbackURL  string
		subscription string
		customer     string
	)

	cmd := &cobra.Command{
		Use:   "card-update",
		Short: "Create a hosted form for replacing a subscription's card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			form, err := client.CheckoutForms.InitializeCardUpdate(cmd.Context(), &iyzisub.InitializeCardUpdateRequest{
				CallbackURL:               callbackURL,
				SubscriptionReferenceCode: subscription,
				CustomerReferenceCode:     customer,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, form)
		},
	}

	cmd.Flags().StringVar(&callbackURL, "callback-url", "", "URL the form redirects to when done")
	cmd.Flags().StringVar(&subscription, "subscription", "", "subscription reference code")
	cmd.Flags().StringVar(&customer, "customer", "", "customer reference code")
	_ = cmd.MarkFlagRequired("callback-url")
	return cmd
}
