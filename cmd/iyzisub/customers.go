package main

import (
	"github.com/spf13/cobra"

	iyzisub "github.com/iyzisub/client-go"
)

func newCustomersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage subscription customers",
	}
	cmd.AddCommand(newCustomersCreateCmd(a))
	cmd.AddCommand(newCustomersGetCmd(a))
	cmd.AddCommand(newCustomersListCmd(a))
	cmd.AddCommand(newCustomersUpdateCmd(a))
	return cmd
}

func newCustomersCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a customer from a JSON document on stdin",
		Example: `  echo '{"name":"Ayse","surname":"Yilmaz","email":"ayse@example.com",
    "billingAddress":{"contactName":"Ayse Yilmaz","country":"Turkey","city":"Istanbul","address":"..."}}' |
    iyzisub customers create`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req iyzisub.CreateCustomerRequest
			if err := readRequest(cmd, &req); err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			customer, err := client.Customers.Create(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return printJSON(cmd, customer)
		},
	}
}

func newCustomersGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <reference-code>",
		Short: "Retrieve a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			customer, err := client.Customers.Retrieve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, customer)
		},
	}
}

func newCustomersListCmd(a *app) *cobra.Command {
	var page, count int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			result, err := client.Customers.List(cmd.Context(), &iyzisub.ListOptions{Page: page, Count: count})
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "1-based page number")
	cmd.Flags().IntVar(&count, "count", 0, "page size")
	return cmd
}

func newCustomersUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update <reference-code>",
		Short: "Update a customer from a JSON document on stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req iyzisub.UpdateCustomerRequest
			if err := readRequest(cmd, &req); err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			customer, err := client.Customers.Update(cmd.Context(), args[0], &req)
			if err != nil {
				return err
			}
			return printJSON(cmd, customer)
		},
	}
}
