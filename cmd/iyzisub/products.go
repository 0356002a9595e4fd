package main

import (
	"github.com/spf13/cobra"

	iyzisub "github.com/iyzisub/client-go"
)

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage subscription products",
	}
	cmd.AddCommand(newProductsCreateCmd(a))
	cmd.AddCommand(newProductsGetCmd(a))
	cmd.AddCommand(newProductsListCmd(a))
	cmd.AddCommand(newProductsUpdateCmd(a))
	cmd.AddCommand(newProductsDeleteCmd(a))
	return cmd
}

func newProductsCreateCmd(a *app) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			product, err := client.Products.Create(cmd.Context(), &iyzisub.CreateProductRequest{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, product)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProductsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <reference-code>",
		Short: "Retrieve a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			product, err := client.Products.Retrieve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, product)
		},
	}
}

func newProductsListCmd(a *app) *cobra.Command {
	var page, count int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			result, err := client.Products.List(cmd.Context(), &iyzisub.ListOptions{Page: page, Count: count})
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

func newProductsUpdateCmd(a *app) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update <reference-code>",
		Short: "Update a product's name and description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			product, err := client.Products.Update(cmd.Context(), args[0], &iyzisub.UpdateProductRequest{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, product)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProductsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <reference-code>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if err := client.Products.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printJSON(cmd, map[string]bool{"deleted": true})
		},
	}
}
