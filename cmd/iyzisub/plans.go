package main

import (
	"strings"

	"github.com/spf13/cobra"

	iyzisub "github.com/iyzisub/client-go"
)

func newPlansCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage pricing plans",
	}
	cmd.AddCommand(newPlansCreateCmd(a))
	cmd.AddCommand(newPlansGetCmd(a))
	cmd.AddCommand(newPlansListCmd(a))
	cmd.AddCommand(newPlansUpdateCmd(a))
	cmd.AddCommand(newPlansDeleteCmd(a))
	return cmd
}

func newPlansCreateCmd(a *app) *cobra.Command {
	var (
		name            string
		price           float64
		currency        string
		interval        string
		intervalCount   int
		trialDays       int
		recurrenceCount int
	)

	cmd := &cobra.Command{
		Use:   "create <product-reference-code>",
		Short: "Create a pricing plan under a product",
		Example: `  iyzisub plans create prod-1 --name Monthly --price 49.90 --currency TRY --interval MONTHLY
  iyzisub plans create prod-1 --name Annual --price 499 --currency TRY --interval YEARLY --trial-days 14`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			plan, err := client.PricingPlans.Create(cmd.Context(), args[0], &iyzisub.CreatePricingPlanRequest{
				Name:                 name,
				Price:                price,
				CurrencyCode:         iyzisub.Currency(strings.ToUpper(currency)),
				PaymentInterval:      iyzisub.PaymentInterval(strings.ToUpper(interval)),
				PaymentIntervalCount: intervalCount,
				TrialPeriodDays:      trialDays,
				RecurrenceCount:      recurrenceCount,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, plan)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "plan name")
	cmd.Flags().Float64Var(&price, "price", 0, "price per billing period")
	cmd.Flags().StringVar(&currency, "currency", "TRY", "currency code: TRY, USD, EUR, GBP")
	cmd.Flags().StringVar(&interval, "interval", "MONTHLY", "billing interval: DAILY, WEEKLY, MONTHLY, YEARLY")
	cmd.Flags().IntVar(&intervalCount, "interval-count", 0, "intervals per billing period")
	cmd.Flags().IntVar(&trialDays, "trial-days", 0, "free trial length in days")
	cmd.Flags().IntVar(&recurrenceCount, "recurrence-count", 0, "number of billing periods, 0 renews until cancelled")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func newPlansGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <reference-code>",
		Short: "Retrieve a pricing plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			plan, err := client.PricingPlans.Retrieve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, plan)
		},
	}
}

func newPlansListCmd(a *app) *cobra.Command {
	var page, count int

	cmd := &cobra.Command{
		Use:   "list <product-reference-code>",
		Short: "List a product's pricing plans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			result, err := client.PricingPlans.List(cmd.Context(), args[0], &iyzisub.ListOptions{Page: page, Count: count})
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

func newPlansUpdateCmd(a *app) *cobra.Command {
	var (
		name      string
		trialDays int
	)

	cmd := &cobra.Command{
		Use:   "update <reference-code>",
		Short: "Rename a pricing plan and adjust its trial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			plan, err := client.PricingPlans.Update(cmd.Context(), args[0], &iyzisub.UpdatePricingPlanRequest{
				Name:            name,
				TrialPeriodDays: trialDays,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, plan)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "plan name")
	cmd.Flags().IntVar(&trialDays, "trial-days", 0, "free trial length in days")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newPlansDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <reference-code>",
		Short: "Delete a pricing plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if err := client.PricingPlans.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printJSON(cmd, map[string]bool{"deleted": true})
		},
	}
}
