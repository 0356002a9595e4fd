package main

import (
	"strings"

	"github.com/spf13/cobra"

	iyzisub "github.com/iyzisub/client-go"
)

func newSubscriptionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscriptions",
		Short: "Manage subscription lifecycles",
	}
	cmd.AddCommand(newSubscriptionsInitCmd(a))
	cmd.AddCommand(newSubscriptionsGetCmd(a))
	cmd.AddCommand(newSubscriptionsSearchCmd(a))
	cmd.AddCommand(newSubscriptionsActivateCmd(a))
	cmd.AddCommand(newSubscriptionsCancelCmd(a))
	cmd.AddCommand(newSubscriptionsUpgradeCmd(a))
	cmd.AddCommand(newSubscriptionsRetryCmd(a))
	return cmd
}

func newSubscriptionsInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Start a subscription from a JSON document on stdin",
		Long: `Start a subscription by charging a card directly, without the hosted
checkout form. The request document carries the pricing plan reference,
the customer, and the payment card.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req iyzisub.InitializeSubscriptionRequest
			if err := readRequest(cmd, &req); err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			sub, err := client.Subscriptions.Initialize(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return printJSON(cmd, sub)
		},
	}
}

func newSubscriptionsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <reference-code>",
		Short: "Retrieve a subscription with its order history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			sub, err := client.Subscriptions.Retrieve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, sub)
		},
	}
}

func newSubscriptionsSearchCmd(a *app) *cobra.Command {
	var (
		page, count int
		customer    string
		plan        string
		parent      string
		reference   string
		status      string
		startDate   string
		endDate     string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search subscriptions",
		Example: `  iyzisub subscriptions search --customer cust-1 --status ACTIVE
  iyzisub subscriptions search --start-date 2024-01-01 --end-date 2024-02-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			result, err := client.Subscriptions.Search(cmd.Context(), &iyzisub.SearchSubscriptionsOptions{
				Page:                      page,
				Count:                     count,
				SubscriptionReferenceCode: reference,
				ParentReferenceCode:       parent,
				CustomerReferenceCode:     customer,
				PricingPlanReferenceCode:  plan,
				SubscriptionStatus:        iyzisub.SubscriptionStatus(strings.ToUpper(status)),
				StartDate:                 startDate,
				EndDate:                   endDate,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "1-based page number")
	cmd.Flags().IntVar(&count, "count", 0, "page size")
	cmd.Flags().StringVar(&reference, "reference", "", "subscription reference code")
	cmd.Flags().StringVar(&parent, "parent", "", "parent subscription reference code")
	cmd.Flags().StringVar(&customer, "customer", "", "customer reference code")
	cmd.Flags().StringVar(&plan, "plan", "", "pricing plan reference code")
	cmd.Flags().StringVar(&status, "status", "", "subscription status: PENDING, ACTIVE, UNPAID, UPGRADED, CANCELED, EXPIRED")
	cmd.Flags().StringVar(&startDate, "start-date", "", "creation date lower bound, yyyy-MM-dd")
	cmd.Flags().StringVar(&endDate, "end-date", "", "creation date upper bound, yyyy-MM-dd")
	return cmd
}

func newSubscriptionsActivateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <reference-code>",
		Short: "Activate a PENDING subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if err := client.Subscriptions.Activate(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printJSON(cmd, map[string]bool{"activated": true})
		},
	}
}

func newSubscriptionsCancelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <reference-code>",
		Short: "Cancel a subscription at the end of the paid period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if err := client.Subscriptions.Cancel(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printJSON(cmd, map[string]bool{"canceled": true})
		},
	}
}

func newSubscriptionsUpgradeCmd(a *app) *cobra.Command {
	var (
		plan            string
		useTrial        bool
		resetRecurrence bool
	)

	cmd := &cobra.Command{
		Use:   "upgrade <reference-code>",
		Short: "Move a subscription to another pricing plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			sub, err := client.Subscriptions.Upgrade(cmd.Context(), args[0], &iyzisub.UpgradeSubscriptionRequest{
				NewPricingPlanReferenceCode: plan,
				UpgradePeriod:               "NOW",
				UseTrial:                    useTrial,
				ResetRecurrenceCount:        resetRecurrence,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, sub)
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "new pricing plan reference code")
	cmd.Flags().BoolVar(&useTrial, "use-trial", false, "grant the new plan's trial period")
	cmd.Flags().BoolVar(&resetRecurrence, "reset-recurrence", false, "restart the recurrence count under the new plan")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}

func newSubscriptionsRetryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "retry <order-reference-code>",
		Short: "Charge a failed subscription order again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			err = client.Subscriptions.RetryPayment(cmd.Context(), &iyzisub.RetryPaymentRequest{
				ReferenceCode: args[0],
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]bool{"retried": true})
		},
	}
}
