package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"storefront.GO/gateway"
	categoryService "storefront.GO/service/category"
)

var (
	reconcileEmail    string
	reconcilePassword string
	reconcileToken    string
)

var reconcileCmd = &cobra.Command{
	Use:   "categories:reconcile",
	Short: "Create missing category records from observed product categories",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		gw := gateway.New("")

		if reconcileToken != "" {
			gw.SetToken(reconcileToken)
		} else if reconcileEmail != "" {
			if _, err := gw.Login(ctx, reconcileEmail, reconcilePassword); err != nil {
				fmt.Printf("Login failed: %v\n", err)
				os.Exit(1)
			}
		}

		res, err := categoryService.Reconcile(ctx, gw)
		if err != nil {
			fmt.Printf("Reconciliation failed: %v\n", err)
			os.Exit(1)
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}
		fmt.Printf(`
=== Reconciliation Report ===
Products scanned:    %d
Existing categories: %d
Candidates:          %d
Created:             %d
Skipped:             %d
Outcome:             %s
Total time:          %s
=============================
`, res.ProductsScanned, res.ExistingCategories, len(res.Candidates),
			res.Created, res.Skipped, res.Outcome, res.TotalTime.Round(time.Millisecond))
	},
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileEmail, "email", "", "Admin email for login")
	reconcileCmd.Flags().StringVar(&reconcilePassword, "password", "", "Admin password for login")
	reconcileCmd.Flags().StringVar(&reconcileToken, "token", "", "Bearer token (skips login)")
	rootCmd.AddCommand(reconcileCmd)
}
