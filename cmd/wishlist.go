package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storefront.GO/store/notify"
)

var wishlistToggleCmd = &cobra.Command{
	Use:   "wishlist:toggle <product-id>",
	Short: "Add a product to the wishlist, or remove it if present",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sess := mustSession()
		p, err := sess.gw.GetProduct(context.Background(), args[0])
		if err != nil {
			fmt.Printf("Product lookup failed: %v\n", err)
			os.Exit(1)
		}
		n := sess.wishlist.Toggle(*p)
		notify.Dispatch(sess.dispatcher, n)
	},
}

var wishlistShowCmd = &cobra.Command{
	Use:   "wishlist:show",
	Short: "Show the wishlist",
	Run: func(cmd *cobra.Command, args []string) {
		sess := mustSession()
		entries := sess.wishlist.Entries()
		if len(entries) == 0 {
			fmt.Println("Wishlist is empty.")
			return
		}
		for _, e := range entries {
			fmt.Printf("%-26s %-14s %10.2f  added %s\n",
				e.Product.Name, e.Product.Category, e.Product.Price,
				e.AddedAt.Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	rootCmd.AddCommand(wishlistToggleCmd, wishlistShowCmd)
}
