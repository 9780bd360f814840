package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storefront.GO/store/notify"
)

var cartVariant string
var cartQty int

var cartAddCmd = &cobra.Command{
	Use:   "cart:add <product-id>",
	Short: "Add one unit of a product to the cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sess := mustSession()
		p, err := sess.gw.GetProduct(context.Background(), args[0])
		if err != nil {
			fmt.Printf("Product lookup failed: %v\n", err)
			os.Exit(1)
		}
		n := sess.cart.Add(*p, cartVariant)
		notify.Dispatch(sess.dispatcher, n)
		printCartTotals(sess)
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "cart:remove <product-id>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sess := mustSession()
		n := sess.cart.Remove(args[0], cartVariant)
		if n == nil {
			fmt.Println("No matching cart line.")
			return
		}
		notify.Dispatch(sess.dispatcher, n)
		printCartTotals(sess)
	},
}

var cartSetQtyCmd = &cobra.Command{
	Use:   "cart:set-qty <product-id>",
	Short: "Set a line's quantity (0 removes it)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sess := mustSession()
		n := sess.cart.SetQuantity(args[0], cartVariant, cartQty)
		notify.Dispatch(sess.dispatcher, n)
		printCartTotals(sess)
	},
}

var cartShowCmd = &cobra.Command{
	Use:   "cart:show",
	Short: "Show the cart lines and totals",
	Run: func(cmd *cobra.Command, args []string) {
		sess := mustSession()
		lines := sess.cart.Lines()
		if len(lines) == 0 {
			fmt.Println("Cart is empty.")
			return
		}
		for _, l := range lines {
			variant := l.Variant
			if variant == "" {
				variant = "-"
			}
			fmt.Printf("%-26s variant=%-8s qty=%-3d unit=%10.2f line=%10.2f\n",
				l.Product.Name, variant, l.Quantity, l.Product.Price,
				l.Product.Price*float64(l.Quantity))
		}
		printCartTotals(sess)
	},
}

func printCartTotals(sess *session) {
	fmt.Printf("Cart: %d items, total %.2f\n", sess.cart.TotalItemCount(), sess.cart.TotalPrice())
}

func mustSession() *session {
	sess, err := newSession()
	if err != nil {
		fmt.Printf("Session failed: %v\n", err)
		os.Exit(1)
	}
	return sess
}

func init() {
	cartAddCmd.Flags().StringVar(&cartVariant, "variant", "", "Variant selector (e.g. size)")
	cartRemoveCmd.Flags().StringVar(&cartVariant, "variant", "", "Variant selector (e.g. size)")
	cartSetQtyCmd.Flags().StringVar(&cartVariant, "variant", "", "Variant selector (e.g. size)")
	cartSetQtyCmd.Flags().IntVar(&cartQty, "qty", 1, "New quantity (0 removes the line)")
	rootCmd.AddCommand(cartAddCmd, cartRemoveCmd, cartSetQtyCmd, cartShowCmd)
}
