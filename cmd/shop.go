package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	entity "storefront.GO/model/entity"
	"storefront.GO/service/filter"
	"storefront.GO/store/catalog"
)

var (
	shopQuery       string
	shopCategory    string
	shopMaxPrice    float64
	shopSort        string
	shopQueryString string
)

var shopBrowseCmd = &cobra.Command{
	Use:   "shop:browse",
	Short: "Browse the general shop (reserved category excluded)",
	Run: func(cmd *cobra.Command, args []string) {
		browse(filter.GeneralShop(config.AppConfig.ReservedCategory))
	},
}

var accessoriesBrowseCmd = &cobra.Command{
	Use:   "accessories:browse",
	Short: "Browse the accessory sub-catalog (reserved category only)",
	Run: func(cmd *cobra.Command, args []string) {
		browse(filter.Accessories(config.AppConfig.ReservedCategory))
	},
}

func browseState() filter.State {
	if shopQueryString != "" {
		// deep link: rebuild the filter state from raw URL query params
		values, err := url.ParseQuery(shopQueryString)
		if err == nil {
			st, derr := filter.StateFromQuery(values)
			if derr == nil {
				return st
			}
			fmt.Printf("Ignoring bad query string: %v\n", derr)
		}
	}
	st := filter.DefaultState()
	if shopQuery != "" {
		st.Query = shopQuery
	}
	if shopCategory != "" {
		st.Category = shopCategory
	}
	if shopMaxPrice > 0 {
		st.MaxPrice = shopMaxPrice
	}
	if shopSort != "" {
		st.Sort = filter.SortKey(shopSort)
	}
	return st
}

func browse(view filter.View) {
	sess, err := newSession()
	if err != nil {
		fmt.Printf("Session failed: %v\n", err)
		os.Exit(1)
	}

	store := catalog.New(sess.gw)
	store.Init(context.Background())
	snap := store.Snapshot()
	if snap.Status == catalog.StatusError {
		fmt.Printf("Catalog load failed: %s\nRetry with the same command.\n", snap.ErrorMessage)
		os.Exit(1)
	}

	st := browseState()
	items := filter.Derive(snap.Items, view, st)
	printProducts(items)
	fmt.Printf("\n%d of %d products shown (%d categories known)\n",
		len(items), len(snap.Items), len(snap.Categories))
}

func printProducts(items []entity.Product) {
	if len(items) == 0 {
		fmt.Println("No products match the current filters.")
		return
	}
	fmt.Printf("%-26s %-14s %-12s %10s  %s\n", "NAME", "CATEGORY", "SUB", "PRICE", "FLAGS")
	for _, p := range items {
		flags := ""
		if p.IsNewArrival {
			flags += "new "
		}
		if p.IsFeatured {
			flags += "featured "
		}
		if p.IsHandmade {
			flags += "handmade "
		}
		if !p.InStock {
			flags += "out-of-stock"
		}
		fmt.Printf("%-26s %-14s %-12s %10.2f  %s\n", p.Name, p.Category, p.SubCategory, p.Price, flags)
	}
}

func init() {
	for _, c := range []*cobra.Command{shopBrowseCmd, accessoriesBrowseCmd} {
		c.Flags().StringVarP(&shopQuery, "query", "q", "", "Free-text search (name or category)")
		c.Flags().StringVarP(&shopCategory, "category", "c", "", "Category filter (matches category or sub-category)")
		c.Flags().Float64Var(&shopMaxPrice, "max-price", 0, "Maximum price (0 = no ceiling)")
		c.Flags().StringVarP(&shopSort, "sort", "s", "", "Sort: featured|newest|price-asc|price-desc")
		c.Flags().StringVar(&shopQueryString, "query-string", "", "Raw URL query to rebuild filters from (deep link)")
		rootCmd.AddCommand(c)
	}
}
