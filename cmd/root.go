package cmd

import (
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"storefront.GO/config"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "GoStorefront — catalog browsing, cart/wishlist and admin tooling",
}

var bannerFonts = []string{"", "slant", "small", "straight"}

// Execute runs the CLI. Called from main after LoadEnv.
func Execute() {
	config.LoadAppConfig()

	fig := figure.NewFigure("GoStorefront", bannerFonts[rand.Intn(len(bannerFonts))], true)
	fig.Print()

	Apply()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
