package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"storefront.GO/api"
	_ "storefront.GO/api/catalog"
	"storefront.GO/config"
	entity "storefront.GO/model/entity"
	productRepo "storefront.GO/model/repository/product"
)

var servePort string

var fixtureServeCmd = &cobra.Command{
	Use:   "fixture:serve",
	Short: "Serve the local fixture catalog backend",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}
		e, err := api.NewServer(db)
		if err != nil {
			fmt.Printf("Server assembly failed: %v\n", err)
			os.Exit(1)
		}
		port := servePort
		if port == "" {
			port = config.GetEnv("PORT", "8080")
		}
		log.Printf("Fixture backend running on :%s", port)
		e.Logger.Fatal(e.Start(":" + port))
	},
}

var fixtureSeedCmd = &cobra.Command{
	Use:   "fixture:seed",
	Short: "Load a small demo catalog into the fixture backend",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}
		if err := db.AutoMigrate(&entity.Product{}, &entity.Category{}); err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		repo := productRepo.NewProductRepository(db)
		n := 0
		for _, p := range demoProducts() {
			p := p
			if err := repo.Create(&p); err != nil {
				fmt.Printf("  [warn] seed %s: %v\n", p.Name, err)
				continue
			}
			n++
		}
		fmt.Printf("Seeded %d demo products. Run categories:reconcile to derive categories.\n", n)
	},
}

func demoProducts() []entity.Product {
	now := time.Now()
	older := now.AddDate(0, -2, 0)
	return []entity.Product{
		{Name: "Silk Thread Necklace", Category: "Casual", SubCategory: "Necklace", Price: 1000, InStock: true, IsHandmade: true, CreatedAt: &older},
		{Name: "Kundan Choker", Category: "Wedding", SubCategory: "Necklace", Price: 3000, InStock: true, IsFeatured: true, CreatedAt: &older},
		{Name: "Terracotta Jhumka", Category: "Festival", SubCategory: "Earrings", Price: 2000, InStock: true, IsNewArrival: true, CreatedAt: &now},
		{Name: "Silk Thread Bangle Set", Category: "Bangles", Price: 800, InStock: true, IsHandmade: true, CreatedAt: &older},
		{Name: "Oxidised Bangle Pair", Category: "Bangles", Price: 650, InStock: false, CreatedAt: &older},
		{Name: "Beaded Anklet", Category: "Casual", SubCategory: "Anklet", Price: 450, InStock: true, IsNewArrival: true, CreatedAt: &now},
	}
}

func init() {
	fixtureServeCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (default $PORT or 8080)")
	rootCmd.AddCommand(fixtureServeCmd, fixtureSeedCmd)
}
