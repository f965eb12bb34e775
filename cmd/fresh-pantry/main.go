package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"fresh-pantry/internal/config"
	"fresh-pantry/internal/database"
	"fresh-pantry/internal/kitchen"
	"fresh-pantry/internal/pantry"
	"fresh-pantry/internal/recipe"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	pantryRepo := pantry.NewSQLiteRepository(db.SQL)
	recipeRepo := recipe.NewSQLiteRepository(db.SQL)
	svc := kitchen.NewService(recipeRepo, pantryRepo)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "consolidate":
		merged, err := svc.Consolidate(ctx)
		if err != nil {
			log.Fatalf("Consolidation failed: %v", err)
		}
		fmt.Printf("Merged %d duplicate pantry items.\n", merged)
	case "low-stock":
		items, err := pantryRepo.List(ctx)
		if err != nil {
			log.Fatalf("Failed to list pantry: %v", err)
		}
		low := pantry.LowStock(items)
		if len(low) == 0 {
			fmt.Println("Nothing is running low.")
			return
		}
		for _, item := range low {
			fmt.Printf("%-24s %.2f %s (alert at %.2f)\n", item.Name, item.Quantity, item.Unit, item.MinThreshold)
		}
	case "expiring":
		expiringCmd := flag.NewFlagSet("expiring", flag.ExitOnError)
		days := expiringCmd.Int("days", cfg.ExpiryHorizonDays, "Look-ahead window in days")
		expiringCmd.Parse(os.Args[2:])

		items, err := pantryRepo.List(ctx)
		if err != nil {
			log.Fatalf("Failed to list pantry: %v", err)
		}
		report := pantry.ExpiryBuckets(items, *days)
		for _, status := range report.Expired {
			fmt.Printf("%-24s %s\n", status.Item.Name, status.Label)
		}
		for _, status := range report.Expiring {
			fmt.Printf("%-24s %s\n", status.Item.Name, status.Label)
		}
		if len(report.Expired) == 0 && len(report.Expiring) == 0 {
			fmt.Printf("Nothing expires within %d days.\n", *days)
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: fresh-pantry <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  consolidate    Merge duplicate pantry items")
	fmt.Println("  low-stock      List items at or below their alert threshold")
	fmt.Println("  expiring       List expired and soon-to-expire items")
}
