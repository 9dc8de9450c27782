// fetch-once runs every fetcher a single time against the live sources and
// prints a per-source summary. Useful for checking source connectivity and
// parser drift without starting the server.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hayseedprops/hayseed-dashboard/internal/fetch"
	"github.com/hayseedprops/hayseed-dashboard/internal/scoring"
	"github.com/hayseedprops/hayseed-dashboard/pkg/config"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()
	engine := scoring.NewEngine()
	monitor := fetch.NewMonitor()

	violations := fetch.NewViolationsFetcher(cfg, engine, monitor)
	lisPendens, err := fetch.NewLisPendensFetcher(cfg, monitor)
	if err != nil {
		log.Fatal("Failed to create lis pendens fetcher:", err)
	}
	taxBulletin := fetch.NewTaxBulletinFetcher(cfg, engine, monitor)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	for _, fetcher := range []fetch.Fetcher{violations, lisPendens, taxBulletin} {
		start := time.Now()
		records, err := fetcher.Fetch(ctx)
		if err != nil {
			fmt.Printf("❌ %-15s failed after %v: %v\n", fetcher.Source(), time.Since(start).Round(time.Millisecond), err)
			continue
		}

		fmt.Printf("✅ %-15s %d records in %v\n", fetcher.Source(), len(records), time.Since(start).Round(time.Millisecond))
		for i, r := range records {
			if i >= 5 {
				fmt.Printf("   ... and %d more\n", len(records)-5)
				break
			}
			fmt.Printf("   [%2d] %s (zip %q)\n", r.Score, r.Address, r.Zip)
		}
	}
}
