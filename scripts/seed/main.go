// Script to seed the database with sample users and sleep sessions.
// Usage: go run scripts/seed/main.go
package main

import (
	"log"

	"github.com/blaisecz/sleep-analytics/internal/config"
	"github.com/blaisecz/sleep-analytics/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Sample user IDs for testing:")
	log.Println("  11111111-1111-1111-1111-111111111111 (Europe/Madrid)")
	log.Println("  22222222-2222-2222-2222-222222222222 (America/New_York)")
	log.Println("  33333333-3333-3333-3333-333333333333 (Asia/Tokyo)")
	log.Println("  44444444-4444-4444-4444-444444444444 (Australia/Sydney)")
}
