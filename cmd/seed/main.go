// Seed and reset tooling for the JUKUMU Fund database.
//
//	go run ./cmd/seed            # ensure admin user and default settings
//	go run ./cmd/seed -clear     # wipe all data (admin user survives), restore settings
//	go run ./cmd/seed -sample    # insert sample training modules, groups and investments
package main

import (
	"flag"
	"log"
	"os"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/seed"
)

func main() {
	clear := flag.Bool("clear", false, "delete all data (the admin user survives) and restore default settings")
	sample := flag.Bool("sample", false, "insert sample training modules, groups and investments")
	flag.Parse()

	config.InitDB()
	db := config.GetDB()

	if *clear {
		if err := seed.Clear(db); err != nil {
			log.Fatalf("clear failed: %v", err)
		}
		log.Println("all data cleared (admin user preserved)")
	}

	if err := seed.EnsureAdmin(db, os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}
	if err := seed.EnsureSettings(db); err != nil {
		log.Fatalf("settings seed failed: %v", err)
	}

	if *sample {
		if err := seed.Sample(db); err != nil {
			log.Fatalf("sample data failed: %v", err)
		}
		log.Println("sample data inserted")
	}

	log.Println("seed complete")
}
