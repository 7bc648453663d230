package main

import (
	"log"
	"net/http"
	"os"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/logger"
	"jukumu_fund/internal/middleware"
	"jukumu_fund/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database (loads .env first)
	config.InitDB()

	// Token signing secret is mandatory
	middleware.LoadSecret()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + port()
	log.Printf("🚀 JUKUMU Fund API running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
