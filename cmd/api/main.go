package main

import (
	"context"
	"os"
	"time"

	"github.com/krishna-v-thinkwik/invoicesyntaxwithdescription/internal/catalog"
	"github.com/krishna-v-thinkwik/invoicesyntaxwithdescription/internal/db"
	"github.com/krishna-v-thinkwik/invoicesyntaxwithdescription/internal/order"
	"github.com/krishna-v-thinkwik/invoicesyntaxwithdescription/internal/router"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	catalogSource := os.Getenv("CATALOG_SOURCE")
	if catalogSource == "" {
		catalogSource = "sheets"
	}

	required := []string{"SERVICE_ACCOUNT_JSON", "SHEET_ID"}
	if catalogSource == "postgres" {
		required = []string{"DATABASE_URL"}
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── CATALOG ─────────────────────────
	// Loaded exactly once; a failure here is fatal, the service
	// never starts without prices.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var source catalog.Source
	switch catalogSource {
	case "postgres":
		pool := db.ConnectPostgres()
		defer pool.Close()
		source = catalog.NewPostgresSource(pool)
	case "sheets":
		source = catalog.NewSheetsSource()
	default:
		log.Fatalf("❌ Unknown CATALOG_SOURCE: %s", catalogSource)
	}

	prices, err := catalog.Load(ctx, source)
	if err != nil {
		log.Fatal("❌ Catalog load failed: ", err)
	}
	log.Printf("✅ Catalog loaded: %d items", prices.Len())

	// ───────────────────────── GIN ─────────────────────────
	orderService := order.NewService(prices)
	orderHandler := order.NewHandler(orderService)

	r := router.NewRouter(orderHandler)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("🚀 API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
