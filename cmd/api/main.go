package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/meravi-clothing/storefront-api/internal/backend"
	"github.com/meravi-clothing/storefront-api/internal/database"
	"github.com/meravi-clothing/storefront-api/internal/email"
	"github.com/meravi-clothing/storefront-api/internal/handlers"
	"github.com/meravi-clothing/storefront-api/internal/routes"
	"github.com/meravi-clothing/storefront-api/internal/store"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Core Backend Client ---
	apiURL := os.Getenv("BACKEND_API_URL")
	if apiURL == "" {
		log.Fatal("CRITICAL ERROR: BACKEND_API_URL environment variable is not set.")
	}
	client := backend.New(apiURL)

	// 2. --- Session Store Database ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to session database: %v", err)
	}
	defer db.Close()

	persist := store.NewPersistence(db)
	if err := persist.EnsureSchema(); err != nil {
		log.Fatalf("Failed to prepare session tables: %v", err)
	}

	// 3. --- Commerce State Stores ---
	carts := store.NewCartStore(persist)
	wishlists := store.NewWishlistStore(persist)
	currency := store.NewCurrencyStore(persist)

	// 4. --- Background Worker: currency settings sync ---
	// Re-reads the backend's public settings every 30 seconds for the
	// lifetime of the process; failures keep the cached code in effect.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	currency.StartRefresher(ctx, client, store.RefreshInterval)

	// --- Application Setup ---
	app := &handlers.Handlers{
		Backend:   client,
		Carts:     carts,
		Wishlists: wishlists,
		Currency:  currency,
		Mailer:    email.NewMailerFromEnv(),
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting Meravi storefront API on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
