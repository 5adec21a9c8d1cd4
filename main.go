package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"panpath-guardian/chat"
	"panpath-guardian/cronjobs"
	"panpath-guardian/db"
	"panpath-guardian/gateway"
	"panpath-guardian/geocode"
	"panpath-guardian/handlers"
	"panpath-guardian/prefs"
	"panpath-guardian/routes"
	"panpath-guardian/socialfeed"
	"panpath-guardian/tabular"
	"panpath-guardian/webhook"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Print and check env
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	}

	webhookURL := os.Getenv("N8N_WEBHOOK_URL")
	fmt.Println("N8N_WEBHOOK_URL: ", webhookURL)

	// Init firestore (optional: survey/chat persistence only)
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	// External collaborators. Each degrades to mock/no-op when its env
	// vars are absent.
	store := tabular.New(os.Getenv("TABULAR_BASE_URL"), os.Getenv("TABULAR_API_TOKEN"))
	if !store.Configured() {
		log.Println("Warning: tabular datastore not configured, dashboard serves demo data")
	}

	hook := webhook.New(webhookURL)

	var geocoder gateway.Geocoder
	if svc := geocode.NewService(); svc != nil {
		geocoder = svc
	}

	gw := gateway.New(store, hook, geocoder)

	// Initialize cron jobs
	cronjobs.InitCronJobs(gw)

	var completer chat.Completer
	if apiKey != "" {
		completer = chat.NewOpenAICompleter(apiKey)
	} else {
		log.Println("Warning: OPENAI_API_KEY not set, chat relays through the automation service")
		completer = chat.NewWebhookCompleter(hook)
	}
	chatRegistry := handlers.NewChatRegistry(completer, firestoreClient)

	prefStore := prefs.NewStore(os.Getenv("PANPATH_PREFS_PATH"))
	feed := socialfeed.NewService(os.Getenv("SOCIAL_FEED_URI"))

	r := routes.SetupRouter(gw, firestoreClient, prefStore, chatRegistry, feed)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
