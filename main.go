package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"saferoute/authority"
	"saferoute/cronjobs"
	"saferoute/db"
	"saferoute/llm"
	"saferoute/nlp"
	"saferoute/routes"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	// LLM classification is optional; NewClassifier hands back the
	// disabled variant when no key is configured.
	classifier := llm.NewClassifier(os.Getenv("OPENAI_API_KEY"))

	// Place extraction is optional too. A nil client just means reports
	// without coordinates cannot be geocoded from their description.
	langClient, err := nlp.InitLanguageClient()
	if err != nil {
		log.Printf("Natural Language client unavailable: %v", err)
		langClient = nil
	} else {
		defer nlp.CloseLanguageClient()
	}

	dispatcher := authority.NewDispatcher(os.Getenv("AUTHORITY_API_TOKEN"))

	// Initialize cron jobs
	cronjobs.InitCronJobs(firestoreClient)

	r := routes.SetupRouter(firestoreClient, langClient, classifier, dispatcher)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
