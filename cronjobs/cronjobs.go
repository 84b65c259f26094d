package cronjobs

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"

	"saferoute/db"
)

// Active incidents older than this are assumed stale and auto-expired.
const incidentMaxAge = 24 * time.Hour

func InitCronJobs(firestoreClient *firestore.Client) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Stale incident sweep: every 30 minutes
	_, err := c.AddFunc("*/30 * * * *", func() {
		log.Println("\nCronJob: Stale Incident Sweep Running")
		expired, err := db.ExpireStaleIncidents(context.Background(), firestoreClient, incidentMaxAge)
		if err != nil {
			log.Printf("Stale incident sweep failed: %v", err)
			return
		}
		log.Printf("Stale incident sweep complete, expired %d incidents", expired)
	})
	if err != nil {
		log.Println("Error scheduling Stale Incident Sweep", err)
	}

	c.Start()
}
