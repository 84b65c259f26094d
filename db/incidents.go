package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"saferoute/types"
)

const incidentsCollection = "incidents"

// SaveIncident writes one incident document using its pre-generated ID.
func SaveIncident(ctx context.Context, client *firestore.Client, incident types.IncidentData) error {
	if incident.ID == "" {
		return fmt.Errorf("cannot save incident with empty ID")
	}
	_, err := client.Collection(incidentsCollection).Doc(incident.ID).Set(ctx, incident)
	if err != nil {
		return fmt.Errorf("error saving incident %s: %w", incident.ID, err)
	}
	return nil
}

// GetIncidentByID retrieves a single incident document.
func GetIncidentByID(ctx context.Context, client *firestore.Client, incidentID string) (types.IncidentData, error) {
	var incident types.IncidentData

	docSnap, err := client.Collection(incidentsCollection).Doc(incidentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return incident, ErrNotFound
		}
		return incident, fmt.Errorf("error getting incident %s: %w", incidentID, err)
	}

	if err := docSnap.DataTo(&incident); err != nil {
		return incident, fmt.Errorf("error converting document %s to IncidentData: %w", incidentID, err)
	}
	incident.ID = docSnap.Ref.ID
	return incident, nil
}

// ErrNotFound reports a missing document without leaking grpc codes to handlers.
var ErrNotFound = fmt.Errorf("document not found")

// GetActiveIncidents retrieves all incidents with status "active".
func GetActiveIncidents(ctx context.Context, client *firestore.Client) ([]types.IncidentData, error) {
	var incidents []types.IncidentData

	iter := client.Collection(incidentsCollection).
		Where("status", "==", string(types.StatusActive)).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating incidents collection: %w", err)
		}

		var incident types.IncidentData
		if err := doc.DataTo(&incident); err != nil {
			log.Printf("Warning: Error converting document %s to IncidentData: %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		incident.ID = doc.Ref.ID
		incidents = append(incidents, incident)
	}
	return incidents, nil
}

// ResolveIncident marks an incident resolved.
func ResolveIncident(ctx context.Context, client *firestore.Client, incidentID, resolvedBy, notes string) error {
	_, err := client.Collection(incidentsCollection).Doc(incidentID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(types.StatusResolved)},
		{Path: "resolvedAt", Value: time.Now().UTC().Format(time.RFC3339)},
		{Path: "resolvedBy", Value: resolvedBy},
		{Path: "notes", Value: notes},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("error resolving incident %s: %w", incidentID, err)
	}
	return nil
}

// ExpireStaleIncidents flips active incidents older than maxAge to expired
// and returns how many were touched. Used by the maintenance cron.
func ExpireStaleIncidents(ctx context.Context, client *firestore.Client, maxAge time.Duration) (int, error) {
	incidents, err := GetActiveIncidents(ctx, client)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-maxAge)
	expired := 0
	for _, incident := range incidents {
		reported, err := time.Parse(time.RFC3339, incident.ReportedAt)
		if err != nil {
			log.Printf("Warning: Could not parse reportedAt %q for incident %s", incident.ReportedAt, incident.ID)
			continue
		}
		if reported.After(cutoff) {
			continue
		}

		_, err = client.Collection(incidentsCollection).Doc(incident.ID).Update(ctx, []firestore.Update{
			{Path: "status", Value: string(types.StatusExpired)},
		})
		if err != nil {
			log.Printf("Error expiring incident %s: %v", incident.ID, err)
			continue
		}
		expired++
	}
	return expired, nil
}
