package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"saferoute/types"
)

const facilitiesCollection = "facilities"

// SaveFacilities seeds or refreshes facility documents using BulkWriter
// for efficient non-transactional writes.
func SaveFacilities(ctx context.Context, client *firestore.Client, facilities []types.FacilityData) error {
	if len(facilities) == 0 {
		log.Println("No facilities to save.")
		return nil
	}

	bw := client.BulkWriter(ctx)
	collRef := client.Collection(facilitiesCollection)

	enqueued := 0
	for i := range facilities {
		facility := facilities[i]
		if facility.ID == "" {
			log.Printf("Warning: Skipping facility with empty ID: %+v", facility)
			continue
		}
		if _, err := bw.Set(collRef.Doc(facility.ID), facility); err != nil {
			log.Printf("Error enqueueing facility %s for save: %v", facility.ID, err)
			continue
		}
		enqueued++
	}

	// Flush sends any remaining writes and waits for them to complete.
	bw.Flush()
	log.Printf("BulkWriter flushed. Attempted to save %d facilities.", enqueued)
	return nil
}

// GetAllFacilities retrieves every facility document.
func GetAllFacilities(ctx context.Context, client *firestore.Client) ([]types.FacilityData, error) {
	var facilities []types.FacilityData

	iter := client.Collection(facilitiesCollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating facilities collection: %w", err)
		}

		var facility types.FacilityData
		if err := doc.DataTo(&facility); err != nil {
			log.Printf("Warning: Error converting document %s to FacilityData: %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		facility.ID = doc.Ref.ID
		facilities = append(facilities, facility)
	}
	return facilities, nil
}
