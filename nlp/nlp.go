package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"
)

// languageClient is a singleton language client instance.
var (
	languageClient *language.Client
	clientOnce     sync.Once
	clientErr      error
)

// InitLanguageClient initializes and returns the Natural Language client.
// Missing credentials disable place extraction rather than failing startup.
func InitLanguageClient() (*language.Client, error) {
	clientOnce.Do(func() {
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		if encodedCreds == "" {
			clientErr = fmt.Errorf("NATURAL_LANGUAGE_CREDENTIALS environment variable not set")
			return
		}

		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			clientErr = fmt.Errorf("failed to decode Natural Language credentials: %w", err)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, clientErr = language.NewClient(context.Background(), opt)
		if clientErr != nil {
			log.Printf("Failed to create Natural Language client: %v", clientErr)
		}
	})
	return languageClient, clientErr
}

func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}

// ExtractPlaces pulls ADDRESS and LOCATION entities out of an incident
// description, in the order the text mentions them. A report like "tree
// down on MG Road near the metro station" yields "MG Road" as a geocoding
// candidate when the reporter sent no coordinates.
func ExtractPlaces(ctx context.Context, client *language.Client, text string) ([]string, error) {
	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeEntities(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeEntities error: %w", err)
	}

	var places []string
	for _, e := range resp.Entities {
		t := e.Type.String()
		if t == "ADDRESS" || t == "LOCATION" {
			places = append(places, e.Name)
		}
	}
	return places, nil
}
