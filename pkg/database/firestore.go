package database

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// ConnectFirestore initializes the Firestore client for the remote
// document store. Misconfiguration is fatal at startup: the backend
// choice is fixed for the process lifetime, and a half-configured
// remote store must never silently degrade to the local one.
func ConnectFirestore(ctx context.Context) *firestore.Client {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		log.Fatal("FIRESTORE_PROJECT_ID is required for the firestore backend")
	}

	var opts []option.ClientOption
	if credentials := os.Getenv("FIREBASE_CREDENTIALS"); credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		log.Fatalf("Error initializing firebase app: %v", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("Error getting firestore client: %v", err)
	}

	log.Println("🔥 Firestore backend ready!")
	return client
}
