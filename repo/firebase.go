package repo

import (
	"context"
	"fmt"
	"sort"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"IntakeBot/model"
)

const (
	applicationsPath = "eventApplications"
	counterPath      = "counters/eventApplications"
)

// FirebaseConnector struct to hold Firebase client and database reference
type FirebaseConnector struct {
	app    *firebase.App
	client *db.Client
}

// NewFirebaseConnector creates a new Firebase connector
func NewFirebaseConnector(ctx context.Context, serviceAccountKeyPath string, databaseURL string) (*FirebaseConnector, error) {
	return NewFirebaseConnectorWithOptions(ctx, databaseURL, option.WithCredentialsFile(serviceAccountKeyPath))
}

// NewFirebaseConnectorWithOptions creates a connector with explicit client
// options. An http:// databaseURL with an ns query parameter targets the
// Realtime Database emulator.
func NewFirebaseConnectorWithOptions(ctx context.Context, databaseURL string, opts ...option.ClientOption) (*FirebaseConnector, error) {
	config := &firebase.Config{
		DatabaseURL: databaseURL,
	}
	app, err := firebase.NewApp(ctx, config, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %w", err)
	}

	return &FirebaseConnector{
		app:    app,
		client: client,
	}, nil
}

// CreateEventApplication stores a serialized application under a freshly
// allocated name.
func (fc *FirebaseConnector) CreateEventApplication(ctx context.Context, applicationData string) (*model.ApplicationResult, error) {
	application, err := DecodeApplication(applicationData)
	if err != nil {
		return nil, err
	}

	name, err := fc.nextName(ctx)
	if err != nil {
		return nil, remoteErr("Unable to allocate application name", err)
	}
	// The ID is the push key; reads fill it in.
	application.ID = ""
	application.Name = name
	application.CreatedAt = time.Now().Unix()

	newRef, err := fc.client.NewRef(applicationsPath).Push(ctx, application)
	if err != nil {
		return nil, remoteErr("Unable to save event application", err)
	}
	return &model.ApplicationResult{ID: newRef.Key, Name: name}, nil
}

func (fc *FirebaseConnector) nextName(ctx context.Context) (string, error) {
	var n int
	err := fc.client.NewRef(counterPath).Transaction(ctx, func(tn db.TransactionNode) (interface{}, error) {
		var current int
		if err := tn.Unmarshal(&current); err != nil {
			return nil, err
		}
		n = current + 1
		return n, nil
	})
	if err != nil {
		return "", fmt.Errorf("error incrementing application counter: %w", err)
	}
	return ApplicationName(n), nil
}

// ReadApplication reads an application by its ID
func (fc *FirebaseConnector) ReadApplication(ctx context.Context, id string) (*model.EventApplication, error) {
	var application model.EventApplication
	if err := fc.client.NewRef(applicationsPath).Child(id).Get(ctx, &application); err != nil {
		return nil, fmt.Errorf("error reading event application: %w", err)
	}
	if application.Name == "" {
		return nil, model.ErrApplicationNotFound
	}
	application.ID = id
	return &application, nil
}

// ListApplications lists all stored applications ordered by name
func (fc *FirebaseConnector) ListApplications(ctx context.Context) ([]model.EventApplication, error) {
	var applications map[string]model.EventApplication
	if err := fc.client.NewRef(applicationsPath).Get(ctx, &applications); err != nil {
		return nil, fmt.Errorf("error listing event applications: %w", err)
	}

	list := make([]model.EventApplication, 0, len(applications))
	for key, application := range applications {
		application.ID = key
		list = append(list, application)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// DeleteApplication deletes an application by its ID
func (fc *FirebaseConnector) DeleteApplication(ctx context.Context, id string) error {
	if _, err := fc.ReadApplication(ctx, id); err != nil {
		return err
	}
	if err := fc.client.NewRef(applicationsPath).Child(id).Delete(ctx); err != nil {
		return fmt.Errorf("error deleting event application: %w", err)
	}
	return nil
}
