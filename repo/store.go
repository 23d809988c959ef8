package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"IntakeBot/model"
)

// ApplicationStore is the backend behind the event application form.
type ApplicationStore interface {
	CreateEventApplication(ctx context.Context, applicationData string) (*model.ApplicationResult, error)
	ReadApplication(ctx context.Context, id string) (*model.EventApplication, error)
	ListApplications(ctx context.Context) ([]model.EventApplication, error)
	DeleteApplication(ctx context.Context, id string) error
}

// ApplicationName formats the n-th application name, e.g. EA-00001.
func ApplicationName(n int) string {
	return fmt.Sprintf("EA-%05d", n)
}

// DecodeApplication parses the payload produced by the event form.
func DecodeApplication(applicationData string) (*model.EventApplication, error) {
	var application model.EventApplication
	if err := json.Unmarshal([]byte(applicationData), &application); err != nil {
		return nil, remoteErr("Invalid application data", err)
	}
	if application.Requirements == nil {
		application.Requirements = []string{}
	}
	return &application, nil
}

func remoteErr(msg string, err error) error {
	return &model.RemoteError{Message: msg, Err: err}
}

var (
	_ ApplicationStore = (*FirebaseConnector)(nil)
	_ ApplicationStore = (*MemoryStore)(nil)
)
