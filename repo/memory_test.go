package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IntakeBot/model"
)

const samplePayload = `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","phone":"","company":"Acme",` +
	`"eventType":"workshop","eventName":"Go Day","eventDate":"2026-11-02","expectedAttendees":40,` +
	`"eventDescription":"","additionalRequirements":"","requirements":["wifi"]}`

func TestMemoryStore_CreateAndList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.CreateEventApplication(ctx, samplePayload)
	require.NoError(t, err)
	second, err := store.CreateEventApplication(ctx, samplePayload)
	require.NoError(t, err)

	assert.Equal(t, "EA-00001", first.Name)
	assert.Equal(t, "EA-00002", second.Name)

	list, err := store.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "EA-00001", list[0].Name)
	assert.Equal(t, 40, list[0].ExpectedAttendees)
	assert.Equal(t, []string{"wifi"}, list[0].Requirements)

	got, err := store.ReadApplication(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Day", got.EventName)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	res, err := store.CreateEventApplication(ctx, samplePayload)
	require.NoError(t, err)

	require.NoError(t, store.DeleteApplication(ctx, res.ID))
	assert.ErrorIs(t, store.DeleteApplication(ctx, res.ID), model.ErrApplicationNotFound)
	_, err = store.ReadApplication(ctx, res.ID)
	assert.ErrorIs(t, err, model.ErrApplicationNotFound)
}

func TestMemoryStore_RejectsBadPayload(t *testing.T) {
	_, err := NewMemoryStore().CreateEventApplication(context.Background(), "{not json")

	var remote *model.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Invalid application data", remote.Message)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryStore().CreateEventApplication(ctx, samplePayload)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeApplication_DefaultsRequirements(t *testing.T) {
	application, err := DecodeApplication(`{"firstName":"Jane","expectedAttendees":0}`)
	require.NoError(t, err)
	assert.NotNil(t, application.Requirements)
	assert.Empty(t, application.Requirements)
}

func TestApplicationName(t *testing.T) {
	assert.Equal(t, "EA-00007", ApplicationName(7))
	assert.Equal(t, "EA-123456", ApplicationName(123456))
}
