package handler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IntakeBot/model"
	"IntakeBot/repo"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *fakeSender) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, params.Text)
	return &models.Message{Text: params.Text}, nil
}

func (s *fakeSender) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return ""
	}
	return s.sent[len(s.sent)-1]
}

type countingSink struct {
	calls int
	err   error
}

func (c *countingSink) SubmitRequirements(context.Context, model.Record) error {
	c.calls++
	return c.err
}

type harness struct {
	t      *testing.T
	h      *IntakeBotHandler
	sender *fakeSender
	store  *repo.MemoryStore
	sink   *countingSink
}

func newHarness(t *testing.T) *harness {
	store := repo.NewMemoryStore()
	sink := &countingSink{}
	h := NewIntakeBotHandler(store, sink, "")
	t.Cleanup(h.Close)
	return &harness{t: t, h: h, sender: &fakeSender{}, store: store, sink: sink}
}

// say sends text from chat 1 and returns the last reply.
func (x *harness) say(text string) string {
	x.h.Handle(context.Background(), x.sender, &models.Update{
		Message: &models.Message{
			Text: text,
			Chat: models.Chat{ID: 1},
			From: &models.User{ID: 7, Username: "jane"},
		},
	})
	return x.sender.last()
}

func TestHandle_EventApplicationFlow(t *testing.T) {
	x := newHarness(t)

	assert.Contains(t, x.say("/apply"), "Event Application Form")
	assert.Equal(t, "❌ Please fill in the required field: First Name", x.say("/submit"))

	x.say("/set firstName Jane")
	x.say("/set lastName Doe")
	x.say("/set email jane@example.com")
	x.say("/set eventName Go Day")
	x.say("/set eventDate 2026-11-02")
	x.say("/set expectedAttendees 40 or so")
	assert.Equal(t, "❌ Please fill in the required field: Event Type", x.say("/submit"))

	assert.Contains(t, x.say("/eventtype party"), "Unknown event type")
	assert.Equal(t, "Event Type updated.", x.say("/eventtype workshop"))
	assert.Equal(t, "Requirements updated.", x.say("/requirements wifi, catering"))

	reply := x.say("/submit")
	assert.Equal(t, "✅ Success! Event application created: EA-00001", reply)
	assert.Contains(t, x.sender.sent, "Success: Event application submitted successfully!")

	list, err := x.store.ListApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Go Day", list[0].EventName)
	assert.Equal(t, 40, list[0].ExpectedAttendees)
	assert.Equal(t, []string{"wifi", "catering"}, list[0].Requirements)

	status := x.say("/status")
	assert.Contains(t, status, "firstName: \n")
}

func TestHandle_EventApplicationClear(t *testing.T) {
	x := newHarness(t)
	x.say("/apply")
	x.say("/set firstName Jane")

	assert.Equal(t, "✅ Form cleared", x.say("/clear"))
	assert.Contains(t, x.say("/status"), "firstName: \n")
}

func TestHandle_UnknownField(t *testing.T) {
	x := newHarness(t)
	x.say("/apply")

	assert.Contains(t, x.say("/set nickname JJ"), "Unknown field 'nickname'")
	assert.Contains(t, x.say("/requirements wifi,helipad"), "Unknown requirement 'helipad'")
}

func TestHandle_PCRequirementFlow(t *testing.T) {
	x := newHarness(t)

	assert.Contains(t, x.say("/pc"), "PC Requirements")
	x.say("/set contactName Road Runner")
	x.say("/set contactEmail rr@acme.test")
	assert.Equal(t, "❌ Please fill in at least Company Name, Contact Name, and Contact Email.", x.say("/submit"))
	assert.Equal(t, 0, x.sink.calls)

	assert.Contains(t, x.say("/set wingspan 2m"), "Unknown field")
	x.say("/set companyName Acme")
	assert.Equal(t, "✅ PC requirements submitted successfully. Our team will review the details.", x.say("/submit"))
	assert.Equal(t, 1, x.sink.calls)

	assert.Equal(t, "Form reset.", x.say("/reset"))
	assert.Contains(t, x.say("/status"), "No messages.")
	assert.Contains(t, x.say("/options"), "Windows Laptop (windows_laptop)")
}

func TestHandle_PCRequirementSinkFailure(t *testing.T) {
	x := newHarness(t)
	x.sink.err = errors.New("queue full")

	x.say("/pc")
	x.say("/set companyName Acme")
	x.say("/set contactName Road Runner")
	x.say("/set contactEmail rr@acme.test")

	assert.Equal(t, "❌ Error submitting PC requirements", x.say("/submit"))
	assert.Equal(t, 1, x.sink.calls)
	assert.Contains(t, x.say("/status"), "companyName: Acme")
}

func TestHandle_OrganiserCommands(t *testing.T) {
	x := newHarness(t)
	assert.Equal(t, "No event applications found.", x.say("/listApplications"))

	res, err := x.store.CreateEventApplication(context.Background(),
		`{"firstName":"Jane","lastName":"Doe","eventType":"seminar","eventName":"Go Day","eventDate":"2026-11-02"}`)
	require.NoError(t, err)

	assert.Contains(t, x.say("/listApplications"), "EA-00001")
	assert.Contains(t, x.say("/deleteApplication nope"), "Error deleting")
	assert.Contains(t, x.say("/deleteApplication "+res.ID), "successfully deleted")
	assert.Contains(t, x.say("/deleteApplication"), "Please provide the ID")
}

func TestHandle_IdleAndCancel(t *testing.T) {
	x := newHarness(t)

	assert.True(t, strings.HasPrefix(x.say("/submit"), "I didn't understand"))
	assert.Contains(t, x.say("/help@IntakeBot"), "/apply")

	x.say("/apply")
	assert.Contains(t, x.say("/cancel"), "Form closed")
	assert.True(t, strings.HasPrefix(x.say("/submit"), "I didn't understand"))
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		in, command, args string
	}{
		{"/set eventName Go Day", "/set", "eventName Go Day"},
		{"  /submit  ", "/submit", ""},
		{"/start@IntakeBot", "/start", ""},
		{"hello", "hello", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			command, args := splitCommand(tt.in)
			assert.Equal(t, tt.command, command)
			assert.Equal(t, tt.args, args)
		})
	}
}
