package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"IntakeBot/model"
)

func TestApply_ReplacesRecord(t *testing.T) {
	s := NewEventFormState()
	next := s.Apply(FormEvent{Kind: FieldChanged, Field: "firstName", Value: "Jane"})

	assert.Equal(t, "", s.Record["firstName"])
	assert.Equal(t, "Jane", next.Record["firstName"])
	assert.Len(t, next.Record, len(model.EventApplicationSchema))
}

func TestApply_RequirementsAreCopied(t *testing.T) {
	values := []string{"wifi", "parking"}
	s := NewEventFormState().Apply(FormEvent{Kind: RequirementsChanged, Values: values})
	values[0] = "security"

	assert.Equal(t, []string{"wifi", "parking"}, s.Requirements)
}

func TestApply_PhaseTransitions(t *testing.T) {
	invalid := NewEventFormState().Apply(FormEvent{Kind: ValidationFailed, Err: errors.New("Please enter a valid email address")})
	assert.Equal(t, PhaseInvalid, invalid.Phase)
	assert.Equal(t, model.ErrorStatus("Please enter a valid email address"), invalid.Status)

	edited := invalid.Apply(FormEvent{Kind: EventTypeChanged, Value: "workshop"})
	assert.Equal(t, PhaseIdle, edited.Phase)
	assert.Equal(t, invalid.Status, edited.Status, "editing does not clear the message")

	submitting := edited.Apply(FormEvent{Kind: SubmissionStarted})
	assert.Equal(t, PhaseSubmitting, submitting.Apply(FormEvent{Kind: FieldChanged, Field: "phone", Value: "1"}).Phase)

	failed := submitting.Apply(FormEvent{Kind: SubmissionFailed})
	assert.Equal(t, PhaseFailed, failed.Phase)
	assert.Equal(t, "workshop", failed.Record["eventType"])

	succeeded := submitting.Apply(FormEvent{Kind: SubmissionSucceeded, Value: "EA-00001"})
	assert.Equal(t, PhaseSuccess, succeeded.Phase)
	assert.Equal(t, model.EventApplicationSchema.Defaults(), succeeded.Record)
	assert.Equal(t, "Success! Event application created: EA-00001", succeeded.Status.Text)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "submitting", PhaseSubmitting.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
