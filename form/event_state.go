package form

import (
	"IntakeBot/model"
)

// Phase is the submission state of an event application form.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInvalid
	PhaseSubmitting
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInvalid:
		return "invalid"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// EventKind names a UI input event understood by EventFormState.Apply.
type EventKind int

const (
	FieldChanged EventKind = iota
	EventTypeChanged
	RequirementsChanged
	Cleared
	ValidationFailed
	SubmissionStarted
	SubmissionSucceeded
	SubmissionFailed
)

// FormEvent is one input to the event form reducer.
type FormEvent struct {
	Kind   EventKind
	Field  string
	Value  string
	Values []string
	Err    error
}

// EventFormState is everything one event application form owns.
type EventFormState struct {
	Record       model.Record
	Requirements []string
	Status       model.StatusMessage
	Phase        Phase
}

// NewEventFormState returns the state of a freshly mounted form.
func NewEventFormState() EventFormState {
	return EventFormState{
		Record:       model.EventApplicationSchema.Defaults(),
		Requirements: []string{},
	}
}

// Apply returns the state that follows ev. s is left untouched: the record
// and selection are replaced, never edited in place.
func (s EventFormState) Apply(ev FormEvent) EventFormState {
	next := s
	switch ev.Kind {
	case FieldChanged:
		next.Record = s.Record.With(ev.Field, ev.Value)
		next.Phase = settle(s.Phase)
	case EventTypeChanged:
		next.Record = s.Record.With("eventType", ev.Value)
		next.Phase = settle(s.Phase)
	case RequirementsChanged:
		next.Requirements = append([]string{}, ev.Values...)
		next.Phase = settle(s.Phase)
	case Cleared:
		next = reset(s.Phase)
		next.Status = model.SuccessStatus("Form cleared")
	case ValidationFailed:
		next.Status = model.ErrorStatus(ev.Err.Error())
		next.Phase = PhaseInvalid
	case SubmissionStarted:
		next.Phase = PhaseSubmitting
	case SubmissionSucceeded:
		next = reset(PhaseSuccess)
		next.Status = model.SuccessStatus("Success! Event application created: " + ev.Value)
	case SubmissionFailed:
		next.Status = model.ErrorStatus("Error submitting application")
		next.Phase = PhaseFailed
	}
	return next
}

func reset(phase Phase) EventFormState {
	s := NewEventFormState()
	s.Phase = phase
	return s
}

// settle moves a finished attempt back to idle once the user edits again.
func settle(p Phase) Phase {
	if p == PhaseSubmitting {
		return p
	}
	return PhaseIdle
}
