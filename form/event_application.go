package form

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"IntakeBot/model"
)

// DefaultEventFormTitle is shown when the embedding context sets no title.
const DefaultEventFormTitle = "Event Application Form"

// ApplicationCreator persists a serialized event application. Failures
// should be reported as *model.RemoteError so their message reaches the user.
type ApplicationCreator interface {
	CreateEventApplication(ctx context.Context, applicationData string) (*model.ApplicationResult, error)
}

// Notifier receives the toast raised after a submission completes.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n model.Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n model.Notification) error { return f(ctx, n) }

type eventFormOptions struct {
	title    string
	notifier Notifier
	logger   zerolog.Logger
}

// Option configures an EventApplicationForm.
type Option func(*eventFormOptions)

// WithTitle overrides DefaultEventFormTitle.
func WithTitle(title string) Option {
	return func(o *eventFormOptions) {
		if title != "" {
			o.title = title
		}
	}
}

// WithNotifier sets the sink for success and error toasts.
func WithNotifier(n Notifier) Option {
	return func(o *eventFormOptions) { o.notifier = n }
}

// WithLogger sets the logger used for submissions.
func WithLogger(l zerolog.Logger) Option {
	return func(o *eventFormOptions) { o.logger = l }
}

// EventApplicationForm validates an event application and hands it to an
// ApplicationCreator. It is safe for concurrent use; at most one submission
// is in flight at a time.
type EventApplicationForm struct {
	mu      sync.Mutex
	state   EventFormState
	creator ApplicationCreator
	opts    eventFormOptions
	cancel  context.CancelFunc
	closed  bool
}

// NewEventApplicationForm returns a mounted form with default field values.
func NewEventApplicationForm(creator ApplicationCreator, opts ...Option) *EventApplicationForm {
	o := eventFormOptions{
		title:    DefaultEventFormTitle,
		notifier: NotifierFunc(func(context.Context, model.Notification) error { return nil }),
		logger:   log.With().Str("component", "event_form").Logger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &EventApplicationForm{
		state:   NewEventFormState(),
		creator: creator,
		opts:    o,
	}
}

func (f *EventApplicationForm) Title() string { return f.opts.title }

func (f *EventApplicationForm) EventTypeOptions() []model.Option   { return model.EventTypeOptions() }
func (f *EventApplicationForm) RequirementOptions() []model.Option { return model.RequirementOptions() }

// State returns a snapshot of the form.
func (f *EventApplicationForm) State() EventFormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state
	s.Record = s.Record.Clone()
	s.Requirements = append([]string{}, s.Requirements...)
	return s
}

func (f *EventApplicationForm) Status() model.StatusMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Status
}

func (f *EventApplicationForm) apply(ev FormEvent) {
	f.mu.Lock()
	f.state = f.state.Apply(ev)
	f.mu.Unlock()
}

// UpdateField stores raw under key without coercion or validation.
func (f *EventApplicationForm) UpdateField(key, raw string) {
	f.apply(FormEvent{Kind: FieldChanged, Field: key, Value: raw})
}

func (f *EventApplicationForm) UpdateEventType(value string) {
	f.apply(FormEvent{Kind: EventTypeChanged, Value: value})
}

// UpdateRequirements replaces the whole selection.
func (f *EventApplicationForm) UpdateRequirements(values []string) {
	f.apply(FormEvent{Kind: RequirementsChanged, Values: values})
}

// Clear resets every field and reports "Form cleared".
func (f *EventApplicationForm) Clear() {
	f.apply(FormEvent{Kind: Cleared})
}

// Validate checks the current record without touching the status message.
func (f *EventApplicationForm) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return ValidateEventApplication(f.state.Record)
}

// Submit validates the form and, when it passes, calls the creation
// procedure once. Every outcome is also recorded as the status message.
// A call made while another submission is pending returns
// model.ErrSubmissionInFlight.
func (f *EventApplicationForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return model.ErrFormClosed
	}
	if f.state.Phase == PhaseSubmitting {
		f.mu.Unlock()
		return model.ErrSubmissionInFlight
	}
	if err := ValidateEventApplication(f.state.Record); err != nil {
		f.state = f.state.Apply(FormEvent{Kind: ValidationFailed, Err: err})
		f.mu.Unlock()
		return err
	}
	payload, err := BuildPayload(f.state)
	if err != nil {
		f.state = f.state.Apply(FormEvent{Kind: SubmissionFailed})
		f.mu.Unlock()
		return err
	}
	f.state = f.state.Apply(FormEvent{Kind: SubmissionStarted})
	callCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.mu.Unlock()

	logger := f.opts.logger.With().Str("submission_id", uuid.NewString()).Logger()
	logger.Debug().Msg("submitting event application")

	res, err := f.creator.CreateEventApplication(callCtx, payload)
	cancel()
	if err == nil && res == nil {
		err = &model.RemoteError{Message: "Empty response from application backend"}
	}

	f.mu.Lock()
	f.cancel = nil
	if f.closed {
		f.mu.Unlock()
		logger.Warn().Msg("form closed before submission completed, result dropped")
		return model.ErrFormClosed
	}
	if err != nil {
		f.state = f.state.Apply(FormEvent{Kind: SubmissionFailed})
		f.mu.Unlock()
		logger.Error().Err(err).Msg("event application rejected")
		f.notify(ctx, logger, model.Notification{
			Title:    "Error",
			Message:  model.RemoteMessage(err),
			Severity: model.KindError,
		})
		return fmt.Errorf("create event application: %w", err)
	}
	f.state = f.state.Apply(FormEvent{Kind: SubmissionSucceeded, Value: res.Name})
	f.mu.Unlock()
	logger.Info().Str("application", res.Name).Msg("event application created")
	f.notify(ctx, logger, model.Notification{
		Title:    "Success",
		Message:  "Event application submitted successfully!",
		Severity: model.KindSuccess,
	})
	return nil
}

func (f *EventApplicationForm) notify(ctx context.Context, logger zerolog.Logger, n model.Notification) {
	if err := f.opts.notifier.Notify(ctx, n); err != nil {
		logger.Error().Err(err).Msg("error sending notification")
	}
}

// Close tears the form down. A pending submission is cancelled and its
// outcome is discarded.
func (f *EventApplicationForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.cancel != nil {
		f.cancel()
	}
}

// BuildPayload serializes the record merged with the selected requirements
// and expectedAttendees read as an integer.
func BuildPayload(s EventFormState) (string, error) {
	data := make(map[string]any, len(s.Record)+1)
	for k, v := range s.Record {
		data[k] = v
	}
	reqs := s.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	data["requirements"] = reqs
	data["expectedAttendees"] = ParseAttendees(s.Record.String("expectedAttendees"))

	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("error encoding application: %w", err)
	}
	return string(b), nil
}
