package form

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"IntakeBot/model"
)

const (
	PCMissingFieldsMessage = "Please fill in at least Company Name, Contact Name, and Contact Email."
	PCSubmittedMessage     = "PC requirements submitted successfully. Our team will review the details."
	pcSubmitErrorMessage   = "Error submitting PC requirements"
)

// ErrPCMissingFields is returned when any of companyName, contactName or
// contactEmail is empty.
var ErrPCMissingFields = errors.New(PCMissingFieldsMessage)

// RequirementSink accepts a validated PC requirements record.
type RequirementSink interface {
	SubmitRequirements(ctx context.Context, r model.Record) error
}

// PCRequirementForm collects PC requirements. Submissions are accepted
// locally by its RequirementSink.
type PCRequirementForm struct {
	mu             sync.Mutex
	record         model.Record
	successMessage string
	errorMessage   string
	sink           RequirementSink
	logger         zerolog.Logger
}

func NewPCRequirementForm(sink RequirementSink) *PCRequirementForm {
	return &PCRequirementForm{
		record: model.PCRequirementSchema.Defaults(),
		sink:   sink,
		logger: log.With().Str("component", "pc_form").Logger(),
	}
}

func (f *PCRequirementForm) MachineTypeOptions() []model.Option { return model.MachineTypeOptions() }
func (f *PCRequirementForm) RAMOptions() []model.Option         { return model.RAMOptions() }
func (f *PCRequirementForm) StorageOptions() []model.Option     { return model.StorageOptions() }
func (f *PCRequirementForm) OSOptions() []model.Option          { return model.OSOptions() }
func (f *PCRequirementForm) UsageOptions() []model.Option       { return model.UsageOptions() }

// UpdateField stores raw under key. Keys outside the schema are ignored and
// reported as false.
func (f *PCRequirementForm) UpdateField(key, raw string) bool {
	if !model.PCRequirementSchema.Has(key) {
		return false
	}
	f.mu.Lock()
	f.record = f.record.With(key, raw)
	f.mu.Unlock()
	return true
}

func (f *PCRequirementForm) Record() model.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record.Clone()
}

func (f *PCRequirementForm) SuccessMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.successMessage
}

func (f *PCRequirementForm) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorMessage
}

// Status folds the two messages into one; the error message wins.
func (f *PCRequirementForm) Status() model.StatusMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case f.errorMessage != "":
		return model.ErrorStatus(f.errorMessage)
	case f.successMessage != "":
		return model.SuccessStatus(f.successMessage)
	default:
		return model.StatusMessage{}
	}
}

// Reset restores the typed defaults and clears both messages.
func (f *PCRequirementForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record = model.PCRequirementSchema.Defaults()
	f.successMessage = ""
	f.errorMessage = ""
}

// Submit clears both messages, checks the three contact fields and passes
// the record to the sink.
func (f *PCRequirementForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.successMessage = ""
	f.errorMessage = ""

	r := f.record
	if !r.Present("companyName") || !r.Present("contactName") || !r.Present("contactEmail") {
		f.errorMessage = PCMissingFieldsMessage
		return ErrPCMissingFields
	}
	if err := f.sink.SubmitRequirements(ctx, r.Clone()); err != nil {
		f.logger.Error().Err(err).Msg("error submitting pc requirements")
		f.errorMessage = pcSubmitErrorMessage
		return err
	}
	f.logger.Info().Str("company", r.String("companyName")).Msg("pc requirements accepted")
	f.successMessage = PCSubmittedMessage
	return nil
}
