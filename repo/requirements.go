package repo

import (
	"context"

	"IntakeBot/model"
)

// NoopRequirementSink accepts PC requirement submissions without persisting
// them or making any network call.
type NoopRequirementSink struct{}

func (NoopRequirementSink) SubmitRequirements(context.Context, model.Record) error {
	return nil
}
