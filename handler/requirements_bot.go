package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"IntakeBot/form"
	"IntakeBot/model"
)

func (h *IntakeBotHandler) startPCRequirement(sess *session) string {
	h.mu.Lock()
	sess.pc = form.NewPCRequirementForm(h.Sink)
	sess.State = model.StatePCRequirement
	h.mu.Unlock()

	return fmt.Sprintf("PC Requirements\n\nFill in the fields with /set <field> <value>. Fields: %s\nRequired: companyName, contactName, contactEmail.",
		schemaKeys(model.PCRequirementSchema))
}

func (h *IntakeBotHandler) handlePCRequirement(ctx context.Context, pc *form.PCRequirementForm, command, args string) string {
	switch command {
	case "/set":
		key, value, _ := strings.Cut(args, " ")
		if !pc.UpdateField(key, strings.TrimSpace(value)) {
			return fmt.Sprintf("Unknown field '%s'. Fields: %s", key, schemaKeys(model.PCRequirementSchema))
		}
		return fmt.Sprintf("%s updated.", key)
	case "/options":
		return strings.Join([]string{
			formatOptions("Machine types", pc.MachineTypeOptions()),
			formatOptions("RAM", pc.RAMOptions()),
			formatOptions("Storage", pc.StorageOptions()),
			formatOptions("Operating systems", pc.OSOptions()),
			formatOptions("Usage", pc.UsageOptions()),
		}, "\n\n")
	case "/status":
		return fmt.Sprintf("PC Requirements\n%s\n%s",
			formatRecord(model.PCRequirementSchema, pc.Record()), formatStatus(pc.Status()))
	case "/submit":
		if err := pc.Submit(ctx); err != nil && !errors.Is(err, form.ErrPCMissingFields) {
			h.logger.Error().Err(err).Msg("error submitting pc requirements")
		}
		return formatStatus(pc.Status())
	case "/reset":
		pc.Reset()
		return "Form reset."
	default:
		return "I didn't understand that command. Use /help."
	}
}
