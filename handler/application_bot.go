package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"IntakeBot/form"
	"IntakeBot/model"
)

// ChatNotifier delivers form notifications as chat messages.
type ChatNotifier struct {
	Sender Sender
	ChatID int64
}

func (n ChatNotifier) Notify(ctx context.Context, note model.Notification) error {
	_, err := n.Sender.SendMessage(ctx, sendParams(n.ChatID, fmt.Sprintf("%s: %s", note.Title, note.Message)))
	return err
}

func (h *IntakeBotHandler) startEventApplication(s Sender, chatID int64, sess *session) string {
	ev := form.NewEventApplicationForm(h.Store,
		form.WithTitle(h.EventTitle),
		form.WithNotifier(ChatNotifier{Sender: s, ChatID: chatID}),
		form.WithLogger(h.logger.With().Int64("chat_id", chatID).Logger()),
	)

	h.mu.Lock()
	if sess.event != nil {
		sess.event.Close()
	}
	sess.event = ev
	sess.State = model.StateEventApplication
	h.mu.Unlock()

	return fmt.Sprintf("%s\n\nFill in the fields with /set <field> <value>. Fields: %s\nRequired: First Name, Last Name, Email, Event Type, Event Name, Event Date.",
		ev.Title(), schemaKeys(model.EventApplicationSchema))
}

func (h *IntakeBotHandler) handleEventApplication(ctx context.Context, ev *form.EventApplicationForm, command, args string) string {
	switch command {
	case "/set":
		key, value, _ := strings.Cut(args, " ")
		if !model.EventApplicationSchema.Has(key) {
			return fmt.Sprintf("Unknown field '%s'. Fields: %s", key, schemaKeys(model.EventApplicationSchema))
		}
		ev.UpdateField(key, strings.TrimSpace(value))
		return fmt.Sprintf("%s updated.", form.FieldLabel(key))
	case "/eventtype":
		if !hasOption(ev.EventTypeOptions(), args) {
			return "Unknown event type.\n" + formatOptions("Event types", ev.EventTypeOptions())
		}
		ev.UpdateEventType(args)
		return "Event Type updated."
	case "/requirements":
		values := splitList(args)
		for _, v := range values {
			if !hasOption(ev.RequirementOptions(), v) {
				return fmt.Sprintf("Unknown requirement '%s'.\n%s", v, formatOptions("Requirements", ev.RequirementOptions()))
			}
		}
		ev.UpdateRequirements(values)
		return "Requirements updated."
	case "/options":
		return formatOptions("Event types", ev.EventTypeOptions()) + "\n\n" + formatOptions("Requirements", ev.RequirementOptions())
	case "/status":
		state := ev.State()
		return fmt.Sprintf("%s\n%s\nRequirements: %s\n%s",
			ev.Title(), formatRecord(model.EventApplicationSchema, state.Record),
			strings.Join(state.Requirements, ", "), formatStatus(state.Status))
	case "/submit":
		err := ev.Submit(ctx)
		switch {
		case errors.Is(err, model.ErrSubmissionInFlight):
			return "Your application is still being submitted."
		case errors.Is(err, model.ErrFormClosed):
			return ""
		}
		return formatStatus(ev.Status())
	case "/clear":
		ev.Clear()
		return formatStatus(ev.Status())
	default:
		return "I didn't understand that command. Use /help."
	}
}

func (h *IntakeBotHandler) listApplications(ctx context.Context) string {
	applications, err := h.Store.ListApplications(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("error listing applications")
		return "Error listing event applications. Please try again."
	}
	if len(applications) == 0 {
		return "No event applications found."
	}
	text := "Event applications:\n"
	for _, a := range applications {
		text += fmt.Sprintf("- %s (ID %s): %s, %s on %s by %s %s\n",
			a.Name, a.ID, a.EventName, a.EventType, a.EventDate, a.FirstName, a.LastName)
	}
	return strings.TrimRight(text, "\n")
}

func (h *IntakeBotHandler) deleteApplication(ctx context.Context, id string) string {
	if id == "" {
		return "Please provide the ID of the event application: /deleteApplication <id>"
	}
	if err := h.Store.DeleteApplication(ctx, id); err != nil {
		h.logger.Error().Err(err).Str("application_id", id).Msg("error deleting application")
		return fmt.Sprintf("Error deleting event application with ID '%s'. Please check the ID and try again.", id)
	}
	return fmt.Sprintf("Event application with ID '%s' has been successfully deleted.", id)
}
