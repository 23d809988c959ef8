package handler

import (
	"context"
	"strings"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"IntakeBot/form"
	"IntakeBot/model"
	"IntakeBot/repo"
)

// Sender is the part of *bot.Bot the handlers use.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// session is the per-chat state: at most one form of each kind.
type session struct {
	model.UserState
	event *form.EventApplicationForm
	pc    *form.PCRequirementForm
}

type IntakeBotHandler struct {
	Store      repo.ApplicationStore
	Sink       form.RequirementSink
	EventTitle string

	mu       sync.Mutex
	sessions map[int64]*session
	logger   zerolog.Logger
}

func NewIntakeBotHandler(store repo.ApplicationStore, sink form.RequirementSink, eventTitle string) *IntakeBotHandler {
	return &IntakeBotHandler{
		Store:      store,
		Sink:       sink,
		EventTitle: eventTitle,
		sessions:   make(map[int64]*session),
		logger:     log.With().Str("component", "intake_bot").Logger(),
	}
}

const helpText = `I'm your IntakeBot. I can take an event application or a PC requirements request.

/apply - start an event application
/pc - start a PC requirements request
/set <field> <value> - fill in a field
/eventtype <value> - choose the event type
/requirements <value,value> - choose event requirements
/options - list the choices for the current form
/status - show the current form
/submit - submit the current form
/clear - clear the event application
/reset - reset the PC requirements request
/cancel - leave the current form
/listApplications - list submitted event applications
/deleteApplication <id> - delete an event application`

// Handler is registered as the bot's default handler.
func (h *IntakeBotHandler) Handler(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.Handle(ctx, b, update)
}

// Handle routes one update to the form owned by its chat.
func (h *IntakeBotHandler) Handle(ctx context.Context, s Sender, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if update.Message.From != nil {
		h.logger.Debug().Str("user", update.Message.From.Username).Str("text", update.Message.Text).Msg("update received")
	}

	command, args := splitCommand(update.Message.Text)
	sess := h.session(chatID)

	var text string
	switch command {
	case "/start", "/help":
		text = helpText
	case "/apply":
		text = h.startEventApplication(s, chatID, sess)
	case "/pc":
		text = h.startPCRequirement(sess)
	case "/cancel":
		h.closeForms(sess)
		text = "Form closed. Use /apply or /pc to start again."
	case "/listApplications":
		text = h.listApplications(ctx)
	case "/deleteApplication":
		text = h.deleteApplication(ctx, args)
	default:
		state, event, pc := h.current(sess)
		switch state {
		case model.StateEventApplication:
			text = h.handleEventApplication(ctx, event, command, args)
		case model.StatePCRequirement:
			text = h.handlePCRequirement(ctx, pc, command, args)
		default:
			text = "I didn't understand that command. Use /start or /help."
		}
	}

	h.send(ctx, s, chatID, text)
}

func (h *IntakeBotHandler) session(chatID int64) *session {
	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.sessions[chatID]
	if !ok {
		sess = &session{UserState: model.UserState{State: model.StateIdle}}
		h.sessions[chatID] = sess
	}
	return sess
}

func (h *IntakeBotHandler) current(sess *session) (int, *form.EventApplicationForm, *form.PCRequirementForm) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return sess.State, sess.event, sess.pc
}

func (h *IntakeBotHandler) closeForms(sess *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sess.event != nil {
		sess.event.Close()
		sess.event = nil
	}
	sess.pc = nil
	sess.State = model.StateIdle
}

// Close tears down every open form.
func (h *IntakeBotHandler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sess := range h.sessions {
		if sess.event != nil {
			sess.event.Close()
		}
	}
	h.sessions = make(map[int64]*session)
}

func (h *IntakeBotHandler) send(ctx context.Context, s Sender, chatID int64, text string) {
	if text == "" {
		return
	}
	_, err := s.SendMessage(ctx, sendParams(chatID, text))
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", chatID).Msg("error sending message")
	}
}

func splitCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	command, args, _ := strings.Cut(text, " ")
	// Commands in groups arrive as /command@BotName.
	command, _, _ = strings.Cut(command, "@")
	return command, strings.TrimSpace(args)
}
