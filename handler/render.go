package handler

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot"

	"IntakeBot/model"
)

func sendParams(chatID int64, text string) *bot.SendMessageParams {
	return &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
}

func formatStatus(m model.StatusMessage) string {
	switch m.Kind {
	case model.KindSuccess:
		return "✅ " + m.Text
	case model.KindError:
		return "❌ " + m.Text
	default:
		return "No messages."
	}
}

func formatOptions(title string, opts []model.Option) string {
	var b strings.Builder
	b.WriteString(title + ":")
	for _, o := range opts {
		fmt.Fprintf(&b, "\n- %s (%s)", o.Label, o.Value)
	}
	return b.String()
}

func formatRecord(schema model.Schema, r model.Record) string {
	var b strings.Builder
	for i, f := range schema {
		if i > 0 {
			b.WriteString("\n")
		}
		v := r[f.Key]
		if v == nil {
			v = ""
		}
		fmt.Fprintf(&b, "%s: %v", f.Key, v)
	}
	return b.String()
}

func schemaKeys(schema model.Schema) string {
	keys := make([]string, len(schema))
	for i, f := range schema {
		keys[i] = f.Key
	}
	return strings.Join(keys, ", ")
}

func hasOption(opts []model.Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// splitList parses "a, b,c" into its non-empty items.
func splitList(s string) []string {
	values := []string{}
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
