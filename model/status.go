package model

// MessageKind is the severity of a StatusMessage or a notification.
type MessageKind string

const (
	KindNone    MessageKind = ""
	KindSuccess MessageKind = "success"
	KindError   MessageKind = "error"
)

// StatusMessage is the single user-facing outcome of the last validation or
// submission attempt.
type StatusMessage struct {
	Text string
	Kind MessageKind
}

// IsZero reports whether no message is set.
func (m StatusMessage) IsZero() bool {
	return m.Kind == KindNone && m.Text == ""
}

func SuccessStatus(text string) StatusMessage { return StatusMessage{Text: text, Kind: KindSuccess} }
func ErrorStatus(text string) StatusMessage   { return StatusMessage{Text: text, Kind: KindError} }

// Notification is a toast raised alongside a submission outcome.
type Notification struct {
	Title    string
	Message  string
	Severity MessageKind
}
