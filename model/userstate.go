package model

// Conversation states of a chat with the intake bot.
const (
	StateIdle = iota
	StateEventApplication
	StatePCRequirement
)

// UserState tracks which form a chat is currently filling in.
type UserState struct {
	State int
}
