package model

// EventApplication is the payload submitted by the event application form
// and the record persisted by the creation procedure.
type EventApplication struct {
	ID                     string   `json:"id,omitempty"`
	Name                   string   `json:"name,omitempty"`
	FirstName              string   `json:"firstName"`
	LastName               string   `json:"lastName"`
	Email                  string   `json:"email"`
	Phone                  string   `json:"phone"`
	Company                string   `json:"company"`
	EventType              string   `json:"eventType"`
	EventName              string   `json:"eventName"`
	EventDate              string   `json:"eventDate"`
	ExpectedAttendees      int      `json:"expectedAttendees"`
	EventDescription       string   `json:"eventDescription"`
	AdditionalRequirements string   `json:"additionalRequirements"`
	Requirements           []string `json:"requirements"`
	CreatedAt              int64    `json:"createdAt,omitempty"`
}

// ApplicationResult is what the creation procedure hands back on success.
type ApplicationResult struct {
	ID   string
	Name string
}
