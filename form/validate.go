package form

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"IntakeBot/model"
)

// emailPart excludes '@' and every whitespace rune: ASCII, vertical tab,
// Unicode separators and the byte order mark.
const emailPart = `[^\s\v\p{Z}\x{FEFF}@]+`

var emailPattern = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

var requiredEventFields = []string{"firstName", "lastName", "email", "eventType", "eventName", "eventDate"}

var fieldLabels = map[string]string{
	"firstName": "First Name",
	"lastName":  "Last Name",
	"email":     "Email",
	"eventType": "Event Type",
	"eventName": "Event Name",
	"eventDate": "Event Date",
}

// FieldLabel returns the human readable name of a field, or the key itself
// when it has none.
func FieldLabel(key string) string {
	if label, ok := fieldLabels[key]; ok {
		return label
	}
	return key
}

// ValidEmail reports whether s looks like local-part@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateEventApplication checks the required fields in their fixed order
// and then the email format. The first missing field wins over a bad email.
func ValidateEventApplication(r model.Record) error {
	for _, key := range requiredEventFields {
		if !r.Present(key) {
			return &model.MissingFieldError{Field: key, Label: FieldLabel(key)}
		}
	}
	if !ValidEmail(r.String("email")) {
		return model.ErrInvalidEmailFormat
	}
	return nil
}

// ParseAttendees reads the leading base-10 integer of raw, ignoring leading
// whitespace and anything after the digits. It returns 0 when no number can
// be read and clamps values outside the int range.
func ParseAttendees(raw string) int {
	s := strings.TrimLeftFunc(raw, func(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' })
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return int(n)
}
