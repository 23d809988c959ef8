package model

// Record holds the field values of one form instance, keyed by field name.
// A Record built from a schema always carries every key of that schema; unset
// values are the empty string or nil.
type Record map[string]any

// Field describes one key of a form schema and its default value.
type Field struct {
	Key     string
	Default any
}

// Schema is the fixed, ordered set of fields a form owns.
type Schema []Field

// Defaults returns a fresh Record with every schema key set to its default.
func (s Schema) Defaults() Record {
	r := make(Record, len(s))
	for _, f := range s {
		r[f.Key] = f.Default
	}
	return r
}

// Has reports whether key is part of the schema.
func (s Schema) Has(key string) bool {
	for _, f := range s {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Clone copies the record so the caller can change it without touching r.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// With returns a copy of r with key set to value.
func (r Record) With(key string, value any) Record {
	c := r.Clone()
	c[key] = value
	return c
}

// String returns the value of key as a string, or "" when it is unset.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Present reports whether the value stored under key is set. Missing keys,
// nil, the empty string, false and numeric zero all count as unset.
func (r Record) Present(key string) bool {
	switch v := r[key].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}

// EventApplicationSchema lists the fields of the event application form.
var EventApplicationSchema = Schema{
	{Key: "firstName", Default: ""},
	{Key: "lastName", Default: ""},
	{Key: "email", Default: ""},
	{Key: "phone", Default: ""},
	{Key: "company", Default: ""},
	{Key: "eventType", Default: ""},
	{Key: "eventName", Default: ""},
	{Key: "eventDate", Default: ""},
	{Key: "expectedAttendees", Default: ""},
	{Key: "eventDescription", Default: ""},
	{Key: "additionalRequirements", Default: ""},
}

// PCRequirementSchema lists the fields of the PC requirements form. Numeric
// fields default to nil.
var PCRequirementSchema = Schema{
	{Key: "companyName", Default: ""},
	{Key: "employeeCount", Default: nil},
	{Key: "budget", Default: nil},
	{Key: "contactName", Default: ""},
	{Key: "contactEmail", Default: ""},
	{Key: "contactPhone", Default: ""},
	{Key: "machineType", Default: ""},
	{Key: "ram", Default: ""},
	{Key: "storage", Default: ""},
	{Key: "osPreference", Default: ""},
	{Key: "quantity", Default: nil},
	{Key: "usageType", Default: ""},
	{Key: "softwareNeeds", Default: ""},
	{Key: "additionalNotes", Default: ""},
}
