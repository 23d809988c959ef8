package model

// Option is one label/value choice of a selection control.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var eventTypeOptions = []Option{
	{Label: "Conference", Value: "conference"},
	{Label: "Workshop", Value: "workshop"},
	{Label: "Seminar", Value: "seminar"},
	{Label: "Training", Value: "training"},
	{Label: "Meeting", Value: "meeting"},
	{Label: "Social Event", Value: "social_event"},
	{Label: "Other", Value: "other"},
}

var requirementOptions = []Option{
	{Label: "Audio/Visual Equipment", Value: "av_equipment"},
	{Label: "Catering Service", Value: "catering"},
	{Label: "Parking Space", Value: "parking"},
	{Label: "WiFi Access", Value: "wifi"},
	{Label: "Security Personnel", Value: "security"},
	{Label: "Signage/Branding", Value: "signage"},
}

var machineTypeOptions = []Option{
	{Label: "MacBook Air", Value: "macbook_air"},
	{Label: "MacBook Pro", Value: "macbook_pro"},
	{Label: "Mac mini", Value: "mac_mini"},
	{Label: "iMac", Value: "imac"},
	{Label: "Windows Laptop", Value: "windows_laptop"},
	{Label: "Windows Desktop", Value: "windows_desktop"},
}

var ramOptions = []Option{
	{Label: "8 GB", Value: "8"},
	{Label: "16 GB", Value: "16"},
	{Label: "32 GB", Value: "32"},
	{Label: "64 GB", Value: "64"},
}

var storageOptions = []Option{
	{Label: "256 GB", Value: "256"},
	{Label: "512 GB", Value: "512"},
	{Label: "1 TB", Value: "1024"},
	{Label: "2 TB", Value: "2048"},
}

var osOptions = []Option{
	{Label: "macOS", Value: "macos"},
	{Label: "Windows", Value: "windows"},
	{Label: "Linux", Value: "linux"},
	{Label: "Mixed", Value: "mixed"},
}

var usageOptions = []Option{
	{Label: "General Office / Business", Value: "office"},
	{Label: "Software Development", Value: "development"},
	{Label: "Design / Video / Media", Value: "design"},
	{Label: "Data / Analytics", Value: "data"},
	{Label: "Mixed Usage", Value: "mixed"},
}

// The accessors below hand out copies; the catalogs never change.

func EventTypeOptions() []Option   { return clone(eventTypeOptions) }
func RequirementOptions() []Option { return clone(requirementOptions) }
func MachineTypeOptions() []Option { return clone(machineTypeOptions) }
func RAMOptions() []Option         { return clone(ramOptions) }
func StorageOptions() []Option     { return clone(storageOptions) }
func OSOptions() []Option          { return clone(osOptions) }
func UsageOptions() []Option       { return clone(usageOptions) }

func clone(opts []Option) []Option {
	out := make([]Option, len(opts))
	copy(out, opts)
	return out
}
