package core

import (
	"time"
)

// WeeklySlot is one recurring weekly collection time
type WeeklySlot struct {
	Day    time.Weekday
	Hour   int
	Minute int
	Label  string // schedule token as written

	// timeInvalid is set when the hh:mm part did not parse; such a slot never matches
	timeInvalid bool
}

// Matchable reports whether the slot can ever produce an occurrence
func (s WeeklySlot) Matchable() bool {
	return !s.timeInvalid
}

// UserConfig is the resident's saved neighborhood and optional slot override
type UserConfig struct {
	Neighborhood string   `json:"neighborhood"`
	Slots        []string `json:"slots"`
}

// Calendar maps a neighborhood name to its ordered schedule tokens
type Calendar map[string][]string

// Tokens returns the schedule tokens for a neighborhood, or nil if unknown
func (c Calendar) Tokens(neighborhood string) []string {
	if c == nil {
		return nil
	}
	return c[neighborhood]
}

// Occurrence is the next resolved collection instant
type Occurrence struct {
	Label          string
	At             time.Time
	HoursRemaining int
}

// Report is a single incident report filed by the resident
type Report struct {
	Protocol           string `json:"protocol"`
	Reason             string `json:"reason"`
	Notes              string `json:"notes"`
	Timestamp          int64  `json:"timestamp"` // epoch milliseconds
	FormattedTimestamp string `json:"formattedTimestamp"`
}

// ReportInput carries the caller-supplied fields of a new report.
// A zero Timestamp means "now".
type ReportInput struct {
	Reason    string
	Notes     string
	Timestamp int64
}

// Receipt is returned to the caller after filing a report
type Receipt struct {
	Protocol string
	Success  bool
}
