package core

import (
	"time"
)

// Eve window bounds relative to the collection instant.
// Inside the last EveWindowStart hours the urgent-alert path takes over.
const (
	EveWindowStart = 4 * time.Hour
	EveWindowEnd   = 24 * time.Hour
)

// IsEve reports whether now falls in the eve window of occ: more than 4 and at
// most 24 hours before it. The zero Occurrence (nothing resolved) is never an eve.
func IsEve(now time.Time, occ Occurrence) bool {
	if occ.At.IsZero() {
		return false
	}

	hours := occ.At.Sub(now).Hours()
	return hours > EveWindowStart.Hours() && hours <= EveWindowEnd.Hours()
}
