package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEve(t *testing.T) {
	now := time.Date(2024, 1, 8, 19, 0, 0, 0, time.UTC)

	hours := func(h float64) Occurrence {
		return Occurrence{
			Label: "2ª 07:00",
			At:    now.Add(time.Duration(h * float64(time.Hour))),
		}
	}

	tests := []struct {
		desc string
		occ  Occurrence
		want bool
	}{
		{"12 hours remaining", hours(12), true},
		{"45 hours remaining", hours(45), false},
		{"2 hours remaining", hours(2), false},
		{"exactly 4 hours", hours(4), false},
		{"just over 4 hours", hours(4.0001), true},
		{"exactly 24 hours", hours(24), true},
		{"just over 24 hours", hours(24.0001), false},
		{"already passed", hours(-1), false},
		{"no result", Occurrence{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEve(now, tt.occ))
		})
	}
}

func TestIsEve_WithResolvedOccurrence(t *testing.T) {
	cfg := &UserConfig{Neighborhood: "Trindade", Slots: []string{"3ª 07:00"}}
	now := time.Date(2024, 1, 8, 19, 0, 0, 0, time.UTC)

	occ, ok := NextCollection(now, cfg, nil)
	assert.True(t, ok)
	assert.True(t, IsEve(now, occ))

	later := time.Date(2024, 1, 9, 5, 0, 0, 0, time.UTC)
	occ, ok = NextCollection(later, cfg, nil)
	assert.True(t, ok)
	assert.False(t, IsEve(later, occ), "inside the final short-notice window")
}
