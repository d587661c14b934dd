package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		hours int
		want  string
	}{
		{0, "less than 1 hour"},
		{1, "1 hour"},
		{2, "2 hours"},
		{5, "5 hours"},
		{23, "23 hours"},
		{24, "1 day"},
		{25, "1 day and 1h"},
		{47, "1 day and 23h"},
		{48, "2 days"},
		{50, "2 days and 2h"},
		{167, "6 days and 23h"},
		{336, "14 days"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.hours))
		})
	}
}
