package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		token  string
		want   time.Weekday
		wantOK bool
	}{
		{"2ª", time.Monday, true},
		{"3ª", time.Tuesday, true},
		{"6ª", time.Friday, true},
		{"sábado", time.Saturday, true},
		{"Sábado", time.Saturday, true},
		{"SABADO", time.Saturday, true},
		{"sab", time.Saturday, true},
		{"Domingo", time.Sunday, true},
		{"dom", time.Sunday, true},
		{"  quarta  ", time.Wednesday, true},
		{"Terça", time.Tuesday, true},
		{"terca", time.Tuesday, true},
		{"qui", time.Thursday, true},
		{"2º", time.Monday, true},
		{"invalid", 0, false},
		{"dia inválido", 0, false},
		{"", 0, false},
		{"7ª", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseDay(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		token      string
		wantDay    time.Weekday
		wantHour   int
		wantMinute int
	}{
		{"2ª 07:00", time.Monday, 7, 0},
		{"Sábado 08:30", time.Saturday, 8, 30},
		{"  6ª   19:45 ", time.Friday, 19, 45},
		{"quinta", time.Thursday, 7, 0},
		{"3ª 7:5", time.Tuesday, 7, 5},
		{"sex 06:15:59", time.Friday, 6, 15},
		{"dom 08h:30min", time.Sunday, 8, 30},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			slot, ok := ParseSlot(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.wantDay, slot.Day)
			assert.Equal(t, tt.wantHour, slot.Hour)
			assert.Equal(t, tt.wantMinute, slot.Minute)
			assert.Equal(t, tt.token, slot.Label)
			assert.True(t, slot.Matchable())
		})
	}
}

func TestParseSlot_UnknownDay(t *testing.T) {
	_, ok := ParseSlot("feriado 07:00")
	assert.False(t, ok)

	_, ok = ParseSlot("")
	assert.False(t, ok)
}

func TestParseSlot_MalformedTime(t *testing.T) {
	tests := []string{
		"2ª xx:00",
		"2ª 07",
		"2ª 07:",
		"2ª :30",
		"2ª manhã",
	}

	for _, token := range tests {
		t.Run(token, func(t *testing.T) {
			slot, ok := ParseSlot(token)
			require.True(t, ok, "day is still recognized")
			assert.Equal(t, time.Monday, slot.Day)
			assert.False(t, slot.Matchable())
		})
	}
}

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"07", 7, true},
		{"  8", 8, true},
		{"+5", 5, true},
		{"-3", -3, true},
		{"12abc", 12, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseLeadingInt(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
