package core

import (
	"strings"
	"time"
)

// DefaultSlotTime is used when a token carries only a day
const DefaultSlotTime = "07:00"

// dayTable maps normalized day tokens to weekdays
var dayTable = map[string]time.Weekday{
	"domingo": time.Sunday,
	"dom":     time.Sunday,

	"2ª":      time.Monday,
	"2º":      time.Monday,
	"segunda": time.Monday,
	"seg":     time.Monday,

	"3ª":    time.Tuesday,
	"3º":    time.Tuesday,
	"terça": time.Tuesday,
	"terca": time.Tuesday,
	"ter":   time.Tuesday,

	"4ª":     time.Wednesday,
	"4º":     time.Wednesday,
	"quarta": time.Wednesday,
	"qua":    time.Wednesday,

	"5ª":     time.Thursday,
	"5º":     time.Thursday,
	"quinta": time.Thursday,
	"qui":    time.Thursday,

	"6ª":    time.Friday,
	"6º":    time.Friday,
	"sexta": time.Friday,
	"sex":   time.Friday,

	"sábado": time.Saturday,
	"sabado": time.Saturday,
	"sab":    time.Saturday,
}

// ParseDay converts a day token ("2ª", "Sábado", "qui") into a weekday.
// Matching is case-insensitive after trimming.
func ParseDay(token string) (time.Weekday, bool) {
	day, ok := dayTable[strings.ToLower(strings.TrimSpace(token))]
	return day, ok
}

// ParseSlot converts a schedule token of the form "<day> [hh:mm]" into a WeeklySlot.
// ok is false only when the day token is unknown. A time part that does not
// parse yields a slot that is not Matchable.
func ParseSlot(token string) (WeeklySlot, bool) {
	fields := strings.Fields(token)

	dayToken := ""
	timeToken := DefaultSlotTime
	if len(fields) > 0 {
		dayToken = fields[0]
	}
	if len(fields) > 1 {
		timeToken = fields[1]
	}

	day, ok := ParseDay(dayToken)
	if !ok {
		return WeeklySlot{Label: token}, false
	}

	slot := WeeklySlot{Day: day, Label: token}

	hourPart, minutePart, hasMinute := strings.Cut(timeToken, ":")
	hour, hourOK := parseLeadingInt(hourPart)
	minute, minuteOK := 0, false
	if hasMinute {
		// only the first two colon-separated fields count
		minutePart, _, _ = strings.Cut(minutePart, ":")
		minute, minuteOK = parseLeadingInt(minutePart)
	}

	slot.Hour = hour
	slot.Minute = minute
	slot.timeInvalid = !hourOK || !minuteOK

	return slot, true
}

// parseLeadingInt parses a base-10 integer prefix: leading whitespace, an
// optional sign, then digits. Anything after the digits is ignored.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n := 0
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		digits++
		if n > 1<<30 {
			// past any representable collection date, never matches
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}

	if negative {
		n = -n
	}
	return n, true
}
