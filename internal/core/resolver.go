package core

import (
	"math"
	"time"
)

// LookaheadDays is the number of calendar days searched, starting with today.
// Two full weeks cover every weekday even when today's slot has already passed.
const LookaheadDays = 14

// NextCollection returns the closest strictly-future occurrence of the
// resident's weekly slots. The slots come from cfg when it lists any,
// otherwise from the calendar entry of cfg's neighborhood.
// The second result is false when there is nothing to resolve: no config,
// no neighborhood, or no valid slot. Malformed tokens are skipped silently.
func NextCollection(now time.Time, cfg *UserConfig, calendar Calendar) (Occurrence, bool) {
	if cfg == nil || cfg.Neighborhood == "" {
		return Occurrence{}, false
	}

	tokens := cfg.Slots
	if len(tokens) == 0 {
		tokens = calendar.Tokens(cfg.Neighborhood)
	}

	slots := parseSlots(tokens)
	if len(slots) == 0 {
		return Occurrence{}, false
	}

	loc := now.Location()
	year, month, day := now.Date()

	var best Occurrence
	var bestDiff time.Duration
	found := false

	for i := 0; i < LookaheadDays; i++ {
		// noon keeps the weekday stable across DST shifts
		weekday := time.Date(year, month, day+i, 12, 0, 0, 0, loc).Weekday()

		for _, slot := range slots {
			if slot.Day != weekday {
				continue
			}

			at := wallClock(year, month, day+i, slot.Hour, slot.Minute, loc)
			diff := at.Sub(now)
			if diff <= 0 {
				continue
			}

			if !found || diff < bestDiff {
				found = true
				bestDiff = diff
				best = Occurrence{
					Label:          slot.Label,
					At:             at,
					HoursRemaining: int(math.Round(diff.Hours())),
				}
			}
		}
	}

	return best, found
}

// wallClock builds the local instant for a wall-clock time. A time that falls
// in a skipped interval (DST spring-forward) moves forward by the gap, so
// 00:30 on a day that jumps from 00:00 to 01:00 becomes 01:30.
func wallClock(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	at := time.Date(year, month, day, hour, minute, 0, 0, loc)

	want := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	got := time.Date(at.Year(), at.Month(), at.Day(), at.Hour(), at.Minute(), 0, 0, time.UTC)
	if gap := want.Sub(got); gap > 0 {
		at = at.Add(gap)
	}
	return at
}

// parseSlots parses tokens in order and keeps only slots that can match
func parseSlots(tokens []string) []WeeklySlot {
	slots := make([]WeeklySlot, 0, len(tokens))
	for _, token := range tokens {
		slot, ok := ParseSlot(token)
		if !ok || !slot.Matchable() {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}
