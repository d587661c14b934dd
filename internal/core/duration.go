package core

import (
	"fmt"
)

// FormatDuration renders a whole number of hours as natural-language text,
// e.g. "5 hours", "1 day and 1h", "2 days".
func FormatDuration(hours int) string {
	if hours < 1 {
		return "less than 1 hour"
	}
	if hours == 1 {
		return "1 hour"
	}
	if hours < 24 {
		return fmt.Sprintf("%d hours", hours)
	}

	days := hours / 24
	rest := hours % 24

	switch {
	case days == 1 && rest == 0:
		return "1 day"
	case days == 1:
		return fmt.Sprintf("1 day and %dh", rest)
	case rest == 0:
		return fmt.Sprintf("%d days", days)
	default:
		return fmt.Sprintf("%d days and %dh", days, rest)
	}
}
