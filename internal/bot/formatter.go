package bot

import (
	"ecoalerta/internal/reminder"
	"fmt"
	"strings"
)

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// FormatReminder renders an eve reminder as a Telegram Markdown message
func FormatReminder(r reminder.Reminder) string {
	var sb strings.Builder

	sb.WriteString("🗑 *Waste collection tomorrow*\n")
	sb.WriteString(fmt.Sprintf("Neighborhood: %s\n", escapeMarkdown(r.Neighborhood)))
	sb.WriteString(fmt.Sprintf("When: %s\n", escapeMarkdown(r.DateText)))
	sb.WriteString(fmt.Sprintf("Time remaining: %s\n", r.DurationText))
	sb.WriteString("\nPut the bins out tonight.")

	return sb.String()
}

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
