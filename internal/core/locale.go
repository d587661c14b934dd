package core

import (
	"fmt"
	"time"
)

// Language selects date and time rendering
type Language string

const (
	LanguagePortuguese Language = "pt-BR"
	LanguageEnglish    Language = "en-US"

	DefaultLanguage = LanguagePortuguese
)

// localeFormat holds the layouts and day names of one language
type localeFormat struct {
	timestampLayout string
	dateLayout      string
	atWord          string
	dayNames        [7]string
}

var locales = map[Language]localeFormat{
	LanguagePortuguese: {
		timestampLayout: "02/01/2006, 15:04:05",
		dateLayout:      "02/01/2006",
		atWord:          "às",
		dayNames:        [7]string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"},
	},
	LanguageEnglish: {
		timestampLayout: "1/2/2006, 3:04:05 PM",
		dateLayout:      "1/2/2006",
		atWord:          "at",
		dayNames:        [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	},
}

// Valid reports whether the language has a rendering table
func (l Language) Valid() bool {
	_, ok := locales[l]
	return ok
}

func (l Language) format() localeFormat {
	if f, ok := locales[l]; ok {
		return f
	}
	return locales[DefaultLanguage]
}

// FormatTimestamp renders t as a locale date-time string, e.g. "13/02/2009, 23:31:30"
func FormatTimestamp(t time.Time, lang Language) string {
	return t.Format(lang.format().timestampLayout)
}

// FormatCollectionDate renders a collection instant for display,
// e.g. "Segunda, 08/01/2024 às 15:00"
func FormatCollectionDate(t time.Time, lang Language) string {
	f := lang.format()
	return fmt.Sprintf("%s, %s %s %s",
		f.dayNames[t.Weekday()],
		t.Format(f.dateLayout),
		f.atWord,
		t.Format("15:04"))
}
