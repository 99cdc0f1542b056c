package timefmt

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// dateFormat renders a short date for one locale.
type dateFormat struct {
	name   string
	months [12]string
	layout func(day int, month string, year int) string
}

func (f dateFormat) render(t time.Time) string {
	return f.layout(t.Day(), f.months[t.Month()-1], t.Year())
}

var englishMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// formats is indexed in the same order as supportedTags; index 0 is the fallback.
var formats = []dateFormat{
	{
		name:   DefaultLocale,
		months: englishMonths,
		layout: func(d int, m string, y int) string { return fmt.Sprintf("%s %d, %d", m, d, y) },
	},
	{
		name:   "en-GB",
		months: englishMonths,
		layout: func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
	},
	{
		name: "de-DE",
		months: [12]string{
			"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.",
		},
		layout: func(d int, m string, y int) string { return fmt.Sprintf("%d. %s %d", d, m, y) },
	},
	{
		name: "fr-FR",
		months: [12]string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		layout: func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
	},
	{
		name: "es-ES",
		months: [12]string{
			"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic",
		},
		layout: func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
	},
}

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
}

var matcher = language.NewMatcher(supportedTags)

func lookupFormat(locale string) dateFormat {
	if locale == "" {
		return formats[0]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return formats[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return formats[0]
	}
	return formats[idx]
}

// MatchLocale resolves an Accept-Language header to the closest supported
// locale name, or DefaultLocale.
func MatchLocale(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return formats[idx].name
}
