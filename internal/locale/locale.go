// Package locale formats calendar dates and counters for the user's locale.
package locale

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// supported lists the tags with a known calendar layout. The first entry is the fallback.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Dutch,
	language.Spanish,
	language.Italian,
	language.Portuguese,
	language.Japanese,
	language.Chinese,
	language.Korean,
}

// dateLayouts is indexed like supported.
var dateLayouts = []string{
	"1/2/2006",
	"02/01/2006",
	"2.1.2006",
	"02/01/2006",
	"2-1-2006",
	"2/1/2006",
	"2/1/2006",
	"02/01/2006",
	"2006/1/2",
	"2006/1/2",
	"2006. 1. 2.",
}

var matcher = language.NewMatcher(supported)

// Formatter renders values for one locale.
type Formatter struct {
	tag     language.Tag
	layout  string
	printer *message.Printer
}

// New returns a Formatter for a POSIX or BCP 47 locale name such as "de_DE.UTF-8" or "en-GB".
// An empty name falls back to the environment; unknown names fall back to US English.
func New(name string) *Formatter {
	if name == "" {
		name = FromEnvironment()
	}

	idx := 0
	if tag, err := language.Parse(normalize(name)); err == nil {
		_, idx, _ = matcher.Match(tag)
	}

	return &Formatter{
		tag:     supported[idx],
		layout:  dateLayouts[idx],
		printer: message.NewPrinter(supported[idx]),
	}
}

// FromEnvironment returns the locale selected by LC_ALL, LC_TIME or LANG, in that order.
func FromEnvironment() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Tag returns the matched language tag.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// FormatDate renders the calendar date of t in its own location.
func (f *Formatter) FormatDate(t time.Time) string {
	return t.Format(f.layout)
}

// FormatCount renders n with locale digit grouping.
func (f *Formatter) FormatCount(n int) string {
	return f.printer.Sprintf("%d", n)
}

// normalize turns "de_DE.UTF-8@euro" into "de-DE".
func normalize(name string) string {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "C" || name == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(name, "_", "-")
}
