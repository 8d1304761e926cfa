// Package locale collects the per-language settings of the analyzer: number
// separators, the export file suffix, the affirmative answer and the
// translated display strings.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SelectionPolicy decides what the menu loop does after an invalid choice.
type SelectionPolicy string

const (
	// Terminate ends the program on an invalid menu choice.
	Terminate SelectionPolicy = "terminate"
	// Continue shows the menu again.
	Continue SelectionPolicy = "continue"
)

// Locale is one language/number-format convention.
type Locale struct {
	Name             string
	Tag              language.Tag
	Decimal          string
	Thousands        string
	FileSuffix       string
	Affirmative      string
	InvalidSelection SelectionPolicy
}

var (
	English = Locale{
		Name:             "en",
		Tag:              language.English,
		Decimal:          ".",
		Thousands:        ",",
		FileSuffix:       "5_years",
		Affirmative:      "y",
		InvalidSelection: Terminate,
	}
	Spanish = Locale{
		Name:             "es",
		Tag:              language.Spanish,
		Decimal:          ",",
		Thousands:        ".",
		FileSuffix:       "5_anos",
		Affirmative:      "s",
		InvalidSelection: Continue,
	}
)

// Lookup returns the locale registered under name ("en", "es").
func Lookup(name string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "en", "english":
		return English, nil
	case "es", "spanish", "espanol", "español":
		return Spanish, nil
	default:
		return Locale{}, fmt.Errorf("unknown locale %q", name)
	}
}

// Printer returns a message printer for the locale's language.
func (l Locale) Printer() *message.Printer {
	return message.NewPrinter(l.Tag)
}

// ValidPolicy reports whether p is a known selection policy.
func ValidPolicy(p SelectionPolicy) bool {
	return p == Terminate || p == Continue
}
