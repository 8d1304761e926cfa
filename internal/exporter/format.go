package exporter

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"FolioLens/internal/locale"
)

// Formatter renders numeric cells with a locale's separators.
type Formatter struct {
	Locale  locale.Locale
	pattern string
}

// NewFormatter builds the go-humanize pattern for the locale, e.g. "#,###.##"
// for English and "#.###,##" for Spanish.
func NewFormatter(loc locale.Locale) *Formatter {
	return &Formatter{
		Locale:  loc,
		pattern: "#" + loc.Thousands + "###" + loc.Decimal + "##",
	}
}

// Round2 rounds to two decimals, half to even.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).RoundBank(2).Float64()
	return f
}

// Number renders v rounded to two decimals with thousands grouping.
func (f *Formatter) Number(v float64) string {
	return humanize.FormatFloat(f.pattern, Round2(v))
}

// Percent renders v like Number with a trailing percent sign.
func (f *Formatter) Percent(v float64) string {
	return f.Number(v) + "%"
}

// ParseNumber reverses Number and Percent for this locale.
func (f *Formatter) ParseNumber(cell string) (float64, error) {
	s := strings.TrimSpace(cell)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, f.Locale.Thousands, "")
	s = strings.ReplaceAll(s, f.Locale.Decimal, ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", cell, err)
	}
	v, _ := d.Float64()
	return v, nil
}
