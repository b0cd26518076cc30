// Package locale formats prices and dates for the player's language.
package locale

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol is appended to every formatted price.
const CurrencySymbol = "€"

// DefaultTag is used when no language, or an unparsable one, is configured.
var DefaultTag = language.Spanish

// dateLayouts maps a base language to its short calendar-date layout.
var dateLayouts = map[string]string{
	"es": "02/01/2006",
	"fr": "02/01/2006",
	"pt": "02/01/2006",
	"it": "02/01/2006",
	"de": "02.01.2006",
	"en": "1/2/2006",
}

// Formatter renders numbers and dates for one language.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	layout  string
}

// New builds a formatter from a BCP 47 tag such as "es" or "en-US".
func New(tag string) *Formatter {
	t, err := language.Parse(tag)
	if err != nil || tag == "" {
		t = DefaultTag
	}
	base, _ := t.Base()
	layout, ok := dateLayouts[base.String()]
	if !ok {
		layout = time.DateOnly
	}
	return &Formatter{tag: t, printer: message.NewPrinter(t), layout: layout}
}

// Tag returns the language the formatter was built for.
func (f *Formatter) Tag() language.Tag { return f.tag }

// Price renders an amount with locale digit grouping and the currency symbol.
func (f *Formatter) Price(amount int) string {
	return f.printer.Sprintf("%d", amount) + CurrencySymbol
}

// Number renders an integer with locale digit grouping.
func (f *Formatter) Number(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Date renders t as a short calendar date.
func (f *Formatter) Date(t time.Time) string {
	return t.Format(f.layout)
}
