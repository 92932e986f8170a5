// Package format renders amounts and timestamps for display.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const placeholder = "—"

var printer = message.NewPrinter(language.AmericanEnglish)

// Amount formats a numeric amount with its currency symbol using standard
// locale rules. Unknown currency codes fall back to "<amount> <code>".
func Amount(n float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", n, code)
	}

	return printer.Sprintf("%v", currency.Symbol(unit.Amount(n)))
}

// DateTime formats an order timestamp the way the orders table shows it.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}

	return t.Format("Jan 02, 2006 15:04")
}
