// Package money renders whole-rupee amounts for receipts and admin
// views. Prices everywhere in this service are integers, there are no
// paise to display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount as Indian-English rupees with lakh/crore
// grouping and no decimal places, e.g. 118290 -> "₹1,18,290".
func Format(amount int) string {
	return printer.Sprintf("₹%v", number.Decimal(amount))
}
