// Package format renders conversions for people.
package format

import (
	"fmt"
	"go-currency-converter/domain"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Amount formats amount in the given currency, e.g. "$ 1,234.50".
// Codes x/text does not know fall back to "1234.50 XYZ".
func Amount(amount domain.Amount, code domain.Currency) string {
	unit, err := currency.ParseISO(string(code))
	if err != nil {
		return fmt.Sprintf("%.2f %v", float64(amount), code)
	}
	return printer.Sprint(currency.Symbol(unit.Amount(float64(amount))))
}

// Summary "{original} = {converted}"
func Summary(c domain.Conversion) string {
	return fmt.Sprintf("%v = %v", Amount(c.Original, c.From), Amount(c.Converted, c.To))
}

// RateLine "1 USD = 0.8500 EUR"
func RateLine(c domain.Conversion) string {
	return fmt.Sprintf("1 %v = %.4f %v", c.From, float64(c.Rate), c.To)
}
