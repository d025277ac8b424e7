package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount the way the app shows prices: "Rp 1.000.000"
func FormatRupiah(amount int64) string {
	return rupiahPrinter.Sprintf("Rp %d", amount)
}
