package core

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var frPrinter = message.NewPrinter(language.French)

// FormatEuros renders an amount the way the French locale does for whole
// euros: thousands grouped by no-break spaces, no decimals, trailing euro
// sign ("350\u00a0000\u00a0€").
func FormatEuros(m Money) string {
	euros := decimal.New(m.Cents, -2).Round(0).IntPart()
	return frPrinter.Sprintf("%d", euros) + "\u00a0€"
}

// FormatPercent renders a percentage with one decimal place ("44.4").
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(1)
}

// FormatSize renders a byte count for display ("2.5 MB").
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.Bytes(uint64(bytes))
}
