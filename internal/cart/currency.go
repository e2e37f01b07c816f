package cart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// USDToINR is the fixed conversion rate. No live FX lookup; prices accumulate
// in USD and convert once at display.
const USDToINR = 83.5

var (
	printerINR = message.NewPrinter(language.MustParse("en-IN"))
	printerUSD = message.NewPrinter(language.AmericanEnglish)
)

// FormatCurrency renders a USD amount for display in the target currency with
// locale-correct grouping and no fraction digits. Unknown currencies render
// as USD.
func FormatCurrency(amount float64, target string) string {
	if target == "INR" {
		return printerINR.Sprintf("₹%v", number.Decimal(amount*USDToINR, number.MaxFractionDigits(0)))
	}
	return printerUSD.Sprintf("$%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
