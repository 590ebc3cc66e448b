// AngelaMos | 2026
// money.go

package core

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatMoney renders an amount in the base currency unit, e.g. "Rp 75.000".
func FormatMoney(amount int64) string {
	if amount < 0 {
		return idPrinter.Sprintf("-Rp %d", -amount)
	}
	return idPrinter.Sprintf("Rp %d", amount)
}

// MaskAccount keeps only the last four characters of an account number.
func MaskAccount(account string) string {
	r := []rune(account)
	if len(r) > 4 {
		r = r[len(r)-4:]
	}
	return "****" + string(r)
}
