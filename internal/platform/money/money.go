package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount in cents as a pt-BR currency string,
// e.g. 1234567 -> "R$ 12.345,67". The integer and fraction parts are
// formatted separately so the whole int64 range stays exact.
func FormatBRL(cents int64) string {
	var sign string
	u := uint64(cents)
	if cents < 0 {
		sign = "-"
		u = -u
	}
	reais := u / 100
	centavos := u % 100
	return ptBR.Sprintf("%sR$ %v,%02d", sign, number.Decimal(reais), centavos)
}
