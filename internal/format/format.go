package format

import (
	"fmt"
	"strings"
	"time"
)

// Price formats an amount in minor units the way the storefront shows it.
// Example: Price(4999, "PLN") => "49.99 PLN"
func Price(minor int64, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "PLN"
	}
	neg := minor < 0
	if neg {
		minor = -minor
	}
	out := thousandSep(minor/100) + "." + fmt.Sprintf("%02d", minor%100) + " " + currency
	if neg {
		return "-" + out
	}
	return out
}

// Decimal renders minor units as a plain decimal ("49.99") for structured data.
func Decimal(minor int64) string {
	neg := minor < 0
	if neg {
		minor = -minor
	}
	s := fmt.Sprintf("%d.%02d", minor/100, minor%100)
	if neg {
		return "-" + s
	}
	return s
}

// thousandSep groups digits with a space, as used in Polish price tags.
func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 4 {
		return s
	}
	var sb strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// Date formats time in a locale-friendly short form.
func Date(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "pl":
		return t.Format("02.01.2006")
	default:
		return t.Format("Jan 2, 2006")
	}
}
