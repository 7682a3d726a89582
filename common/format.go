package common

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatNumber renders n with thousands separators, e.g. 1234567 -> 1,234,567.
func FormatNumber[T ~int | ~int64 | ~uint64](n T) string {
	return printer.Sprintf("%d", n)
}

// FormatGas renders a raw gas amount in millions with two decimals,
// e.g. 12345678 -> 12.35M.
func FormatGas(gas float64) string {
	return fmt.Sprintf("%.2fM", gas/1e6)
}

// FormatChainTime renders a unix timestamp as a local wall clock time.
func FormatChainTime(ts uint64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(int64(ts), 0).In(loc).Format("15:04:05")
}

// ShortHash keeps the prefix and the last 6 characters of long hashes.
func ShortHash(hash string) string {
	if len(hash) <= 16 {
		return hash
	}
	return hash[:8] + "…" + hash[len(hash)-6:]
}

// OrDash renders the value with format when it is positive and a dash
// otherwise, the dashboard's way of showing "no data".
func OrDash(v float64, format string) string {
	if v <= 0 {
		return "—"
	}
	return fmt.Sprintf(format, v)
}
