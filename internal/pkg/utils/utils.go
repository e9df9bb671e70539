package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatPrice joins a currency code and an amount with two decimals
// Example: ("USD", 1234.5) -> "USD 1234.50"
func FormatPrice(currency string, amount float64) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// SplitCurrencyAmount splits a fare string with a leading currency code
// Example: "USD245.10" -> ("USD", 245.1)
func SplitCurrencyAmount(fare string) (string, float64, error) {
	fare = strings.TrimSpace(fare)

	i := strings.IndexFunc(fare, func(r rune) bool {
		return (r >= '0' && r <= '9') || r == '.' || r == '-'
	})
	if i <= 0 {
		return "", 0, fmt.Errorf("fare %q has no currency prefix", fare)
	}

	amount, err := strconv.ParseFloat(fare[i:], 64)
	if err != nil {
		return "", 0, fmt.Errorf("parse fare amount %q: %w", fare, err)
	}

	return strings.TrimSpace(fare[:i]), amount, nil
}

// FormatClock formats an hour and minute as HH:MM
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
