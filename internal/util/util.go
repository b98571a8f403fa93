package util

import (
	"fmt"
	"strconv"
	"time"
)

const (
	displayDateLayout = "Jan 2, 2006"
	inputDateLayout   = "2006-01-02"
)

// FormatPrice formats a price with two decimals (e.g., "$19.90").
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// FormatNumber prints a number without trailing zeros (e.g., "15", "12.5").
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FormatDiscount renders the badge of an offer (e.g., "15% OFF", "$5 OFF").
func FormatDiscount(discount float64, discountType string) string {
	if discountType == "fixed" {
		return "$" + FormatNumber(discount) + " OFF"
	}

	return FormatNumber(discount) + "% OFF"
}

// FormatDate formats a timestamp for display. A nil or zero time gives "".
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return t.Format(displayDateLayout)
}

// FormatDateInput formats a timestamp as the value of an HTML date input.
func FormatDateInput(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return t.Format(inputDateLayout)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
