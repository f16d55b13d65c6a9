package view

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dbTimeout = 10 * time.Second

var printer = message.NewPrinter(language.English)

// FormatAmount renders a peso amount with thousands separators.
func FormatAmount(d decimal.Decimal) string {
	return printer.Sprintf("₱%.2f", d.InexactFloat64())
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// Bar renders value as a horizontal bar scaled against peak.
func Bar(value, peak int64, width int) string {
	if peak <= 0 || value <= 0 {
		return ""
	}

	n := max(int(value*int64(width)/peak), 1)

	return barStyle.Render(strings.Repeat("█", n))
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
