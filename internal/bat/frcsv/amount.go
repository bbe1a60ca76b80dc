package frcsv

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseEuropeanAmount parses a European-formatted amount string.
// Format examples: "1.234,56", "-588,74", "1 234,56" (non-breaking or
// plain space as thousands separator).
func parseEuropeanAmount(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer(".", "", " ", "", " ", "", ",", ".").Replace(s)

	return decimal.NewFromString(clean)
}
