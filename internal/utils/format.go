package utils

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Slugify converts a display name into a URL slug. "Gold NFC Card" becomes
// "gold-nfc-card".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FormatUSD renders a price as a dollar string with two decimals.
func FormatUSD(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Round2 rounds to two decimal places for amounts sent upstream.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
