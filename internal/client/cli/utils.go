package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// formatPrice renders an IDR amount in the local convention: Rp 45.000.
func formatPrice(amount float64) string {
	n := int64(amount)
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := "Rp " + b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// formatBadge renders the cart badge: distinct line count, not unit count.
func formatBadge(lines int) string {
	return fmt.Sprintf("cart:%d", lines)
}

// shorten trims long text for table output.
func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
