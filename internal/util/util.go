package util

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Checksum returns the hex SHA256 of the parts, each terminated by a unit separator.
func Checksum(parts ...string) string {
	sha256Hash := sha256.New()
	for _, part := range parts {
		_, _ = io.WriteString(sha256Hash, part)
		_, _ = sha256Hash.Write([]byte{0x1f})
	}

	return hex.EncodeToString(sha256Hash.Sum(nil))
}

// FormatPrice formats an amount the way the storefront shows VND prices (e.g., "250.000 ₫").
func FormatPrice(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	digits := rounded.Abs().String()

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteString(" ₫")

	return b.String()
}
