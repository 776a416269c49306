package calc

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseNumber parses a user-entered number. Both "," and "." are accepted as the
// decimal separator; spaces, currency signs and unit suffixes are ignored. When
// several separators remain, the last one is the decimal separator and the rest
// are thousands separators ("1.250,5" and "1,250.5" both parse as 1250.5).
// A sign is only accepted before the number, and digits after a suffix make
// the input unparseable, so "1e3" and "5-3" are rejected rather than guessed.
func ParseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	var b strings.Builder
	negative := false
	suffix := false
	lastSep := -1
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			if suffix {
				return 0, false
			}
			b.WriteRune(r)
		case r == '.' || r == ',':
			if suffix {
				continue
			}
			lastSep = b.Len()
			b.WriteByte('.')
		case r == '-' || r == '\u2212':
			if negative || b.Len() > 0 {
				return 0, false
			}
			negative = true
		case unicode.IsSpace(r) || r == '\'':
			// digit grouping
		default:
			if b.Len() > 0 {
				suffix = true
			}
		}
	}

	cleaned := b.String()
	if lastSep >= 0 {
		intPart := strings.ReplaceAll(cleaned[:lastSep], ".", "")
		cleaned = intPart + cleaned[lastSep:]
	}
	if cleaned == "" || cleaned == "." {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || !isFinite(value) {
		return 0, false
	}
	if negative {
		value = -value
	}
	return value, true
}

// ParseLocaleNumber is ParseNumber with unparseable input mapped to 0.
func ParseLocaleNumber(raw string) float64 {
	value, ok := ParseNumber(raw)
	if !ok {
		return 0
	}
	return value
}

// ParseNonNegative is ParseLocaleNumber clamped at 0.
func ParseNonNegative(raw string) float64 {
	return math.Max(ParseLocaleNumber(raw), 0)
}
