package connector

import "strings"

// CompareNumericIDs orders decimal id strings without parsing them into
// integers, so snowflake-sized ids never overflow. Non-numeric ids fall
// back to lexical order.
func CompareNumericIDs(a, b string) int {
	na, okA := normalizeDecimal(a)
	nb, okB := normalizeDecimal(b)
	if !okA || !okB {
		return strings.Compare(a, b)
	}
	if len(na) != len(nb) {
		if len(na) < len(nb) {
			return -1
		}
		return 1
	}
	return strings.Compare(na, nb)
}

func normalizeDecimal(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return trimmed, true
}
