package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareNumericIDs(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"shorter is older", "99", "100", -1},
		{"longer is newer", "100", "99", 1},
		{"same length lexical", "1800000000000000001", "1800000000000000002", -1},
		{"equal", "42", "42", 0},
		{"leading zeros ignored", "007", "7", 0},
		{"snowflake scale", "1823456789012345678", "923456789012345678", 1},
		{"non numeric falls back to lexical", "abc", "abd", -1},
		{"mixed falls back to lexical", "123", "abc", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareNumericIDs(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}
