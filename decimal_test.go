package numsep

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDecimal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		policy SeparatorPolicy
		in     string
		want   string
	}{
		{"plain integer", Commas, "1234567", "1,234,567"},
		{"negative integer", Commas, "-9876543", "-9,876,543"},
		{"money style", Commas, "1234567.89", "1,234,567.89"},
		{"boundary with fraction", Commas, "1000.5", "1,000.5"},
		{"small value", Commas, "0.01", "0.01"},
		{"spaces", Spaces, "12345678.9", "12 345 678.9"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := decimal.NewFromString(tt.in)
			require.NoError(t, err)

			got, err := tt.policy.FormatDecimal(d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDecimalFractionalGrouping(t *testing.T) {
	t.Parallel()
	policy := SeparatorPolicy{
		Separator:           " ",
		Groups:              []int{3},
		FractionalGroups:    []int{3},
		FractionalSeparator: " ",
	}

	d := decimal.RequireFromString("3.14159265358979")
	got, err := policy.FormatDecimal(d)
	require.NoError(t, err)
	assert.Equal(t, "3.141 592 653 589 79", got)
}

func TestFormatDecimalThroughFormat(t *testing.T) {
	t.Parallel()
	got, err := Commas.Format(decimal.RequireFromString("-1234567.5"))
	require.NoError(t, err)
	assert.Equal(t, "-1,234,567.5", got)
}
