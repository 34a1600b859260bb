package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr error
	}{
		{input: "100", want: 10000},
		{input: "1.5", want: 150},
		{input: "1234.56", want: 123456},
		{input: " 0.01 ", want: 1},
		{input: "0", want: 0},
		{input: "1.234", wantErr: ErrAmountTooPrecise},
		{input: "-5", wantErr: ErrInvalidAmount},
		{input: "abc", wantErr: ErrInvalidAmount},
		{input: "", wantErr: ErrInvalidAmount},
		{input: "92233720368547758.07", want: math.MaxInt64},
		{input: "92233720368547758.08", wantErr: ErrInvalidAmount},
		{input: "184467440737095516.17", wantErr: ErrInvalidAmount},
		{input: "100000000000000000", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,234,567.89 CZK", FormatAmount(123456789, "CZK"))
	assert.Equal(t, "0.05 EUR", FormatAmount(5, "EUR"))
	assert.Equal(t, "-0.50", FormatAmount(-50, ""))
	assert.Equal(t, "100.00 CZK", FormatAmount(10000, "CZK"))
}

func TestGenerateOrderNo(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		orderNo := GenerateOrderNo()
		assert.Regexp(t, `^[0-9]{10}$`, orderNo)
		seen[orderNo] = struct{}{}
	}
	assert.Greater(t, len(seen), 95)
}

func TestGenerateOrderNoLeadingDigits(t *testing.T) {
	leading := make(map[byte]int)
	for range 500 {
		leading[GenerateOrderNo()[0]]++
	}
	assert.Greater(t, len(leading), 5)
}
