package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "₱0.00"},
		{in: "50000", want: "₱50,000.00"},
		{in: "1234567.891", want: "₱1,234,567.89"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "12,345", FormatCount(12345))
	assert.Equal(t, "7", FormatCount(7))
}

func TestBar(t *testing.T) {
	assert.Empty(t, Bar(0, 10, 20))
	assert.Empty(t, Bar(5, 0, 20))
	assert.NotEmpty(t, Bar(1, 1000, 20))
}
