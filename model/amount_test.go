package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsStorable(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"0", true},
		{"0e100000000", true},
		{"1.2345", true},
		{"1.23450000", true},
		{"1.23456", false},
		{"1e-1000000000", false},
		{"9999999999999999.9999", true},
		{"-9999999999999999.9999", true},
		{"10000000000000000", false},
		{"1e16", false},
		{"1e20", false},
		{"1e2000000", false},
		{"1e1000000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStorable(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestMaxAmountIsNotInRange(t *testing.T) {
	assert.False(t, WithinRange(MaxAmount))
	assert.True(t, WithinRange(MaxAmount.Sub(decimal.New(1, -AmountScale))))
}
