package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPlatformFee(t *testing.T) {
	cases := []struct {
		name       string
		price      int64
		percent    float64
		wantFee    int64
		wantPayout int64
	}{
		{"default fee", 10000, 15, 1500, 8500},
		{"zero fee", 10000, 0, 0, 10000},
		{"half cent rounds away from zero", 10, 15, 2, 8},
		{"below half rounds down", 1003, 15, 150, 853},
		{"fractional percent", 12345, 12.5, 1543, 10802},
		{"zero price", 0, 15, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fee, payout := SplitPlatformFee(tc.price, tc.percent)
			assert.Equal(t, tc.wantFee, fee)
			assert.Equal(t, tc.wantPayout, payout)
			assert.Equal(t, tc.price, fee+payout)
		})
	}
}
