package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"whole units", "120", 12000, false},
		{"two decimals", "120.50", 12050, false},
		{"one decimal", "0.5", 50, false},
		{"leading dot", ".75", 75, false},
		{"surrounding spaces", " 12.00 ", 1200, false},
		{"zero rejected", "0", 0, true},
		{"zero with decimals rejected", "0.00", 0, true},
		{"negative rejected", "-3", 0, true},
		{"negative fraction rejected", "-0.50", 0, true},
		{"three decimals rejected", "1.005", 0, true},
		{"trailing dot rejected", "1.", 0, true},
		{"garbage rejected", "12abc", 0, true},
		{"empty rejected", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBalance(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"empty means zero", "", 0, false},
		{"blank means zero", "   ", 0, false},
		{"zero allowed", "0", 0, false},
		{"positive", "250.99", 25099, false},
		{"negative rejected", "-1", 0, true},
		{"garbage rejected", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBalance(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "120.50", FormatAmount(12050))
	assert.Equal(t, "0.05", FormatAmount(5))
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "-3.25", FormatAmount(-325))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, v := range []int64{1, 99, 100, 12050, 1000000} {
		got, err := ParseAmount(FormatAmount(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
