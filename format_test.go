package graphlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrouping(t *testing.T) {
	tests := map[string]string{
		"12":          "12",
		"1234":        "1,234",
		"1234567.25":  "1,234,567.25",
		"-9876543":    "-9,876,543",
		"not-numeric": "not-numeric",
	}
	for input, want := range tests {
		assert.Equal(t, want, Grouping(input), input)
	}
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("dollar"))
	assert.Equal(t, "€", CurrencySymbol("EURO"))
	assert.Equal(t, "¥", CurrencySymbol("yen"))
	assert.Equal(t, "CHF", CurrencySymbol("CHF"))
}

func TestConfig_Format(t *testing.T) {
	tests := []struct {
		Name    string
		Options []Option
		Value   float64
		Want    string
	}{
		{
			Name:  "plain",
			Value: 12.5,
			Want:  "12.5",
		},
		{
			Name:    "comma",
			Options: []Option{WithComma()},
			Value:   1234567,
			Want:    "1,234,567",
		},
		{
			Name:    "comma-percent",
			Options: []Option{WithPercent(), WithComma()},
			Value:   12345,
			Want:    "12,345%",
		},
		{
			Name:    "degrees",
			Options: []Option{WithDegrees()},
			Value:   21,
			Want:    "21°",
		},
		{
			Name:    "currency-negative",
			Options: []Option{WithCurrency("dollar"), WithComma()},
			Value:   -1500,
			Want:    "-$1,500",
		},
		{
			Name:    "suffix",
			Options: []Option{WithSuffix(" kg"), WithFormatter(Suffix("!"))},
			Value:   3,
			Want:    "3 kg!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			cfg, errs := NewConfig(DefaultWidth, DefaultHeight, tt.Options...)
			require.True(t, errs.Empty())
			assert.Equal(t, tt.Want, cfg.Format(tt.Value))
		})
	}
}

func TestFormatOptions_Invalid(t *testing.T) {
	_, errs := NewConfig(DefaultWidth, DefaultHeight, WithSuffix(""), WithCurrency(""), WithFormatter(nil))
	assert.Equal(t, 3, errs.Len())
}
