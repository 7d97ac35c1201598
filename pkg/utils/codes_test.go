package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFolio(t *testing.T) {
	assert.Equal(t, "COT-000123", FormatFolio("COT", 123))
	assert.Equal(t, "COT-1234567", FormatFolio("COT", 1234567))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "VIN-01", NormalizeCode("  vin-01 "))
}

func TestNormalizeRUT(t *testing.T) {
	assert.Equal(t, "12345678-K", NormalizeRUT("12.345.678-k"))
	assert.Equal(t, "76123456-7", NormalizeRUT("761234567"))
	assert.Equal(t, "", NormalizeRUT(""))
}
