package feedio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatExamDetail(t *testing.T) {
	got := FormatExamDetail("2025-12-19", "09:00:00", "11:00:00")
	assert.Equal(t, "Dec 19, 2025 9:00 AM - 11:00 AM", got)

	got = FormatExamDetail("2026-01-05", "14:30", "16:30")
	assert.Equal(t, "Jan 5, 2026 2:30 PM - 4:30 PM", got)
}

func TestFormatExamDetailFallsBackToRaw(t *testing.T) {
	got := FormatExamDetail("19/12/2025", "09:00:00", "11:00:00")
	assert.Equal(t, "19/12/2025 09:00 - 11:00", got, "unparseable date keeps raw fields, clocks truncated")

	got = FormatExamDetail("2025-12-19", "morning", "noon")
	assert.Equal(t, "2025-12-19 morni - noon", got)
}

func TestFormatExamDetailEmptyFields(t *testing.T) {
	assert.Equal(t, "", FormatExamDetail("", "09:00", "11:00"))
	assert.Equal(t, "", FormatExamDetail("2025-12-19", "", "11:00"))
	assert.Equal(t, "", FormatExamDetail("2025-12-19", "09:00", ""))
}
