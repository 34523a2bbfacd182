package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffectedSlots(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
		want  []SlotID
	}{
		{"exact first period", 8 * 60, 9*60 + 20, []SlotID{"08:00-09:20"}},
		{"ends at next period start", 8*60 + 50, 9*60 + 30, []SlotID{"08:00-09:20"}},
		{"crosses into second period", 8*60 + 50, 9*60 + 31, []SlotID{"08:00-09:20", "09:30-10:50"}},
		{"spans two periods", 8 * 60, 10*60 + 50, []SlotID{"08:00-09:20", "09:30-10:50"}},
		{"inside gap between periods", 9*60 + 21, 9*60 + 29, nil},
		{"last period", 17 * 60, 18*60 + 20, []SlotID{"17:00-18:20"}},
		{"before the day starts", 6 * 60, 7 * 60, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AffectedSlots(tt.start, tt.end))
		})
	}
}

func TestSlotIndex(t *testing.T) {
	ids := SlotIDs()
	require.Len(t, ids, 7)
	for i, id := range ids {
		got, ok := SlotIndex(id)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	_, ok := SlotIndex("07:00-08:00")
	assert.False(t, ok)
}
