package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_GetSLAHours(t *testing.T) {
	tests := []struct {
		priority Priority
		want     float64
	}{
		{PriorityCritical, 24},
		{PriorityHigh, 72},
		{PriorityMedium, 168},
		{PriorityLow, 336},
		{Priority("bogus"), 336},
	}

	for _, tt := range tests {
		t.Run(tt.priority.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.priority.GetSLAHours())
		})
	}
}

func TestPriority_AtLeast(t *testing.T) {
	assert.True(t, PriorityCritical.AtLeast(PriorityHigh))
	assert.True(t, PriorityHigh.AtLeast(PriorityHigh))
	assert.False(t, PriorityMedium.AtLeast(PriorityHigh))
	assert.False(t, PriorityLow.AtLeast(PriorityMedium))
}

func TestNewPriority(t *testing.T) {
	p, err := NewPriority("critical")
	assert.NoError(t, err)
	assert.Equal(t, PriorityCritical, p)

	_, err = NewPriority("urgent")
	assert.Error(t, err)
}

func TestCategoryOrOther(t *testing.T) {
	assert.Equal(t, CategoryWater, CategoryOrOther("Water Supply"))
	assert.Equal(t, CategoryOther, CategoryOrOther("Astrology"))
}
