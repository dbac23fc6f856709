package escalation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEscalation(t *testing.T) {
	e, err := NewEscalation(7, "JAN-123456", ReasonSLABreach, "Water Department", SystemActorID, "deadline passed")
	require.NoError(t, err)

	assert.Equal(t, uint(7), e.ComplaintID())
	assert.Equal(t, "JAN-123456", e.TrackingID())
	assert.Equal(t, ReasonSLABreach, e.Reason())
	assert.Equal(t, DefaultAuthority, e.EscalatedTo())
	assert.False(t, e.IsResolved())
	assert.Nil(t, e.ResolvedAt())
	assert.True(t, e.IsSystemGenerated())
}

func TestNewEscalation_Validation(t *testing.T) {
	_, err := NewEscalation(0, "JAN-123456", ReasonManual, "", 1, "")
	assert.Error(t, err)

	_, err = NewEscalation(7, "", ReasonManual, "", 1, "")
	assert.Error(t, err)

	_, err = NewEscalation(7, "JAN-123456", Reason("whim"), "", 1, "")
	assert.Error(t, err)
}

func TestEscalation_Resolve(t *testing.T) {
	e, err := NewEscalation(7, "JAN-123456", ReasonManual, "Water Department", 3, "pump station silent")
	require.NoError(t, err)

	require.NoError(t, e.Resolve("supervisor intervened"))

	assert.True(t, e.IsResolved())
	assert.NotNil(t, e.ResolvedAt())
	assert.Contains(t, e.Notes(), "pump station silent")
	assert.Contains(t, e.Notes(), "supervisor intervened")

	err = e.Resolve("again")
	assert.Error(t, err)
}

func TestNewReason(t *testing.T) {
	for _, s := range []string{"sla-breach", "manual", "priority"} {
		r, err := NewReason(s)
		assert.NoError(t, err)
		assert.True(t, r.IsValid())
	}

	_, err := NewReason("boredom")
	assert.Error(t, err)
}
