package complaint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "jannivaran/internal/domain/complaint/valueobjects"
	"jannivaran/internal/domain/sla"
	"jannivaran/internal/shared/authorization"
)

func newTestComplaint(t *testing.T) *Complaint {
	t.Helper()
	c, err := NewComplaint(
		"Streetlight not working",
		"The streetlight outside house 42 has been off for a week",
		vo.CategoryElectric,
		vo.PriorityMedium,
		"Electricity Board",
		"MG Road, Ward 7",
		10,
	)
	require.NoError(t, err)
	return c
}

func TestNewComplaint(t *testing.T) {
	c := newTestComplaint(t)

	assert.Equal(t, vo.StatusPending, c.Status())
	assert.Equal(t, vo.PriorityMedium, c.Priority())
	assert.Equal(t, "Electricity Board", c.Department())
	assert.Equal(t, 1, c.Version())
	assert.Equal(t, 168.0, c.SLAAssignedHours())
	assert.WithinDuration(t, c.CreatedAt().Add(168*time.Hour), c.SLADeadline(), time.Second)
	assert.Nil(t, c.AssignedAt())
	assert.Nil(t, c.EscalatedAt())
}

func TestNewComplaint_Validation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		category    vo.Category
		priority    vo.Priority
		department  string
		citizenID   uint
		wantErr     string
	}{
		{"empty title", "", "desc", vo.CategoryOther, vo.PriorityLow, "General Administration", 1, "title is required"},
		{"empty description", "t", "", vo.CategoryOther, vo.PriorityLow, "General Administration", 1, "description is required"},
		{"invalid category", "t", "d", vo.Category("bogus"), vo.PriorityLow, "General Administration", 1, "invalid category"},
		{"invalid priority", "t", "d", vo.CategoryOther, vo.Priority("bogus"), "General Administration", 1, "invalid priority"},
		{"missing department", "t", "d", vo.CategoryOther, vo.PriorityLow, "", 1, "department is required"},
		{"missing citizen", "t", "d", vo.CategoryOther, vo.PriorityLow, "General Administration", 0, "citizen ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewComplaint(tt.title, tt.description, tt.category, tt.priority, tt.department, "", tt.citizenID)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestChangeStatus_Transitions(t *testing.T) {
	c := newTestComplaint(t)

	require.NoError(t, c.ChangeStatus(vo.StatusInProgress))
	assert.NotNil(t, c.InProgressAt())

	require.NoError(t, c.ChangeStatus(vo.StatusResolved))
	assert.NotNil(t, c.ResolvedAt())

	require.NoError(t, c.ChangeStatus(vo.StatusClosed))
	assert.NotNil(t, c.ClosedAt())

	// Closed is terminal.
	err := c.ChangeStatus(vo.StatusInProgress)
	assert.Error(t, err)
}

func TestChangeStatus_RejectsSkippingProgress(t *testing.T) {
	c := newTestComplaint(t)

	err := c.ChangeStatus(vo.StatusResolved)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot transition")
	assert.Equal(t, vo.StatusPending, c.Status())
}

func TestChangeStatus_FirstEntryTimestampsAreStable(t *testing.T) {
	c := newTestComplaint(t)

	require.NoError(t, c.ChangeStatus(vo.StatusInProgress))
	firstEntry := *c.InProgressAt()

	require.NoError(t, c.ChangeStatus(vo.StatusEscalated))
	require.NoError(t, c.ChangeStatus(vo.StatusInProgress))

	assert.Equal(t, firstEntry, *c.InProgressAt())
}

func TestAssignTo(t *testing.T) {
	c := newTestComplaint(t)

	require.NoError(t, c.AssignTo(55, "Electricity Board"))

	require.NotNil(t, c.AssigneeID())
	assert.Equal(t, uint(55), *c.AssigneeID())
	assert.NotNil(t, c.AssignedAt())
	assert.Equal(t, vo.StatusInProgress, c.Status())

	firstAssigned := *c.AssignedAt()
	require.NoError(t, c.AssignTo(77, ""))
	assert.Equal(t, uint(77), *c.AssigneeID())
	assert.Equal(t, firstAssigned, *c.AssignedAt())
}

func TestChangePriority_ReanchorsSLAWindow(t *testing.T) {
	c := newTestComplaint(t)

	before := time.Now().UTC()
	require.NoError(t, c.ChangePriority(vo.PriorityCritical))

	assert.Equal(t, vo.PriorityCritical, c.Priority())
	assert.Equal(t, 24.0, c.SLAAssignedHours())
	assert.WithinDuration(t, before.Add(24*time.Hour), c.SLADeadline(), time.Second)

	eval := c.SLAEvaluation(time.Now().UTC())
	assert.Equal(t, sla.StatusOnTrack, eval.Status)
}

func TestChangePriority_SamePriorityIsNoop(t *testing.T) {
	c := newTestComplaint(t)
	deadline := c.SLADeadline()
	version := c.Version()

	require.NoError(t, c.ChangePriority(vo.PriorityMedium))

	assert.Equal(t, deadline, c.SLADeadline())
	assert.Equal(t, version, c.Version())
}

func TestEscalate(t *testing.T) {
	c := newTestComplaint(t)

	require.NoError(t, c.Escalate())

	assert.Equal(t, vo.StatusEscalated, c.Status())
	assert.NotNil(t, c.EscalatedAt())
}

func TestRaiseTicket(t *testing.T) {
	c := newTestComplaint(t)

	require.NoError(t, c.RaiseTicket())

	assert.Equal(t, vo.PriorityHigh, c.Priority())
	assert.Equal(t, 72.0, c.SLAAssignedHours())
	assert.NotNil(t, c.EscalatedAt())
	// Raising a ticket does not move the lifecycle status.
	assert.Equal(t, vo.StatusPending, c.Status())
}

func TestRaiseTicket_KeepsCriticalPriority(t *testing.T) {
	c := newTestComplaint(t)
	require.NoError(t, c.ChangePriority(vo.PriorityCritical))
	deadline := c.SLADeadline()

	require.NoError(t, c.RaiseTicket())

	assert.Equal(t, vo.PriorityCritical, c.Priority())
	assert.Equal(t, deadline, c.SLADeadline())
}

func TestRaiseTicket_EscalatedAtSetOnce(t *testing.T) {
	c := newTestComplaint(t)

	require.NoError(t, c.RaiseTicket())
	first := *c.EscalatedAt()

	require.NoError(t, c.RaiseTicket())
	assert.Equal(t, first, *c.EscalatedAt())
}

func TestMarkSLAWarned(t *testing.T) {
	c := newTestComplaint(t)

	require.NoError(t, c.MarkSLAWarned())
	assert.NotNil(t, c.SLAWarnedAt())

	err := c.MarkSLAWarned()
	assert.Error(t, err)
}

func TestNeedsSLAWarning(t *testing.T) {
	c := newTestComplaint(t)

	// 168h window: the warning kicks in when 33.6h or less remain.
	farOut := c.SLADeadline().Add(-100 * time.Hour)
	assert.False(t, c.NeedsSLAWarning(farOut))

	closeIn := c.SLADeadline().Add(-10 * time.Hour)
	assert.True(t, c.NeedsSLAWarning(closeIn))

	require.NoError(t, c.MarkSLAWarned())
	assert.False(t, c.NeedsSLAWarning(closeIn))
}

func TestCanBeViewedBy(t *testing.T) {
	c := newTestComplaint(t)
	require.NoError(t, c.AssignTo(55, "Electricity Board"))

	tests := []struct {
		name   string
		viewer Viewer
		want   bool
	}{
		{"admin sees all", Viewer{UserID: 1, Role: authorization.RoleAdmin}, true},
		{"owning citizen", Viewer{UserID: 10, Role: authorization.RoleCitizen}, true},
		{"other citizen", Viewer{UserID: 11, Role: authorization.RoleCitizen}, false},
		{"official of department", Viewer{UserID: 99, Role: authorization.RoleOfficial, Department: "Electricity Board"}, true},
		{"official of other department", Viewer{UserID: 99, Role: authorization.RoleOfficial, Department: "Water Department"}, false},
		{"assigned official regardless of department", Viewer{UserID: 55, Role: authorization.RoleOfficial, Department: "Water Department"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.CanBeViewedBy(tt.viewer))
		})
	}
}

func TestFilterScopedTo(t *testing.T) {
	base := ComplaintFilter{Page: 1, PageSize: 20}

	admin := base.ScopedTo(Viewer{UserID: 1, Role: authorization.RoleAdmin})
	assert.Nil(t, admin.CitizenID)
	assert.Nil(t, admin.Department)

	official := base.ScopedTo(Viewer{UserID: 2, Role: authorization.RoleOfficial, Department: "Water Department"})
	require.NotNil(t, official.Department)
	assert.Equal(t, "Water Department", *official.Department)

	citizen := base.ScopedTo(Viewer{UserID: 3, Role: authorization.RoleCitizen})
	require.NotNil(t, citizen.CitizenID)
	assert.Equal(t, uint(3), *citizen.CitizenID)
}

func TestVersionTracking(t *testing.T) {
	now := time.Now().UTC()
	c, err := ReconstructComplaint(
		7,
		"JAN-777777",
		"Streetlight not working",
		"The streetlight outside house 42 has been off for a week",
		vo.CategoryElectric,
		"Electricity Board",
		vo.PriorityMedium,
		vo.StatusPending,
		"MG Road, Ward 7",
		10,
		nil,
		168,
		now.Add(168*time.Hour),
		"",
		nil, nil, nil, nil, nil, nil,
		now,
		3,
		now,
		now,
	)
	require.NoError(t, err)

	// Mutations bump the working version; the loaded version moves only when
	// the repository confirms a persist.
	assert.Equal(t, 3, c.LoadedVersion())

	require.NoError(t, c.ChangeStatus(vo.StatusInProgress))
	assert.Equal(t, 4, c.Version())
	assert.Equal(t, 3, c.LoadedVersion())

	c.SyncVersion()
	assert.Equal(t, 4, c.LoadedVersion())
}

func TestSetIDAndTrackingID_OnlyOnce(t *testing.T) {
	c := newTestComplaint(t)

	require.NoError(t, c.SetID(7))
	assert.Error(t, c.SetID(8))

	require.NoError(t, c.SetTrackingID("JAN-123456"))
	assert.Error(t, c.SetTrackingID("JAN-654321"))
}
