package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jannivaran/internal/domain/complaint"
	vo "jannivaran/internal/domain/complaint/valueobjects"
	"jannivaran/internal/domain/escalation"
	"jannivaran/internal/domain/user"
	"jannivaran/internal/shared/authorization"
	"jannivaran/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func staffViewer() complaint.Viewer {
	return complaint.Viewer{UserID: 55, Role: authorization.RoleOfficial, Department: "Sanitation Department"}
}

func storedComplaint(t *testing.T, id uint, status vo.ComplaintStatus, priority vo.Priority) *complaint.Complaint {
	t.Helper()

	createdAt := time.Now().UTC().Add(-2 * time.Hour)
	c, err := complaint.ReconstructComplaint(
		id,
		"JAN-123456",
		"Overflowing garbage bin",
		"The bin at the corner of MG Road has been overflowing",
		vo.CategorySanitation,
		"Sanitation Department",
		priority,
		status,
		"MG Road, Ward 7",
		10,
		nil,
		priority.GetSLAHours(),
		createdAt.Add(time.Duration(priority.GetSLAHours())*time.Hour),
		"",
		nil, nil, nil, nil, nil, nil,
		createdAt,
		1,
		createdAt,
		createdAt,
	)
	require.NoError(t, err)
	return c
}

func breachedComplaint(t *testing.T, id uint) *complaint.Complaint {
	t.Helper()

	now := time.Now().UTC()
	deadline := now.Add(-3 * time.Hour)
	createdAt := deadline.Add(-24 * time.Hour)
	c, err := complaint.ReconstructComplaint(
		id,
		"JAN-777777",
		"Burst water main",
		"A water main has burst and is flooding the lane",
		vo.CategoryWater,
		"Water Department",
		vo.PriorityCritical,
		vo.StatusInProgress,
		"Gandhi Chowk",
		10,
		nil,
		24,
		deadline,
		"",
		nil, nil, nil, nil, nil, nil,
		createdAt,
		1,
		createdAt,
		createdAt,
	)
	require.NoError(t, err)
	return c
}

func storedEscalation(t *testing.T, id, complaintID uint, resolved bool) *escalation.Escalation {
	t.Helper()

	esc, err := escalation.ReconstructEscalation(
		id,
		complaintID,
		"JAN-123456",
		escalation.ReasonManual,
		"Sanitation Department",
		escalation.DefaultAuthority,
		55,
		"",
		resolved,
		time.Now().UTC().Add(-time.Hour),
		nil,
	)
	require.NoError(t, err)
	return esc
}

func storedCitizen(t *testing.T, id uint) *user.User {
	t.Helper()

	now := time.Now().UTC()
	u, err := user.ReconstructUser(
		id,
		"Asha Patil",
		"asha@example.com",
		"$2a$10$hash",
		authorization.RoleCitizen,
		"",
		now,
		now,
	)
	require.NoError(t, err)
	return u
}
