package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jannivaran/internal/domain/complaint"
	vo "jannivaran/internal/domain/complaint/valueobjects"
	"jannivaran/internal/domain/user"
	"jannivaran/internal/shared/authorization"
	"jannivaran/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLogger()
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

func storedOfficial(t *testing.T, id uint, department string) *user.User {
	t.Helper()

	now := time.Now().UTC()
	u, err := user.ReconstructUser(
		id,
		"Vikram Joshi",
		"vikram@jannivaran.gov.in",
		"$2a$10$hash",
		authorization.RoleOfficial,
		department,
		now,
		now,
	)
	require.NoError(t, err)
	return u
}
