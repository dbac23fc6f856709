package usecases

import (
	"context"
	"time"

	"jannivaran/internal/domain/audit"
	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/domain/escalation"
	"jannivaran/internal/domain/user"
)

type MockComplaintRepository struct {
	SaveFunc                   func(ctx context.Context, c *complaint.Complaint) error
	UpdateFunc                 func(ctx context.Context, c *complaint.Complaint) error
	MarkSLAWarnedFunc          func(ctx context.Context, complaintID uint, warnedAt time.Time) error
	DeleteFunc                 func(ctx context.Context, complaintID uint) error
	GetByIDFunc                func(ctx context.Context, complaintID uint) (*complaint.Complaint, error)
	GetByTrackingIDFunc        func(ctx context.Context, trackingID string) (*complaint.Complaint, error)
	ListFunc                   func(ctx context.Context, filter complaint.ComplaintFilter) ([]*complaint.Complaint, int64, error)
	GetActiveFunc              func(ctx context.Context) ([]*complaint.Complaint, error)
	CountByStatusFunc          func(ctx context.Context) (map[string]int64, error)
	CountByDepartmentFunc      func(ctx context.Context) (map[string]int64, error)
	AverageResolutionHoursFunc func(ctx context.Context) (float64, error)
	CountResolvedWithinSLAFunc func(ctx context.Context) (int64, int64, error)
}

func (m *MockComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *MockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *MockComplaintRepository) MarkSLAWarned(ctx context.Context, complaintID uint, warnedAt time.Time) error {
	if m.MarkSLAWarnedFunc != nil {
		return m.MarkSLAWarnedFunc(ctx, complaintID, warnedAt)
	}
	return nil
}

func (m *MockComplaintRepository) Delete(ctx context.Context, complaintID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, complaintID)
	}
	return nil
}

func (m *MockComplaintRepository) GetByID(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *MockComplaintRepository) GetByTrackingID(ctx context.Context, trackingID string) (*complaint.Complaint, error) {
	if m.GetByTrackingIDFunc != nil {
		return m.GetByTrackingIDFunc(ctx, trackingID)
	}
	return nil, nil
}

func (m *MockComplaintRepository) List(ctx context.Context, filter complaint.ComplaintFilter) ([]*complaint.Complaint, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *MockComplaintRepository) GetActive(ctx context.Context) ([]*complaint.Complaint, error) {
	if m.GetActiveFunc != nil {
		return m.GetActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockComplaintRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[string]int64{}, nil
}

func (m *MockComplaintRepository) CountByDepartment(ctx context.Context) (map[string]int64, error) {
	if m.CountByDepartmentFunc != nil {
		return m.CountByDepartmentFunc(ctx)
	}
	return map[string]int64{}, nil
}

func (m *MockComplaintRepository) AverageResolutionHours(ctx context.Context) (float64, error) {
	if m.AverageResolutionHoursFunc != nil {
		return m.AverageResolutionHoursFunc(ctx)
	}
	return 0, nil
}

func (m *MockComplaintRepository) CountResolvedWithinSLA(ctx context.Context) (int64, int64, error) {
	if m.CountResolvedWithinSLAFunc != nil {
		return m.CountResolvedWithinSLAFunc(ctx)
	}
	return 0, 0, nil
}

type MockEscalationRepository struct {
	SaveFunc                       func(ctx context.Context, esc *escalation.Escalation) error
	UpdateFunc                     func(ctx context.Context, esc *escalation.Escalation) error
	GetByIDFunc                    func(ctx context.Context, escalationID uint) (*escalation.Escalation, error)
	GetByComplaintIDFunc           func(ctx context.Context, complaintID uint) ([]*escalation.Escalation, error)
	GetUnresolvedByComplaintIDFunc func(ctx context.Context, complaintID uint) (*escalation.Escalation, error)
	ListUnresolvedFunc             func(ctx context.Context, page, pageSize int) ([]*escalation.Escalation, int64, error)
}

func (m *MockEscalationRepository) Save(ctx context.Context, esc *escalation.Escalation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, esc)
	}
	return nil
}

func (m *MockEscalationRepository) Update(ctx context.Context, esc *escalation.Escalation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, esc)
	}
	return nil
}

func (m *MockEscalationRepository) GetByID(ctx context.Context, escalationID uint) (*escalation.Escalation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, escalationID)
	}
	return nil, nil
}

func (m *MockEscalationRepository) GetByComplaintID(ctx context.Context, complaintID uint) ([]*escalation.Escalation, error) {
	if m.GetByComplaintIDFunc != nil {
		return m.GetByComplaintIDFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *MockEscalationRepository) GetUnresolvedByComplaintID(ctx context.Context, complaintID uint) (*escalation.Escalation, error) {
	if m.GetUnresolvedByComplaintIDFunc != nil {
		return m.GetUnresolvedByComplaintIDFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *MockEscalationRepository) ListUnresolved(ctx context.Context, page, pageSize int) ([]*escalation.Escalation, int64, error) {
	if m.ListUnresolvedFunc != nil {
		return m.ListUnresolvedFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

type MockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *MockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

type MockAuditRepository struct {
	SaveFunc             func(ctx context.Context, entry *audit.Entry) error
	GetByComplaintIDFunc func(ctx context.Context, complaintID uint) ([]*audit.Entry, error)
}

func (m *MockAuditRepository) Save(ctx context.Context, entry *audit.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

func (m *MockAuditRepository) GetByComplaintID(ctx context.Context, complaintID uint) ([]*audit.Entry, error) {
	if m.GetByComplaintIDFunc != nil {
		return m.GetByComplaintIDFunc(ctx, complaintID)
	}
	return nil, nil
}

type MockNotificationService struct {
	SendWelcomeFunc            func(ctx context.Context, email, name string) error
	SendComplaintSubmittedFunc func(ctx context.Context, email string, event complaint.ComplaintFiledEvent) error
	SendComplaintRoutedFunc    func(ctx context.Context, email string, event complaint.ComplaintFiledEvent) error
	SendStatusChangedFunc      func(ctx context.Context, email string, event complaint.ComplaintStatusChangedEvent, noteHTML string) error
	SendSLAWarningFunc         func(ctx context.Context, email string, event complaint.SLAWarningEvent) error
	SendSLABreachFunc          func(ctx context.Context, email string, event complaint.SLABreachedEvent) error
}

func (m *MockNotificationService) SendWelcome(ctx context.Context, email, name string) error {
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(ctx, email, name)
	}
	return nil
}

func (m *MockNotificationService) SendComplaintSubmitted(ctx context.Context, email string, event complaint.ComplaintFiledEvent) error {
	if m.SendComplaintSubmittedFunc != nil {
		return m.SendComplaintSubmittedFunc(ctx, email, event)
	}
	return nil
}

func (m *MockNotificationService) SendComplaintRouted(ctx context.Context, email string, event complaint.ComplaintFiledEvent) error {
	if m.SendComplaintRoutedFunc != nil {
		return m.SendComplaintRoutedFunc(ctx, email, event)
	}
	return nil
}

func (m *MockNotificationService) SendStatusChanged(ctx context.Context, email string, event complaint.ComplaintStatusChangedEvent, noteHTML string) error {
	if m.SendStatusChangedFunc != nil {
		return m.SendStatusChangedFunc(ctx, email, event, noteHTML)
	}
	return nil
}

func (m *MockNotificationService) SendSLAWarning(ctx context.Context, email string, event complaint.SLAWarningEvent) error {
	if m.SendSLAWarningFunc != nil {
		return m.SendSLAWarningFunc(ctx, email, event)
	}
	return nil
}

func (m *MockNotificationService) SendSLABreach(ctx context.Context, email string, event complaint.SLABreachedEvent) error {
	if m.SendSLABreachFunc != nil {
		return m.SendSLABreachFunc(ctx, email, event)
	}
	return nil
}
