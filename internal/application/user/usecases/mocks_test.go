package usecases

import (
	"context"

	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/domain/user"
	"jannivaran/internal/shared/authorization"
)

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

type MockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *MockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type MockJWTService struct {
	GenerateFunc func(userID uint, role authorization.UserRole, department string) (*TokenPair, error)
	RefreshFunc  func(refreshToken string) (*TokenPair, error)
}

func (m *MockJWTService) Generate(userID uint, role authorization.UserRole, department string) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role, department)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *MockJWTService) Refresh(refreshToken string) (*TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(refreshToken)
	}
	return &TokenPair{AccessToken: "access2", RefreshToken: "refresh2", ExpiresIn: 900}, nil
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
