package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/designertech992/stocks-forecast/internal/models"
)

const (
	MockUserID      = "mock-user-id"
	MockAccessToken = "mock-access-token"
	mockSessionTTL  = 3600
)

// MockAuthProvider accepts any credentials and returns a fixed test user.
type MockAuthProvider struct {
	now    func() time.Time
	logger *zap.Logger
}

func NewMockAuthProvider(now func() time.Time, logger *zap.Logger) *MockAuthProvider {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MockAuthProvider{now: now, logger: logger}
}

func (p *MockAuthProvider) session() *models.Session {
	return &models.Session{
		AccessToken:  MockAccessToken,
		RefreshToken: "mock-refresh-token",
		TokenType:    "bearer",
		ExpiresIn:    mockSessionTTL,
		ExpiresAt:    p.now().UTC().Add(mockSessionTTL * time.Second).Truncate(time.Second),
		User: &models.User{
			ID:    MockUserID,
			Email: "test@example.com",
			UserMetadata: map[string]interface{}{
				"full_name":  "Test User",
				"avatar_url": "https://ui-avatars.com/api/?name=Test+User&background=random",
			},
		},
	}
}

func (p *MockAuthProvider) SignIn(_ context.Context, creds models.Credentials) (*models.Session, error) {
	p.logger.Debug("mock sign in", zap.String("email", creds.Email))
	return p.session(), nil
}

func (p *MockAuthProvider) SignUp(_ context.Context, creds models.Credentials) (*models.Session, error) {
	p.logger.Debug("mock sign up", zap.String("email", creds.Email))
	return p.session(), nil
}

func (p *MockAuthProvider) SignInWithOAuth(_ context.Context, provider, redirectTo string) (string, error) {
	p.logger.Debug("mock oauth sign in", zap.String("provider", provider))
	if redirectTo == "" {
		return "/dashboard", nil
	}
	return redirectTo, nil
}

func (p *MockAuthProvider) SignOut(_ context.Context, _ string) error {
	p.logger.Debug("mock sign out")
	return nil
}

func (p *MockAuthProvider) GetSession(_ context.Context, _ string) (*models.Session, error) {
	return p.session(), nil
}
