package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	apperrors "github.com/designertech992/stocks-forecast/internal/errors"
	"github.com/designertech992/stocks-forecast/internal/models"
)

// SupabaseAuthProvider talks to the Supabase GoTrue REST endpoints.
type SupabaseAuthProvider struct {
	client  *resty.Client
	baseURL string
	now     func() time.Time
	logger  *zap.Logger
}

func NewSupabaseAuthProvider(baseURL, anonKey string, timeout time.Duration, logger *zap.Logger) *SupabaseAuthProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL = strings.TrimRight(baseURL, "/")

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("apikey", anonKey)
	client.SetHeader("Content-Type", "application/json")

	return &SupabaseAuthProvider{client: client, baseURL: baseURL, now: time.Now, logger: logger}
}

type goTrueSession struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	ExpiresAt    int64        `json:"expires_at"`
	User         *models.User `json:"user"`
}

type goTrueError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e goTrueError) text() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

func (p *SupabaseAuthProvider) SignIn(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(creds).
		Post("/auth/v1/token")
	if err != nil {
		return nil, fmt.Errorf("%w: supabase sign in: %v", apperrors.ErrUpstream, err)
	}
	if err := p.checkResponse("sign in", resp); err != nil {
		return nil, err
	}
	return p.decodeSession(resp.Body())
}

func (p *SupabaseAuthProvider) SignUp(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post("/auth/v1/signup")
	if err != nil {
		return nil, fmt.Errorf("%w: supabase sign up: %v", apperrors.ErrUpstream, err)
	}
	if err := p.checkResponse("sign up", resp); err != nil {
		return nil, err
	}

	session, err := p.decodeSession(resp.Body())
	if err != nil {
		return nil, err
	}
	if session.User == nil {
		// With email confirmation enabled the body is the bare user.
		var user models.User
		if err := json.Unmarshal(resp.Body(), &user); err != nil {
			return nil, fmt.Errorf("%w: supabase sign up: %v", apperrors.ErrParse, err)
		}
		session.User = &user
	}
	return session, nil
}

// SignInWithOAuth builds the GoTrue authorize URL; no request is made.
func (p *SupabaseAuthProvider) SignInWithOAuth(_ context.Context, provider, redirectTo string) (string, error) {
	if strings.TrimSpace(provider) == "" {
		return "", apperrors.NewValidation("provider", "is required")
	}
	q := url.Values{}
	q.Set("provider", provider)
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	return p.baseURL + "/auth/v1/authorize?" + q.Encode(), nil
}

func (p *SupabaseAuthProvider) SignOut(ctx context.Context, accessToken string) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Post("/auth/v1/logout")
	if err != nil {
		return fmt.Errorf("%w: supabase sign out: %v", apperrors.ErrUpstream, err)
	}
	return p.checkResponse("sign out", resp)
}

func (p *SupabaseAuthProvider) GetSession(ctx context.Context, accessToken string) (*models.Session, error) {
	if accessToken == "" {
		return nil, nil
	}
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Get("/auth/v1/user")
	if err != nil {
		return nil, fmt.Errorf("%w: supabase get user: %v", apperrors.ErrUpstream, err)
	}
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return nil, nil
	}
	if err := p.checkResponse("get user", resp); err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, fmt.Errorf("%w: supabase get user: %v", apperrors.ErrParse, err)
	}
	return &models.Session{AccessToken: accessToken, TokenType: "bearer", User: &user}, nil
}

func (p *SupabaseAuthProvider) checkResponse(op string, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	var body goTrueError
	_ = json.Unmarshal(resp.Body(), &body)
	msg := body.text()
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	p.logger.Warn("supabase request failed", zap.String("op", op), zap.Int("status", resp.StatusCode()), zap.String("message", msg))

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusUnprocessableEntity:
		return apperrors.NewValidation("credentials", msg)
	}
	return fmt.Errorf("%w: supabase %s returned %d: %s", apperrors.ErrUpstream, op, resp.StatusCode(), msg)
}

func (p *SupabaseAuthProvider) decodeSession(body []byte) (*models.Session, error) {
	var s goTrueSession
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("%w: supabase session: %v", apperrors.ErrParse, err)
	}
	session := &models.Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
		User:         s.User,
	}
	switch {
	case s.ExpiresAt > 0:
		session.ExpiresAt = time.Unix(s.ExpiresAt, 0).UTC()
	case s.ExpiresIn > 0:
		session.ExpiresAt = p.now().UTC().Add(time.Duration(s.ExpiresIn) * time.Second)
	}
	return session, nil
}
