package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

// Error labels used by the backend inside its error envelope. The label, not
// the HTTP status code alone, distinguishes the expected pending-activation
// soft failure and the transitional client registration refusals.
const (
	labelPendingActivation = "pending-activation"
	labelMissingAuth       = "missing-auth"
	labelTooManyClients    = "too-many-clients"
	labelInvalidCreds      = "invalid-credentials"
)

// errorEnvelope is the backend's structured error payload.
type errorEnvelope struct {
	Code    int    `json:"code"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

type httpBackendAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu        sync.RWMutex
	token     models.Token
	cookie    string
	invalidCb func()
}

// NewHTTPBackendAdapter constructs a [BackendAdapter] speaking HTTP/REST
// against cfg.BaseURL with cfg.RequestTimeout per request.
func NewHTTPBackendAdapter(cfg config.ClientAdapter, log *logger.Logger) BackendAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpBackendAdapter{client: cli, logger: log}
}

func (h *httpBackendAdapter) SetToken(token models.Token) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = models.Token(strings.TrimSpace(token.String()))
}

func (h *httpBackendAdapter) Token() models.Token {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBackendAdapter) SetCookie(cookie string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cookie = strings.TrimSpace(cookie)
}

func (h *httpBackendAdapter) OnInvalidCredentials(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.invalidCb = fn
}

func (h *httpBackendAdapter) Login(ctx context.Context, accountID string, creds models.Credentials) (models.LoginResult, error) {
	body := struct {
		AccountID string `json:"account_id"`
		models.Credentials
	}{AccountID: accountID, Credentials: creds}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if cookie := h.currentCookie(); cookie != "" {
		req.SetHeader("Cookie", "zid="+cookie)
	}

	resp, err := req.Post("/api/auth/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	var result models.LoginResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.LoginResult{}, fmt.Errorf("decode login response: %w", err)
	}
	if result.Token.Empty() {
		return models.LoginResult{}, errors.New("login response carries no token")
	}

	h.SetToken(result.Token)
	if result.Cookie != "" {
		h.SetCookie(result.Cookie)
	}

	return result, nil
}

func (h *httpBackendAdapter) LoadSelfProfile(ctx context.Context) (models.SelfProfileResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/self")
	if err != nil {
		return models.SelfProfileResponse{}, fmt.Errorf("load self profile request: %w", err)
	}
	if err = h.mapAuthedError(resp); err != nil {
		return models.SelfProfileResponse{}, err
	}

	var profile models.SelfProfileResponse
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.SelfProfileResponse{}, fmt.Errorf("decode self profile response: %w", err)
	}

	return profile, nil
}

func (h *httpBackendAdapter) FindSelfTeam(ctx context.Context) (models.TeamResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/self/team")
	if err != nil {
		return models.TeamResponse{}, fmt.Errorf("find self team request: %w", err)
	}
	// A user without a team is a regular outcome, reported as 404 by the
	// backend.
	if resp.StatusCode() == http.StatusNotFound {
		return models.TeamResponse{HasTeam: false}, nil
	}
	if err = h.mapAuthedError(resp); err != nil {
		return models.TeamResponse{}, err
	}

	var team models.TeamResponse
	if err = json.Unmarshal(resp.Body(), &team); err != nil {
		return models.TeamResponse{}, fmt.Errorf("decode self team response: %w", err)
	}

	return team, nil
}

func (h *httpBackendAdapter) GetPermissions(ctx context.Context, teamID, userID string) (models.PermissionsResponse, error) {
	resp, err := h.authedRequest(ctx).
		Get(fmt.Sprintf("/api/teams/%s/members/%s/permissions", teamID, userID))
	if err != nil {
		return models.PermissionsResponse{}, fmt.Errorf("get permissions request: %w", err)
	}
	if err = h.mapAuthedError(resp); err != nil {
		return models.PermissionsResponse{}, err
	}

	var perms models.PermissionsResponse
	if err = json.Unmarshal(resp.Body(), &perms); err != nil {
		return models.PermissionsResponse{}, fmt.Errorf("decode permissions response: %w", err)
	}

	return perms, nil
}

func (h *httpBackendAdapter) RegisterClient(ctx context.Context, req models.ClientRegistrationRequest) (models.ClientRegistrationResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/clients")
	if err != nil {
		return models.ClientRegistrationResult{}, fmt.Errorf("register client request: %w", err)
	}

	// The transitional refusals come back as 403 with a recognised label;
	// they are states the caller persists, not errors.
	if resp.StatusCode() == http.StatusForbidden {
		switch decodeEnvelope(resp).Label {
		case labelMissingAuth:
			return models.ClientRegistrationResult{State: models.ClientStatePasswordMissing}, nil
		case labelTooManyClients:
			return models.ClientRegistrationResult{State: models.ClientStateLimitReached}, nil
		}
	}
	if err = h.mapAuthedError(resp); err != nil {
		return models.ClientRegistrationResult{}, err
	}

	var client models.DeviceClient
	if err = json.Unmarshal(resp.Body(), &client); err != nil {
		return models.ClientRegistrationResult{}, fmt.Errorf("decode register client response: %w", err)
	}

	return models.ClientRegistrationResult{
		State:  models.ClientStateRegistered,
		Client: &client,
	}, nil
}

func (h *httpBackendAdapter) RegisterSignalingKey(ctx context.Context, clientID string) (string, error) {
	resp, err := h.authedRequest(ctx).
		Put(fmt.Sprintf("/api/clients/%s/signaling-key", clientID))
	if err != nil {
		return "", fmt.Errorf("register signaling key request: %w", err)
	}
	if err = h.mapAuthedError(resp); err != nil {
		return "", err
	}

	var body struct {
		SignalingKey string `json:"signaling_key"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode signaling key response: %w", err)
	}

	return body.SignalingKey, nil
}

func (h *httpBackendAdapter) PutEmail(ctx context.Context, email string) error {
	return h.putSelfField(ctx, "/api/self/email", map[string]string{"email": email})
}

func (h *httpBackendAdapter) DeleteEmail(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/self/email")
	if err != nil {
		return fmt.Errorf("delete email request: %w", err)
	}
	return h.mapAuthedError(resp)
}

func (h *httpBackendAdapter) PutPhone(ctx context.Context, phone string) error {
	return h.putSelfField(ctx, "/api/self/phone", map[string]string{"phone": phone})
}

func (h *httpBackendAdapter) DeletePhone(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/self/phone")
	if err != nil {
		return fmt.Errorf("delete phone request: %w", err)
	}
	return h.mapAuthedError(resp)
}

func (h *httpBackendAdapter) PutPassword(ctx context.Context, oldPassword, newPassword string) error {
	return h.putSelfField(ctx, "/api/self/password", map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	})
}

func (h *httpBackendAdapter) PutHandle(ctx context.Context, handle string) error {
	return h.putSelfField(ctx, "/api/self/handle", map[string]string{"handle": handle})
}

func (h *httpBackendAdapter) putSelfField(ctx context.Context, path string, body any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(path)
	if err != nil {
		return fmt.Errorf("put %s request: %w", path, err)
	}
	return h.mapAuthedError(resp)
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); !token.Empty() {
		req.SetHeader("Authorization", "Bearer "+token.String())
	}
	return req
}

func (h *httpBackendAdapter) currentCookie() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cookie
}

// mapAuthedError maps the response error like mapHTTPError, additionally
// firing the invalid-credentials callback when an authenticated request came
// back 401.
func (h *httpBackendAdapter) mapAuthedError(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if errors.Is(err, ErrUnauthorized) {
		h.mu.RLock()
		cb := h.invalidCb
		h.mu.RUnlock()
		if cb != nil {
			cb()
		}
	}
	return err
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	env := decodeEnvelope(resp)

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		switch env.Label {
		case labelPendingActivation:
			return ErrPendingActivation
		case labelInvalidCreds:
			return ErrUnauthorized
		}
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}

	msg := env.Message
	if msg == "" {
		msg = strings.TrimSpace(string(resp.Body()))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
}

func decodeEnvelope(resp *resty.Response) errorEnvelope {
	var env errorEnvelope
	_ = json.Unmarshal(resp.Body(), &env)
	return env
}
