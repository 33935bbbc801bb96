package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/asalykin/certprep/internal/client/models"
	"github.com/asalykin/certprep/internal/logging"
)

// TokenSource returns the current bearer token, or "" when logged out.
// It is a function, not a value, so the gateway always sees the token the
// session store holds right now.
type TokenSource func() string

// HTTPClient is the Client implementation over plain HTTP+JSON.
//
// Requests carry no timeout beyond the caller's context and are never
// retried: every failure is terminal for that user action.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	token   TokenSource
	log     logging.Logger
}

// NewHTTPClient constructs a gateway bound to baseURL. The trailing slash,
// if any, is trimmed so paths can be joined naively.
func NewHTTPClient(baseURL string, token TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		token:   token,
		log:     log,
	}
}

var _ Client = (*HTTPClient)(nil)

// do executes one request and maps the response status onto the error
// taxonomy. On success the caller receives the raw body and must interpret
// it (JSON or the literal-text responses of the registration and
// checkout-session endpoints).
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, authed bool) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token())
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	msg := serverMessage(raw)
	c.log.Warn(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode, "message", msg)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusUnprocessableEntity && msg == quotaExceededMessage:
		// Brittle on purpose: the server signals the quota case only
		// through this message text.
		return nil, ErrQuotaExceeded
	default:
		return nil, &StatusError{Code: resp.StatusCode, Message: msg}
	}
}

// serverMessage extracts the "message" field most error bodies carry.
func serverMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, false)
	if err != nil {
		return "", err
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	return resp.AccessToken, nil
}

// Register creates the account. A 2xx body that is not the literal "Ok"
// is a checkout-session handle: payment is still pending and the caller
// must open the hosted checkout with it.
func (c *HTTPClient) Register(ctx context.Context, r Registration) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "/users", r, false)
	if err != nil {
		return "", err
	}
	body := strings.TrimSpace(string(raw))
	if body == "" || body == "Ok" {
		return "", nil
	}
	return body, nil
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/reset-password", map[string]string{"email": email}, false)
	return err
}

func (c *HTTPClient) SetNewPassword(ctx context.Context, resetToken, newPassword string) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/set-new-password", map[string]string{
		"newPassword": newPassword,
		"token":       resetToken,
	}, false)
	return err
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, code string) error {
	_, err := c.do(ctx, http.MethodGet, "/users/verification/"+code, nil, false)
	return err
}

func (c *HTTPClient) UserInfo(ctx context.Context) (*models.PlanInfo, error) {
	raw, err := c.do(ctx, http.MethodGet, "/users", nil, true)
	if err != nil {
		return nil, err
	}
	var info models.PlanInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	return &info, nil
}

func (c *HTTPClient) CancelSubscription(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/users/subscription", nil, true)
	return err
}

func (c *HTTPClient) GenerateQuestion(ctx context.Context, exams []string) (*models.Question, error) {
	raw, err := c.do(ctx, http.MethodPost, "/question", map[string][]string{"exams": exams}, true)
	if err != nil {
		return nil, err
	}
	var q models.Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("decode question: %w", err)
	}
	return &q, nil
}

func (c *HTTPClient) SubmitAnswer(ctx context.Context, questionID int, chosen []string) error {
	_, err := c.do(ctx, http.MethodPost, "/question/answer", map[string]any{
		"questionNumber": questionID,
		"chosenOptions":  chosen,
	}, true)
	return err
}

func (c *HTTPClient) Performance(ctx context.Context) (*models.Performance, error) {
	raw, err := c.do(ctx, http.MethodGet, "/users/performance", nil, true)
	if err != nil {
		return nil, err
	}
	var p models.Performance
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode performance: %w", err)
	}
	return &p, nil
}

// CreateCheckoutSession asks for a new hosted-checkout session for the given
// plan and returns the provider's client secret as plain text.
func (c *HTTPClient) CreateCheckoutSession(ctx context.Context, plan string) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "/checkout-session", map[string]string{"plan": plan}, true)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// CheckoutSessionStatus performs the single one-shot status check after a
// hosted redirect. No polling, no timeout.
func (c *HTTPClient) CheckoutSessionStatus(ctx context.Context, sessionID string) (string, error) {
	raw, err := c.do(ctx, http.MethodGet, "/checkout-session/"+sessionID, nil, false)
	if err != nil {
		return "", err
	}
	var resp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode checkout status: %w", err)
	}
	return resp.Status, nil
}
