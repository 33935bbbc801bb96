// Package api is the gateway to the remote exam-practice REST API.
// It owns the wire contract only: endpoints, bearer-token attachment, and
// the mapping of HTTP failures onto the client's error taxonomy. Anything
// user-facing (notifications, redirects) is the caller's concern.
package api

import (
	"context"

	"github.com/asalykin/certprep/internal/client/models"
)

// Registration is the input of POST /users.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Plan     string `json:"plan"`
}

// Client defines every remote operation the views perform.
//
// Contract:
//   - Login: exchange credentials for a bearer token.
//   - Register: create an account; a non-empty returned handle means the
//     chosen plan requires payment and a checkout session was opened.
//   - RequestPasswordReset / SetNewPassword / VerifyEmail: account recovery.
//   - UserInfo / CancelSubscription: plan management.
//   - GenerateQuestion / SubmitAnswer / Performance: the practice loop.
//   - CreateCheckoutSession / CheckoutSessionStatus: hosted payment flow.
//
// All methods honor context cancellation. None of them retry.
type Client interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, r Registration) (checkoutSession string, err error)
	RequestPasswordReset(ctx context.Context, email string) error
	SetNewPassword(ctx context.Context, resetToken, newPassword string) error
	VerifyEmail(ctx context.Context, code string) error
	UserInfo(ctx context.Context) (*models.PlanInfo, error)
	CancelSubscription(ctx context.Context) error
	GenerateQuestion(ctx context.Context, exams []string) (*models.Question, error)
	SubmitAnswer(ctx context.Context, questionID int, chosen []string) error
	Performance(ctx context.Context) (*models.Performance, error)
	CreateCheckoutSession(ctx context.Context, plan string) (clientSecret string, err error)
	CheckoutSessionStatus(ctx context.Context, sessionID string) (string, error)
}

// Checkout session states returned by CheckoutSessionStatus.
const (
	CheckoutComplete = "complete"
	CheckoutOpen     = "open"
)
