package cli

import (
	"context"
	"os"

	"github.com/asalykin/certprep/internal/client/api"
	"github.com/asalykin/certprep/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, exchanges them for a bearer token and
// hands the token to the session store, which persists it, announces the
// result and routes to the question view.
//
// On a failed exchange the session is left untouched; the user stays where
// they were and can simply retry.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	var token string
	err = a.withBusy(func() error {
		var e error
		token, e = a.api.Login(ctx, userName, password)
		return e
	})
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		a.notify.Error("Login failed. Please check your credentials.")
		return err
	}

	return a.session.Login(token)
}

// Logout discards the stored token via the session store. Purely local:
// the server is not told.
func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout()
}

// Register walks the user through account creation: name, email, a password
// that passes the strength rules, and a plan choice. For the free plan the
// server answers with a plain acknowledgement; for a paid plan it opens a
// checkout session, which Register hands to the hosted payment flow.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	var password string
	for {
		password, err = getPassword(os.Stdout)
		if err != nil {
			return err
		}
		msg, ok := PasswordStrength(password)
		if ok {
			break
		}
		a.notify.Error(msg)
	}

	idx, err := GetSelection(a.reader, "Choose a plan", planOptions(), planOption(a.preselectedPlan), os.Stdout)
	if err != nil {
		return err
	}
	plan := models.Plans[idx].ID

	var checkoutSession string
	err = a.withBusy(func() error {
		var e error
		checkoutSession, e = a.api.Register(ctx, api.Registration{
			Name:     name,
			Email:    email,
			Password: password,
			Plan:     plan,
		})
		return e
	})
	if err != nil {
		a.handleAPIError(ctx, err, "Registration failed. Please try again.")
		return err
	}

	if checkoutSession != "" {
		a.notify.Info("Your account was created. Complete the payment to activate the premium plan.")
		a.openCheckout(checkoutSession)
		return nil
	}

	a.notify.Success("Registration successful! Please check your inbox for a verification email.")
	return nil
}
