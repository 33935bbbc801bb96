package cli

import (
	"context"
	"os"
)

// ResetPassword asks for the account email and requests a reset link.
// The server answers 200 regardless of whether the email exists, so the
// confirmation is unconditional.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	err = a.withBusy(func() error {
		return a.api.RequestPasswordReset(ctx, email)
	})
	if err != nil {
		a.handleAPIError(ctx, err, "Could not request a password reset. Please try again.")
		return err
	}

	a.notify.Success("If the email is registered, a reset link has been sent.")
	return nil
}

// SetNewPassword completes a reset: it takes the token from the reset email
// and a new password that passes the strength rules.
func (a *App) SetNewPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
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

	err = a.withBusy(func() error {
		return a.api.SetNewPassword(ctx, token, password)
	})
	if err != nil {
		a.handleAPIError(ctx, err, "Could not set the new password. The reset link may have expired.")
		return err
	}

	a.notify.Success("Password updated. You can now log in.")
	return nil
}

// VerifyEmail submits the verification code from the signup email.
func (a *App) VerifyEmail(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Enter verification code", os.Stdout)
	if err != nil {
		return err
	}

	err = a.withBusy(func() error {
		return a.api.VerifyEmail(ctx, code)
	})
	if err != nil {
		a.handleAPIError(ctx, err, "Verification failed. The code may be invalid or already used.")
		return err
	}

	a.notify.Success("Email verified. You can now log in.")
	return nil
}
