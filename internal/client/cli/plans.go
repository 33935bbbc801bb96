package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/asalykin/certprep/internal/client/models"
)

// planOptions renders the catalog entries for interactive selection.
func planOptions() []string {
	options := make([]string, len(models.Plans))
	for i, p := range models.Plans {
		options[i] = fmt.Sprintf("%s (%s, %s)", p.Name, p.Price, p.Features)
	}
	return options
}

// planOption returns the selection label of the plan with the given id,
// or "" when the id names no plan.
func planOption(id string) string {
	for i, p := range models.Plans {
		if p.ID == id {
			return planOptions()[i]
		}
	}
	return ""
}

// Plans shows the plan catalog. Logged out it offers to pick a plan, which
// registration then preselects; logged in it fetches the current
// subscription state and, on the free plan, offers the premium upgrade.
func (a *App) Plans(ctx context.Context) error {
	fmt.Fprintln(a.out, headingStyle.Render("Plans"))
	for _, p := range models.Plans {
		fmt.Fprintf(a.out, "  %s — %s — %s\n", p.Name, p.Price, p.Features)
	}

	if !a.isLoggedIn() {
		pick, err := GetConfirm(a.reader, "Pick a plan and register?", os.Stdout)
		if err != nil {
			return err
		}
		if !pick {
			fmt.Fprintln(a.out, faintStyle.Render("Log in to see your current plan."))
			return nil
		}
		idx, err := GetSelection(a.reader, "Choose a plan", planOptions(), "", os.Stdout)
		if err != nil {
			return err
		}
		a.preselectedPlan = models.Plans[idx].ID
		a.notify.Info("Plan saved. Run 'register' to create your account.")
		return nil
	}

	info, err := a.fetchUserInfo(ctx)
	if err != nil {
		return err
	}
	a.printSubscription(info)

	if info.Plan == models.PlanFree {
		upgrade, err := GetConfirm(a.reader, "Upgrade to the premium plan?", os.Stdout)
		if err != nil {
			return err
		}
		if upgrade {
			return a.Upgrade(ctx)
		}
	}
	return nil
}

// Upgrade opens a checkout session for the premium plan and hands it to the
// hosted payment flow. The plan does not change until the payment completes
// server-side; a later 'plans' call reflects the new state.
func (a *App) Upgrade(ctx context.Context) error {
	var secret string
	err := a.withBusy(func() error {
		var e error
		secret, e = a.api.CreateCheckoutSession(ctx, models.PlanPremium)
		return e
	})
	if err != nil {
		a.handleAPIError(ctx, err, "Could not start the upgrade. Please try again.")
		return err
	}
	a.openCheckout(secret)
	return nil
}

// CancelSubscription cancels the premium subscription after an explicit
// confirmation, then re-fetches the subscription state so the cancelled
// flag and period end come from the server rather than a local guess.
// Already-cancelled and free plans have nothing to cancel.
func (a *App) CancelSubscription(ctx context.Context) error {
	current, err := a.fetchUserInfo(ctx)
	if err != nil {
		return err
	}
	if current.Plan != models.PlanPremium {
		a.notify.Info("You are on the free plan; there is nothing to cancel.")
		return nil
	}
	if current.Cancelled {
		a.notify.Info("Your subscription is already cancelled.")
		return nil
	}

	confirmed, err := GetConfirm(a.reader, "Cancel your subscription?", os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	err = a.withBusy(func() error {
		return a.api.CancelSubscription(ctx)
	})
	if err != nil {
		a.handleAPIError(ctx, err, "Could not cancel the subscription. Please try again.")
		return err
	}

	a.notify.Success("Your subscription has been cancelled. You will have access until the end of the current billing cycle.")

	info, err := a.fetchUserInfo(ctx)
	if err != nil {
		return err
	}
	a.printSubscription(info)
	return nil
}

func (a *App) fetchUserInfo(ctx context.Context) (*models.PlanInfo, error) {
	var info *models.PlanInfo
	err := a.withBusy(func() error {
		var e error
		info, e = a.api.UserInfo(ctx)
		return e
	})
	if err != nil {
		a.handleAPIError(ctx, err, "Could not load your subscription details.")
		return nil, err
	}
	return info, nil
}

func (a *App) printSubscription(info *models.PlanInfo) {
	fmt.Fprintln(a.out, headingStyle.Render("Your subscription"))
	fmt.Fprintf(a.out, "  Email: %s\n", info.Email)
	fmt.Fprintf(a.out, "  Plan:  %s\n", info.Plan)
	if info.Plan == models.PlanPremium {
		fmt.Fprintf(a.out, "  Current period: %s — %s\n", info.PeriodStart(), info.PeriodEnd())
		if info.Cancelled {
			fmt.Fprintln(a.out, faintStyle.Render("  Cancelled: access ends with the current period."))
		}
	}
}
