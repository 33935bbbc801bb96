package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/asalykin/certprep/internal/client/api"
)

// openCheckout prints the hosted payment page URL for a freshly opened
// checkout session. Payment happens in the browser; afterwards the user
// runs 'checkout <session-id>' here to pick up the result.
func (a *App) openCheckout(session string) {
	fmt.Fprintln(a.out, modalStyle.Render(
		headingStyle.Render("Complete your payment")+"\n\n"+
			"Open the following page in your browser to pay:\n\n  "+
			fmt.Sprintf("%s?session_id=%s", a.config.CheckoutURL, session)+"\n\n"+
			faintStyle.Render(fmt.Sprintf("When you are done, run: checkout %s", session))))
}

// CheckoutReturn asks the payment provider, via the API, what became of a
// checkout session and renders the outcome. The status is read exactly
// once per invocation; there is no polling.
func (a *App) CheckoutReturn(ctx context.Context, sessionID string) error {
	var status string
	err := a.withBusy(func() error {
		var e error
		status, e = a.api.CheckoutSessionStatus(ctx, sessionID)
		return e
	})
	if err != nil {
		a.handleAPIError(ctx, err, "Could not check the payment status. Please try again.")
		return err
	}

	renderCheckoutResult(a.out, status, a.isLoggedIn())
	return nil
}

// renderCheckoutResult shows the outcome of a checkout session. A session
// still "open" means the payment did not go through; anything that is not
// "complete" is treated the same way, so a half-paid state can never render
// as success.
func renderCheckoutResult(w io.Writer, status string, loggedIn bool) {
	if status == api.CheckoutComplete {
		next := "Log in to start practicing."
		if loggedIn {
			next = "Run 'question' to start practicing."
		}
		fmt.Fprintln(w, modalStyle.Render(
			successStyle.Render("Thank You for Your Trust!")+"\n\n"+
				"Your payment was received and your premium plan is active.\n"+
				next))
		return
	}

	fmt.Fprintln(w, modalStyle.Render(
		errorStyle.Render("Payment Failed")+"\n\n"+
			"The payment was not completed. No charge was made.\n"+
			"You can retry the upgrade from the plans view at any time."))
}
