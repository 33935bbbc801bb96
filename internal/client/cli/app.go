// Package cli implements the interactive command surface of the certprep
// client: a REPL whose commands correspond to the views of the service
// (login, registration, question practice, performance, plans, checkout).
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/asalykin/certprep/internal/client/api"
	"github.com/asalykin/certprep/internal/client/busy"
	"github.com/asalykin/certprep/internal/client/config"
	"github.com/asalykin/certprep/internal/client/performance"
	"github.com/asalykin/certprep/internal/client/session"
	"github.com/asalykin/certprep/internal/logging"
)

// App wires the shared state containers (session store, busy indicator,
// performance cache) and the API gateway together and exposes one method
// per view. It satisfies session.Navigator: "navigation" selects the view
// the prompt reflects.
type App struct {
	config  *config.Config
	log     logging.Logger
	api     api.Client
	session *session.Store
	busy    *busy.Indicator
	perf    *performance.Cache
	notify  *Notifier

	reader *bufio.Reader
	out    io.Writer
	route  session.Route

	// plan picked on the plans view, preselected during registration
	preselectedPlan string
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	storage, err := session.NewFileStorage(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("init token storage: %w", err)
	}

	a := &App{
		config: cfg,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		route:  session.RouteLanding,
	}
	a.notify = NewNotifier(a.out)
	a.session = session.NewStore(storage, a.notify, a)
	a.api = api.NewHTTPClient(cfg.APIBaseURL, a.session.Token, log)
	a.busy = busy.NewIndicator()
	a.perf = performance.NewCache(a.api, a.busy)
	return a, nil
}

// Goto implements session.Navigator.
func (a *App) Goto(route session.Route) { a.route = route }

// isLoggedIn re-derives the authenticated flag from storage; the REPL calls
// it on every prompt cycle, so expiry is noticed without any server call.
func (a *App) isLoggedIn() bool { return a.session.IsAuthenticated() }

func (a *App) getStatus() string {
	s := string(a.route)
	if a.isLoggedIn() {
		s += ", signed in"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, headingStyle.Render("certprep — certification exam practice (type 'help' for commands)"))
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// withBusy brackets one network operation with the global busy indicator.
// Plain boolean semantics: overlapping operations are not counted.
func (a *App) withBusy(fn func() error) error {
	a.busy.Show()
	defer a.busy.Hide()
	return fn()
}

// handleAPIError applies the uniform error taxonomy: 401 tears down the
// session and routes to login, quota opens the upgrade prompt, everything
// else becomes the fallback notification. The page is left in its pre-call
// state; nothing is retried.
func (a *App) handleAPIError(ctx context.Context, err error, fallback string) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		if expireErr := a.session.Expire(); expireErr != nil {
			a.log.Error(ctx, "failed to clear session", "error", expireErr)
		}
	case errors.Is(err, api.ErrQuotaExceeded):
		a.showQuotaModal()
	default:
		a.log.Error(ctx, "request failed", "error", err)
		a.notify.Error(fallback)
	}
}

// showQuotaModal renders the daily-limit prompt instead of a generic error.
func (a *App) showQuotaModal() {
	fmt.Fprintln(a.out, modalStyle.Render(
		headingStyle.Render("Daily Question Limit Reached")+"\n\n"+
			"You have reached the daily limit of questions available for your\n"+
			"current plan. You can try again tomorrow or consider upgrading\n"+
			"your plan to access more questions.\n\n"+
			faintStyle.Render("Run 'plans' to view available plans.")))
}
