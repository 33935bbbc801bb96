package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asalykin/certprep/internal/client/api"
	"github.com/asalykin/certprep/internal/client/busy"
	"github.com/asalykin/certprep/internal/client/config"
	"github.com/asalykin/certprep/internal/client/models"
	"github.com/asalykin/certprep/internal/client/performance"
	"github.com/asalykin/certprep/internal/client/session"
	"github.com/asalykin/certprep/internal/logging"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

type memStorage struct {
	token string
}

func (m *memStorage) Load() (string, error) { return m.token, nil }
func (m *memStorage) Save(t string) error   { m.token = t; return nil }
func (m *memStorage) Clear() error          { m.token = ""; return nil }

type fakeAPI struct {
	api.Client

	loginToken string
	loginErr   error
	lastUser   string

	registerSession string
	registerErr     error
	lastReg         api.Registration

	info    *models.PlanInfo
	infoErr error

	cancelCalled bool
	cancelErr    error

	checkoutStatus string
	checkoutErr    error
	lastSessionID  string

	perf    *models.Performance
	perfErr error
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (string, error) {
	f.lastUser = username
	return f.loginToken, f.loginErr
}
func (f *fakeAPI) Register(ctx context.Context, r api.Registration) (string, error) {
	f.lastReg = r
	return f.registerSession, f.registerErr
}
func (f *fakeAPI) UserInfo(ctx context.Context) (*models.PlanInfo, error) {
	if f.infoErr != nil || f.info == nil {
		return nil, f.infoErr
	}
	info := *f.info
	if f.cancelCalled {
		info.Cancelled = true
	}
	return &info, nil
}
func (f *fakeAPI) CancelSubscription(ctx context.Context) error {
	f.cancelCalled = true
	return f.cancelErr
}
func (f *fakeAPI) CheckoutSessionStatus(ctx context.Context, sessionID string) (string, error) {
	f.lastSessionID = sessionID
	return f.checkoutStatus, f.checkoutErr
}
func (f *fakeAPI) Performance(ctx context.Context) (*models.Performance, error) {
	return f.perf, f.perfErr
}

func newTestApp(t *testing.T, client *fakeAPI, reader *bufio.Reader, token string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	storage := &memStorage{token: token}
	a := &App{
		config: &config.Config{CheckoutURL: "https://pay.example/checkout"},
		log:    logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		api:    client,
		reader: reader,
		out:    out,
		route:  session.RouteLanding,
	}
	a.notify = NewNotifier(out)
	a.session = session.NewStore(storage, a.notify, a)
	a.busy = busy.NewIndicator()
	a.perf = performance.NewCache(client, a.busy)
	return a, out
}

func withSilentPassword(t *testing.T, password string) {
	t.Helper()
	origText := getSimpleText
	origPass := getPassword
	getPassword = func(w io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPass
	})
}

// ------------ tests ------------

func TestApp_Login_Success(t *testing.T) {
	withSilentPassword(t, "Abcdefg1!")
	client := &fakeAPI{loginToken: "tok-123"}
	app, out := newTestApp(t, client, readerFromLines("user@example.com"), "")

	err := app.Login(context.Background())
	require.NoError(t, err)

	require.Equal(t, "user@example.com", client.lastUser)
	require.Equal(t, "tok-123", app.session.Token())
	require.Equal(t, session.RouteQuestion, app.route)
	require.Contains(t, out.String(), "Logged in successfully")
}

func TestApp_Login_BadCredentials(t *testing.T) {
	withSilentPassword(t, "Abcdefg1!")
	client := &fakeAPI{loginErr: api.ErrUnauthorized}
	app, out := newTestApp(t, client, readerFromLines("user@example.com"), "")

	err := app.Login(context.Background())
	require.Error(t, err)
	require.Empty(t, app.session.Token())
	require.Equal(t, session.RouteLanding, app.route)
	require.Contains(t, out.String(), "Login failed")
}

func TestApp_Register_FreePlan(t *testing.T) {
	withSilentPassword(t, "Abcdefg1!")
	client := &fakeAPI{}
	// name, email, plan selection (1 = free)
	app, out := newTestApp(t, client, readerFromLines("Alice", "alice@example.com", "1"), "")

	err := app.Register(context.Background())
	require.NoError(t, err)

	require.Equal(t, "Alice", client.lastReg.Name)
	require.Equal(t, "alice@example.com", client.lastReg.Email)
	require.Equal(t, models.PlanFree, client.lastReg.Plan)
	require.Contains(t, out.String(), "verification email")
}

func TestApp_Register_PremiumOpensCheckout(t *testing.T) {
	withSilentPassword(t, "Abcdefg1!")
	client := &fakeAPI{registerSession: "cs_test_42"}
	app, out := newTestApp(t, client, readerFromLines("Bob", "bob@example.com", "2"), "")

	err := app.Register(context.Background())
	require.NoError(t, err)

	require.Equal(t, models.PlanPremium, client.lastReg.Plan)
	require.Contains(t, out.String(), "session_id=cs_test_42")
}

func TestApp_Logout_ClearsTokenAndRoutesToLanding(t *testing.T) {
	client := &fakeAPI{}
	app, out := newTestApp(t, client, readerFromLines(), "tok")
	app.route = session.RouteQuestion

	err := app.Logout(context.Background())
	require.NoError(t, err)

	require.Empty(t, app.session.Token())
	require.Equal(t, session.RouteLanding, app.route)
	require.Contains(t, out.String(), "Logged out successfully")
}

func TestApp_CancelSubscription_ConfirmedAndRefreshed(t *testing.T) {
	client := &fakeAPI{info: &models.PlanInfo{
		Email: "bob@example.com",
		Plan:  models.PlanPremium,
	}}
	app, out := newTestApp(t, client, readerFromLines("y"), "tok")

	err := app.CancelSubscription(context.Background())
	require.NoError(t, err)

	require.True(t, client.cancelCalled)
	require.Contains(t, out.String(), "Your subscription has been cancelled.")
	require.Contains(t, out.String(), "access ends with the current period")
}

func TestApp_CancelSubscription_Declined(t *testing.T) {
	client := &fakeAPI{info: &models.PlanInfo{Plan: models.PlanPremium}}
	app, _ := newTestApp(t, client, readerFromLines("n"), "tok")

	err := app.CancelSubscription(context.Background())
	require.NoError(t, err)
	require.False(t, client.cancelCalled)
}

func TestApp_CancelSubscription_AlreadyCancelled(t *testing.T) {
	client := &fakeAPI{info: &models.PlanInfo{Plan: models.PlanPremium}}
	client.cancelCalled = true
	app, out := newTestApp(t, client, readerFromLines(), "tok")

	err := app.CancelSubscription(context.Background())
	require.NoError(t, err)
	require.Contains(t, out.String(), "already cancelled")
}

func TestApp_PlansPreselectionFlowsIntoRegistration(t *testing.T) {
	withSilentPassword(t, "Abcdefg1!")
	client := &fakeAPI{registerSession: "cs_test_9"}
	// plans: pick a plan (y), choose premium (2); register: name, email,
	// empty selection accepts the preselected plan
	app, _ := newTestApp(t, client, readerFromLines("y", "2", "Cara", "cara@example.com", ""), "")

	require.NoError(t, app.Plans(context.Background()))
	require.Equal(t, models.PlanPremium, app.preselectedPlan)

	require.NoError(t, app.Register(context.Background()))
	require.Equal(t, models.PlanPremium, client.lastReg.Plan)
}

func TestApp_CheckoutReturn_PassesSessionID(t *testing.T) {
	client := &fakeAPI{checkoutStatus: api.CheckoutComplete}
	app, out := newTestApp(t, client, readerFromLines(), "")

	err := app.CheckoutReturn(context.Background(), "cs_test_7")
	require.NoError(t, err)
	require.Equal(t, "cs_test_7", client.lastSessionID)
	require.Contains(t, out.String(), "Thank You for Your Trust!")
}

func TestApp_UnauthorizedExpiresSession(t *testing.T) {
	client := &fakeAPI{perfErr: api.ErrUnauthorized}
	app, out := newTestApp(t, client, readerFromLines(), "tok")
	app.route = session.RouteQuestion

	err := app.Performance(context.Background())
	require.Error(t, err)

	require.Empty(t, app.session.Token())
	require.Equal(t, session.RouteLogin, app.route)
	require.Contains(t, out.String(), "Session expired. Please login again")
}

func TestApp_QuotaErrorShowsLimitPrompt(t *testing.T) {
	client := &fakeAPI{perfErr: api.ErrQuotaExceeded}
	app, out := newTestApp(t, client, readerFromLines(), "tok")

	err := app.Performance(context.Background())
	require.Error(t, err)
	require.Contains(t, out.String(), "Daily Question Limit Reached")
}

func TestApp_History_MarksVerdictAndAnswers(t *testing.T) {
	client := &fakeAPI{perf: &models.Performance{
		CorrectAnswers: []models.Question{{
			ID:             2,
			Exam:           "Administrator",
			Stem:           "Which field type is required?",
			Choices:        []models.Choice{{Letter: "A", Text: "Lookup"}, {Letter: "B", Text: "Formula"}},
			CorrectAnswers: []string{"A"},
			Answer:         []string{"A"},
		}},
		IncorrectAnswers: []models.Question{{
			ID:             1,
			Exam:           "Associate",
			Stem:           "What does SOQL query?",
			Choices:        []models.Choice{{Letter: "A", Text: "Records"}, {Letter: "B", Text: "Logs"}},
			CorrectAnswers: []string{"A"},
			Answer:         []string{"B"},
		}},
	}}
	app, out := newTestApp(t, client, readerFromLines(), "tok")

	err := app.History(context.Background())
	require.NoError(t, err)

	got := out.String()
	require.Contains(t, got, "Which field type is required?")
	require.Contains(t, got, "your answer")
	require.Contains(t, got, "correct")
	// newest first
	require.Less(t, strings.Index(got, "Which field type"), strings.Index(got, "What does SOQL"))
}
