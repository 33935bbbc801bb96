package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/asalykin/certprep/internal/client/tui"
)

// Question runs the full-screen practice interface: exam selection,
// generated questions, answers and explanations. When the server rejects
// the token mid-session the TUI exits and the session is torn down here,
// outside the alternate screen.
func (a *App) Question(ctx context.Context) error {
	m := tui.NewModel(ctx, a.api, a.perf, a.busy)
	program := tea.NewProgram(m, tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		a.log.Error(ctx, "practice UI failed", "error", err)
		a.notify.Error("The practice view could not be started.")
		return err
	}

	if fm, ok := final.(*tui.Model); ok && fm.Unauthorized() {
		return a.session.Expire()
	}
	return nil
}
