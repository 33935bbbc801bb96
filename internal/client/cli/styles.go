package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// The notification palette mirrors the web client's toast colors.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))

	headingStyle = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)

	goodPctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	midPctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	poorPctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(60)
)

// Notifier renders the toast-equivalent status lines. It satisfies
// session.Notifier.
type Notifier struct {
	w io.Writer
}

func NewNotifier(w io.Writer) *Notifier { return &Notifier{w: w} }

func (n *Notifier) Success(msg string) { fmt.Fprintln(n.w, successStyle.Render("✔ "+msg)) }
func (n *Notifier) Error(msg string)   { fmt.Fprintln(n.w, errorStyle.Render("✘ "+msg)) }
func (n *Notifier) Info(msg string)    { fmt.Fprintln(n.w, infoStyle.Render("ℹ "+msg)) }
