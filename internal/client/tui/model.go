// Package tui provides the Bubble Tea question-practice interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asalykin/certprep/internal/client/api"
	"github.com/asalykin/certprep/internal/client/busy"
	"github.com/asalykin/certprep/internal/client/models"
	"github.com/asalykin/certprep/internal/client/performance"
)

type state int

const (
	statePickExams state = iota
	stateLoading
	stateQuestion
	stateAnswered
	stateQuota
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	pickedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336")).Bold(true)
	explainStyle  = lipgloss.NewStyle().Faint(true)
	limitBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

type questionMsg struct{ q *models.Question }
type answeredMsg struct{ correct, incorrect int }
type errMsg struct{ err error }

// Model implements the Bubble Tea practice UI: pick exams, receive a
// generated question, answer, see the verdict and explanation, repeat.
type Model struct {
	ctx  context.Context
	api  api.Client
	perf *performance.Cache
	busy *busy.Indicator

	state state
	// view to return to when a load fails for a reason the user can retry
	prevState state
	spinner   spinner.Model

	cursor        int
	selectedExams map[int]struct{}

	question *models.Question
	picked   map[string]struct{}

	width  int
	height int

	correct   int
	incorrect int
	hasTotals bool

	unauthorized bool
	errText      string
}

// NewModel constructs a practice model in the exam-selection state.
func NewModel(ctx context.Context, client api.Client, perf *performance.Cache, busy *busy.Indicator) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &Model{
		ctx:           ctx,
		api:           client,
		perf:          perf,
		busy:          busy,
		state:         statePickExams,
		spinner:       sp,
		selectedExams: map[int]struct{}{},
		picked:        map[string]struct{}{},
	}
}

// Unauthorized reports whether the session was rejected by the server while
// the TUI was running. The caller tears the session down in that case.
func (m *Model) Unauthorized() bool { return m.unauthorized }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case questionMsg:
		m.busy.Hide()
		m.question = msg.q
		m.picked = map[string]struct{}{}
		m.cursor = 0
		m.errText = ""
		m.state = stateQuestion
		return m, nil

	case answeredMsg:
		m.busy.Hide()
		m.correct = msg.correct
		m.incorrect = msg.incorrect
		m.hasTotals = true
		m.state = stateAnswered
		return m, nil

	case errMsg:
		m.busy.Hide()
		switch {
		case errors.Is(msg.err, api.ErrUnauthorized):
			m.unauthorized = true
			return m, tea.Quit
		case errors.Is(msg.err, api.ErrQuotaExceeded):
			m.state = stateQuota
			return m, nil
		default:
			// leave the view in its pre-call state so the user can retry
			m.errText = "Request failed. Please try again."
			if m.state == stateLoading {
				m.state = m.prevState
			}
			return m, nil
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.state {
		case statePickExams:
			return m.updatePickExams(msg)
		case stateQuestion:
			return m.updateQuestion(msg)
		case stateAnswered:
			return m.updateAnswered(msg)
		case stateQuota:
			if msg.String() == "q" || msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		default:
			return m, nil
		}

	default:
		return m, nil
	}
}

func (m *Model) updatePickExams(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(models.Exams)-1 {
			m.cursor++
		}
	case " ":
		if _, ok := m.selectedExams[m.cursor]; ok {
			delete(m.selectedExams, m.cursor)
		} else {
			m.selectedExams[m.cursor] = struct{}{}
		}
	case "enter":
		if len(m.selectedExams) == 0 {
			m.errText = "Select at least one exam."
			return m, nil
		}
		return m, m.generate()
	}
	return m, nil
}

func (m *Model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := strings.ToUpper(msg.String())
	for _, c := range m.question.Choices {
		if key != c.Letter {
			continue
		}
		if m.question.MultipleChoice {
			if _, ok := m.picked[c.Letter]; ok {
				delete(m.picked, c.Letter)
			} else {
				m.picked[c.Letter] = struct{}{}
			}
		} else {
			m.picked = map[string]struct{}{c.Letter: {}}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		if len(m.picked) == 0 {
			m.errText = "Pick an answer first."
			return m, nil
		}
		return m, m.submit()
	}
	return m, nil
}

func (m *Model) updateAnswered(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "enter":
		return m, m.generate()
	case "e":
		m.state = statePickExams
		m.cursor = 0
		m.errText = ""
		return m, nil
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

// generate asks the server for the next question for the selected exams.
func (m *Model) generate() tea.Cmd {
	exams := make([]string, 0, len(m.selectedExams))
	for i, name := range models.Exams {
		if _, ok := m.selectedExams[i]; ok {
			exams = append(exams, name)
		}
	}
	m.prevState = m.state
	m.state = stateLoading
	m.errText = ""
	m.busy.Show()
	return func() tea.Msg {
		q, err := m.api.GenerateQuestion(m.ctx, exams)
		if err != nil {
			return errMsg{err}
		}
		return questionMsg{q}
	}
}

// submit reports the chosen letters to the server and records the outcome
// in the local performance cache.
func (m *Model) submit() tea.Cmd {
	chosen := make([]string, 0, len(m.picked))
	for _, c := range m.question.Choices {
		if _, ok := m.picked[c.Letter]; ok {
			chosen = append(chosen, c.Letter)
		}
	}
	m.question.Answer = chosen

	m.prevState = m.state
	m.state = stateLoading
	m.busy.Show()
	q := *m.question
	perf := m.perf
	return func() tea.Msg {
		if err := m.api.SubmitAnswer(m.ctx, q.ID, chosen); err != nil {
			return errMsg{err}
		}
		if err := perf.Record(m.ctx, q); err != nil {
			return errMsg{err}
		}
		p, err := perf.Get(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return answeredMsg{correct: len(p.CorrectAnswers), incorrect: len(p.IncorrectAnswers)}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	switch m.state {
	case statePickExams:
		b.WriteString(titleStyle.Render("Choose exams to practice") + "\n\n")
		for i, name := range models.Exams {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			mark := "[ ]"
			if _, ok := m.selectedExams[i]; ok {
				mark = pickedStyle.Render("[x]")
			}
			fmt.Fprintf(&b, "%s%s %s\n", cursor, mark, name)
		}
		b.WriteString("\n" + hintStyle.Render("space: toggle · enter: start · q: back"))

	case stateLoading:
		fmt.Fprintf(&b, "%s Loading…", m.spinner.View())

	case stateQuestion, stateAnswered:
		q := m.question
		if m.hasTotals {
			b.WriteString(correctStyle.Render(fmt.Sprintf("Correct: %d", m.correct)) + "  " +
				wrongStyle.Render(fmt.Sprintf("Incorrect: %d", m.incorrect)) + "\n")
		}
		b.WriteString(hintStyle.Render(fmt.Sprintf("%s · %s", q.Exam, q.Topic)) + "\n")
		b.WriteString(titleStyle.Render(q.Stem) + "\n\n")
		for _, c := range q.Choices {
			b.WriteString(m.renderChoice(c) + "\n")
		}
		b.WriteString("\n")
		if m.state == stateAnswered {
			if q.Answered() {
				b.WriteString(correctStyle.Render("Correct!") + "\n")
			} else {
				b.WriteString(wrongStyle.Render("Incorrect.") + "\n")
			}
			if q.Explanation != "" {
				b.WriteString(explainStyle.Render(q.Explanation) + "\n")
			}
			b.WriteString("\n" + hintStyle.Render("n: next question · e: change exams · q: back"))
		} else {
			hint := "pick one answer"
			if q.MultipleChoice {
				hint = "pick all answers that apply"
			}
			b.WriteString(hintStyle.Render(fmt.Sprintf("letter: %s · enter: submit · q: back", hint)))
		}

	case stateQuota:
		b.WriteString(limitBoxStyle.Render(
			titleStyle.Render("Daily Question Limit Reached") + "\n\n" +
				"You have reached the daily limit of questions available\n" +
				"for your current plan. You can try again tomorrow or\n" +
				"upgrade your plan to access more questions.\n\n" +
				hintStyle.Render("press enter to close")))
	}

	if m.errText != "" {
		b.WriteString("\n" + wrongStyle.Render(m.errText))
	}
	return b.String()
}

func (m *Model) renderChoice(c models.Choice) string {
	mark := "( )"
	if m.question.MultipleChoice {
		mark = "[ ]"
	}
	_, picked := m.picked[c.Letter]
	if picked {
		if m.question.MultipleChoice {
			mark = "[x]"
		} else {
			mark = "(x)"
		}
	}
	line := fmt.Sprintf("  %s %s) %s", mark, c.Letter, c.Text)

	if m.state != stateAnswered {
		if picked {
			return pickedStyle.Render(line)
		}
		return line
	}

	correct := false
	for _, l := range m.question.CorrectAnswers {
		if l == c.Letter {
			correct = true
			break
		}
	}
	switch {
	case correct:
		return correctStyle.Render(line)
	case picked:
		return wrongStyle.Render(line)
	default:
		return line
	}
}
