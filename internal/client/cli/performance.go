package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asalykin/certprep/internal/client/models"
	"github.com/asalykin/certprep/internal/client/performance"
)

// Performance renders the statistics dashboard: the correct-answer
// percentage for today, the last seven days and the last month, plus a
// per-day answer chart. Everything is derived from the cached snapshot;
// only the first call in a session hits the server.
func (a *App) Performance(ctx context.Context) error {
	p, err := a.perf.Get(ctx)
	if err != nil {
		a.handleAPIError(ctx, err, "Could not load your performance data.")
		return err
	}

	s := performance.Summarize(p, time.Now())

	fmt.Fprintln(a.out, headingStyle.Render("Your performance"))
	fmt.Fprintf(a.out, "  Today:      %s\n", renderPct(s.Today))
	fmt.Fprintf(a.out, "  Last week:  %s\n", renderPct(s.Week))
	fmt.Fprintf(a.out, "  Last month: %s\n", renderPct(s.Month))

	series := performance.DailySeries(p)
	if len(series) == 0 {
		fmt.Fprintln(a.out, faintStyle.Render("  No answered questions yet."))
		return nil
	}

	fmt.Fprintln(a.out, headingStyle.Render("Answers by day"))
	for _, dc := range series {
		fmt.Fprintf(a.out, "  %s  %s%s\n",
			dc.Date.Format("2006-01-02"),
			goodPctStyle.Render(strings.Repeat("█", dc.Correct)),
			poorPctStyle.Render(strings.Repeat("█", dc.Incorrect)))
	}
	return nil
}

// History lists the questions answered so far, newest first, with the
// correct letters marked. Answers recorded in this session appear without
// any extra server call.
func (a *App) History(ctx context.Context) error {
	p, err := a.perf.Get(ctx)
	if err != nil {
		a.handleAPIError(ctx, err, "Could not load your answer history.")
		return err
	}

	all := p.All()
	if len(all) == 0 {
		fmt.Fprintln(a.out, faintStyle.Render("No answered questions yet."))
		return nil
	}

	for _, q := range all {
		verdict := errorStyle.Render("✘")
		if q.Answered() {
			verdict = successStyle.Render("✔")
		}
		fmt.Fprintf(a.out, "%s [%s] %s\n", verdict, q.Exam, q.Stem)
		for _, c := range q.Choices {
			fmt.Fprintf(a.out, "    %s\n", renderChoice(c, q))
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

// renderChoice marks the correct letters and the user's picks.
func renderChoice(c models.Choice, q models.Question) string {
	line := fmt.Sprintf("%s) %s", c.Letter, c.Text)
	if contains(q.CorrectAnswers, c.Letter) {
		line = goodPctStyle.Render(line + "  ← correct")
	}
	if contains(q.Answer, c.Letter) && !contains(q.CorrectAnswers, c.Letter) {
		line = poorPctStyle.Render(line + "  ← your answer")
	}
	return line
}

func contains(letters []string, l string) bool {
	for _, x := range letters {
		if x == l {
			return true
		}
	}
	return false
}

func renderPct(pct float64) string {
	s := fmt.Sprintf("%.1f%%", pct)
	switch performance.BandFor(pct) {
	case performance.BandGood:
		return goodPctStyle.Render(s)
	case performance.BandFair:
		return midPctStyle.Render(s)
	default:
		return poorPctStyle.Render(s)
	}
}
