package performance

import (
	"sort"
	"time"

	"github.com/asalykin/certprep/internal/client/models"
)

// Summary holds the correct-answer percentage for the three dashboard
// periods. Empty periods read as 0, never NaN.
type Summary struct {
	Today float64
	Week  float64
	Month float64
}

// Band classifies a percentage for display.
type Band int

const (
	BandPoor Band = iota // <= 50
	BandFair             // 50 < pct <= 70
	BandGood             // > 70
)

// BandFor maps a percentage to its display band.
func BandFor(pct float64) Band {
	switch {
	case pct > 70:
		return BandGood
	case pct > 50:
		return BandFair
	default:
		return BandPoor
	}
}

// Summarize computes the today / last-7-days / last-month percentages
// relative to now.
func Summarize(p *models.Performance, now time.Time) Summary {
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, -1, 0)

	var s Summary
	s.Today = percentage(
		countMatching(p.CorrectAnswers, func(t time.Time) bool { return sameDay(t, now) }),
		countMatching(p.IncorrectAnswers, func(t time.Time) bool { return sameDay(t, now) }),
	)
	s.Week = percentage(
		countMatching(p.CorrectAnswers, func(t time.Time) bool { return !t.Before(weekAgo) }),
		countMatching(p.IncorrectAnswers, func(t time.Time) bool { return !t.Before(weekAgo) }),
	)
	s.Month = percentage(
		countMatching(p.CorrectAnswers, func(t time.Time) bool { return !t.Before(monthAgo) }),
		countMatching(p.IncorrectAnswers, func(t time.Time) bool { return !t.Before(monthAgo) }),
	)
	return s
}

func percentage(correct, incorrect int) float64 {
	total := correct + incorrect
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

func countMatching(qs []models.Question, in func(time.Time) bool) int {
	n := 0
	for _, q := range qs {
		if in(q.CreatedDate) {
			n++
		}
	}
	return n
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayCount is one point of the correct-vs-incorrect-over-time chart.
type DayCount struct {
	Date      time.Time
	Correct   int
	Incorrect int
}

// DailySeries groups both buckets by calendar day, oldest first.
func DailySeries(p *models.Performance) []DayCount {
	byDay := map[time.Time]*DayCount{}

	bump := func(qs []models.Question, correct bool) {
		for _, q := range qs {
			y, m, d := q.CreatedDate.Date()
			day := time.Date(y, m, d, 0, 0, 0, 0, q.CreatedDate.Location())
			dc, ok := byDay[day]
			if !ok {
				dc = &DayCount{Date: day}
				byDay[day] = dc
			}
			if correct {
				dc.Correct++
			} else {
				dc.Incorrect++
			}
		}
	}
	bump(p.CorrectAnswers, true)
	bump(p.IncorrectAnswers, false)

	series := make([]DayCount, 0, len(byDay))
	for _, dc := range byDay {
		series = append(series, *dc)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}
