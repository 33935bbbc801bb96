package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/asalykin/certprep/internal/client/models"
)

func q(created time.Time) models.Question {
	return models.Question{CreatedDate: created}
}

func TestSummarize_TodayFiftyPercent(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	p := &models.Performance{
		CorrectAnswers:   []models.Question{q(now.Add(-2 * time.Hour))},
		IncorrectAnswers: []models.Question{q(now.Add(-1 * time.Hour))},
	}

	s := Summarize(p, now)
	assert.InDelta(t, 50.0, s.Today, 0.001)
}

func TestSummarize_EmptyPeriodsAreZeroNotNaN(t *testing.T) {
	s := Summarize(&models.Performance{}, time.Now())

	assert.Equal(t, 0.0, s.Today)
	assert.Equal(t, 0.0, s.Week)
	assert.Equal(t, 0.0, s.Month)
}

func TestSummarize_PeriodBoundaries(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	p := &models.Performance{
		CorrectAnswers: []models.Question{
			q(now),                      // today, week, month
			q(now.AddDate(0, 0, -3)),    // week, month
			q(now.AddDate(0, 0, -20)),   // month only
			q(now.AddDate(0, -2, 0)),    // outside every period
		},
		IncorrectAnswers: []models.Question{
			q(now.AddDate(0, 0, -3)), // week, month
		},
	}

	s := Summarize(p, now)
	assert.InDelta(t, 100.0, s.Today, 0.001)
	assert.InDelta(t, 2.0/3.0*100, s.Week, 0.001)
	assert.InDelta(t, 75.0, s.Month, 0.001)
}

func TestSummarize_YesterdayNotCountedAsToday(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 30, 0, 0, time.UTC)
	p := &models.Performance{
		// One hour earlier, but the previous calendar day.
		CorrectAnswers: []models.Question{q(now.Add(-time.Hour))},
	}

	s := Summarize(p, now)
	assert.Equal(t, 0.0, s.Today)
	assert.InDelta(t, 100.0, s.Week, 0.001)
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandGood, BandFor(80))
	assert.Equal(t, BandFair, BandFor(60))
	assert.Equal(t, BandPoor, BandFor(50))
	assert.Equal(t, BandPoor, BandFor(0))
}

func TestDailySeries_GroupsAndOrders(t *testing.T) {
	d1 := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 26, 18, 0, 0, 0, time.UTC)
	p := &models.Performance{
		CorrectAnswers:   []models.Question{q(d2), q(d1), q(d1.Add(time.Hour))},
		IncorrectAnswers: []models.Question{q(d2.Add(time.Minute))},
	}

	series := DailySeries(p)
	assert.Len(t, series, 2)

	assert.Equal(t, 2, series[0].Correct)
	assert.Equal(t, 0, series[0].Incorrect)
	assert.Equal(t, 1, series[1].Correct)
	assert.Equal(t, 1, series[1].Incorrect)
	assert.True(t, series[0].Date.Before(series[1].Date))
}

func TestDailySeries_Empty(t *testing.T) {
	assert.Empty(t, DailySeries(&models.Performance{}))
}
