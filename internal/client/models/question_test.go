package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerSetsEqual(t *testing.T) {
	tests := []struct {
		name      string
		submitted []string
		correct   []string
		want      bool
	}{
		{"identical", []string{"A", "B"}, []string{"A", "B"}, true},
		{"order independent", []string{"B", "A"}, []string{"A", "B"}, true},
		{"duplicates ignored", []string{"A", "A", "B"}, []string{"B", "A"}, true},
		{"missing letter", []string{"A"}, []string{"A", "B"}, false},
		{"extra letter", []string{"A", "B", "C"}, []string{"A", "B"}, false},
		{"disjoint", []string{"C"}, []string{"A"}, false},
		{"both empty", nil, nil, true},
		{"empty vs non-empty", nil, []string{"A"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AnswerSetsEqual(tc.submitted, tc.correct))
		})
	}
}

func TestQuestionAnswered(t *testing.T) {
	q := Question{CorrectAnswers: []string{"A", "C"}, Answer: []string{"C", "A"}}
	assert.True(t, q.Answered())

	q.Answer = []string{"A", "B"}
	assert.False(t, q.Answered())
}

func TestPerformanceAll_MergesNewestFirst(t *testing.T) {
	p := Performance{
		CorrectAnswers:   []Question{{ID: 3}, {ID: 1}},
		IncorrectAnswers: []Question{{ID: 5}, {ID: 2}},
	}

	got := p.All()
	ids := make([]int, len(got))
	for i, q := range got {
		ids[i] = q.ID
	}
	assert.Equal(t, []int{5, 3, 2, 1}, ids)
}

func TestPlanInfoPeriods(t *testing.T) {
	p := PlanInfo{}
	assert.Equal(t, "N/A", p.PeriodStart())
	assert.Equal(t, "N/A", p.PeriodEnd())

	p.CurrentPeriodStart = 1700000000
	assert.NotEqual(t, "N/A", p.PeriodStart())
}

func TestValidPlan(t *testing.T) {
	assert.True(t, ValidPlan(PlanFree))
	assert.True(t, ValidPlan(PlanPremium))
	assert.False(t, ValidPlan("Enterprise"))
}
