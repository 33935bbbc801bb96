// Package models defines the data transfer shapes exchanged with the
// exam-practice API. The client never owns their canonical form; it only
// caches and derives views over them.
package models

import (
	"sort"
	"time"
)

// Choice is one selectable answer option of a question.
type Choice struct {
	ID         int    `json:"id"`
	Letter     string `json:"choiceLetter"`
	Text       string `json:"choiceText"`
	QuestionID int    `json:"questionId"`
}

// Question is a delivered mock question. Instances are immutable once
// received; requesting a new question replaces the previous one wholesale.
//
// Answer carries the letters the user submitted. The server fills it in on
// performance responses; for a freshly generated question it is empty.
type Question struct {
	CreatedDate    time.Time `json:"createdDate"`
	ID             int       `json:"id"`
	Topic          string    `json:"topic"`
	Exam           string    `json:"exam"`
	Stem           string    `json:"questionStem"`
	Choices        []Choice  `json:"choices"`
	MultipleChoice bool      `json:"isMultipleChoice"`
	CorrectAnswers []string  `json:"correctAnswers"`
	Explanation    string    `json:"answerExplanation"`
	Answer         []string  `json:"answer"`
}

// Answered reports whether the submitted letters exactly match the correct
// ones. Comparison is set-based: order-independent and duplicate-insensitive.
func (q Question) Answered() bool {
	return AnswerSetsEqual(q.Answer, q.CorrectAnswers)
}

// AnswerSetsEqual compares two letter lists as sets.
func AnswerSetsEqual(submitted, correct []string) bool {
	a := letterSet(submitted)
	b := letterSet(correct)
	if len(a) != len(b) {
		return false
	}
	for l := range a {
		if _, ok := b[l]; !ok {
			return false
		}
	}
	return true
}

func letterSet(letters []string) map[string]struct{} {
	s := make(map[string]struct{}, len(letters))
	for _, l := range letters {
		s[l] = struct{}{}
	}
	return s
}

// Performance is the user's answered-question history, partitioned into the
// correct and incorrect buckets the server maintains.
type Performance struct {
	CorrectAnswers   []Question `json:"correctAnswers"`
	IncorrectAnswers []Question `json:"incorrectAnswers"`
}

// All merges both buckets, newest question first (descending id).
func (p Performance) All() []Question {
	merged := make([]Question, 0, len(p.CorrectAnswers)+len(p.IncorrectAnswers))
	merged = append(merged, p.CorrectAnswers...)
	merged = append(merged, p.IncorrectAnswers...)
	sort.Slice(merged, func(i, j int) bool { return merged[i].ID > merged[j].ID })
	return merged
}
