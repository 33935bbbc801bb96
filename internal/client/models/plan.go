package models

import "time"

// PlanInfo is the server-owned subscription state for the logged-in user.
// Period boundaries arrive as unix seconds. Read-mostly: the client
// re-fetches it after any mutating action such as a cancellation.
type PlanInfo struct {
	Email              string `json:"email"`
	Plan               string `json:"plan"`
	CurrentPeriodStart int64  `json:"current_period_start"`
	CurrentPeriodEnd   int64  `json:"current_period_end"`
	Cancelled          bool   `json:"isCancelled"`
}

// PeriodStart returns the billing period start as a local date string,
// or "N/A" when the server sent no period.
func (p PlanInfo) PeriodStart() string { return unixDate(p.CurrentPeriodStart) }

// PeriodEnd returns the billing period end as a local date string,
// or "N/A" when the server sent no period.
func (p PlanInfo) PeriodEnd() string { return unixDate(p.CurrentPeriodEnd) }

func unixDate(sec int64) string {
	if sec == 0 {
		return "N/A"
	}
	return time.Unix(sec, 0).Format("2006-01-02")
}

// Plan names understood by the registration and checkout endpoints.
const (
	PlanFree    = "Free"
	PlanPremium = "Premium"
)

// Plan describes a subscription tier shown during registration and on the
// plans view.
type Plan struct {
	ID       string
	Name     string
	Price    string
	Features string
}

// Plans is the catalog offered by the service.
var Plans = []Plan{
	{ID: PlanFree, Name: "Free / Demo", Price: "0$", Features: "10 questions per day"},
	{ID: PlanPremium, Name: "Premium Plan", Price: "$5/month", Features: "Unlimited questions"},
}

// ValidPlan reports whether id names a known plan.
func ValidPlan(id string) bool {
	for _, p := range Plans {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Exams lists the certification exams questions can be generated for.
var Exams = []string{
	"Associate",
	"AI Associate",
	"Administrator",
	"Advanced Administrator",
	"Platform Developer I",
	"Platform Developer II",
}
