package alert

import "github.com/fordrm/the-a-team-sub000/internal/domain"

// SkipReason explains why CreateAlertIfNeeded did not insert an alert.
type SkipReason string

const (
	ReasonInvalidParams   SkipReason = "invalid_params"
	ReasonUnauthenticated SkipReason = "unauthenticated"
	ReasonDuplicateOpen   SkipReason = "duplicate_open"
	ReasonThrottled       SkipReason = "throttled_24h"
	ReasonError           SkipReason = "error"
)

func (r SkipReason) String() string { return string(r) }

// IsSuppression reports whether the skip is an expected outcome of the
// policy rather than a fault.
func (r SkipReason) IsSuppression() bool {
	return r == ReasonDuplicateOpen || r == ReasonThrottled
}

// Result is the outcome of CreateAlertIfNeeded: either Inserted with the new
// Alert, or skipped with a Reason and optional Details.
type Result struct {
	Inserted bool
	Alert    *domain.Alert
	Reason   SkipReason
	Details  string
}

// Skipped reports whether no alert was created.
func (r Result) Skipped() bool { return !r.Inserted }

func inserted(a *domain.Alert) Result {
	return Result{Inserted: true, Alert: a}
}

func skipped(reason SkipReason, details string) Result {
	return Result{Reason: reason, Details: details}
}
