package domain

// Severity is the urgency tier of an alert. Tier1 is the most urgent.
type Severity string

const (
	SeverityTier1 Severity = "tier1"
	SeverityTier2 Severity = "tier2"
	SeverityTier3 Severity = "tier3"
	SeverityTier4 Severity = "tier4"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityTier1, SeverityTier2, SeverityTier3, SeverityTier4:
		return true
	}
	return false
}

// AlertStatus is the lifecycle state of an alert.
//
//	open -> acknowledged -> resolved | dismissed
//	open -> resolved | dismissed
//
// Resolved and dismissed are terminal.
type AlertStatus string

const (
	AlertStatusOpen         AlertStatus = "open"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusDismissed    AlertStatus = "dismissed"
)

func (s AlertStatus) String() string { return string(s) }

func (s AlertStatus) IsValid() bool {
	switch s {
	case AlertStatusOpen, AlertStatusAcknowledged, AlertStatusResolved, AlertStatusDismissed:
		return true
	}
	return false
}

// IsActive reports whether an alert in this status blocks a new alert with
// the same dedupe key.
func (s AlertStatus) IsActive() bool {
	return s == AlertStatusOpen || s == AlertStatusAcknowledged
}

// IsTerminal reports whether no further transition is possible.
func (s AlertStatus) IsTerminal() bool {
	return s == AlertStatusResolved || s == AlertStatusDismissed
}

// CanTransitionTo reports whether moving from s to next is a forward move.
func (s AlertStatus) CanTransitionTo(next AlertStatus) bool {
	switch s {
	case AlertStatusOpen:
		return next == AlertStatusAcknowledged || next == AlertStatusResolved || next == AlertStatusDismissed
	case AlertStatusAcknowledged:
		return next == AlertStatusResolved || next == AlertStatusDismissed
	}
	return false
}

// ActiveAlertStatuses lists the statuses considered by alert deduplication.
func ActiveAlertStatuses() []AlertStatus {
	return []AlertStatus{AlertStatusOpen, AlertStatusAcknowledged}
}

// ContradictionStatus is the review state of a contradiction.
type ContradictionStatus string

const (
	ContradictionStatusOpen      ContradictionStatus = "open"
	ContradictionStatusInReview  ContradictionStatus = "in_review"
	ContradictionStatusResolved  ContradictionStatus = "resolved"
	ContradictionStatusDismissed ContradictionStatus = "dismissed"
)

func (s ContradictionStatus) String() string { return string(s) }

func (s ContradictionStatus) IsValid() bool {
	switch s {
	case ContradictionStatusOpen, ContradictionStatusInReview,
		ContradictionStatusResolved, ContradictionStatusDismissed:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s ContradictionStatus) CanTransitionTo(next ContradictionStatus) bool {
	switch s {
	case ContradictionStatusOpen:
		return next == ContradictionStatusInReview || next == ContradictionStatusResolved || next == ContradictionStatusDismissed
	case ContradictionStatusInReview:
		return next == ContradictionStatusResolved || next == ContradictionStatusDismissed
	}
	return false
}

// AgreementStatus is the state of a commitment tracked by the group.
type AgreementStatus string

const (
	AgreementStatusProposed AgreementStatus = "proposed"
	AgreementStatusActive   AgreementStatus = "active"
	AgreementStatusDeclined AgreementStatus = "declined"
	AgreementStatusModified AgreementStatus = "modified"
)

func (s AgreementStatus) String() string { return string(s) }

func (s AgreementStatus) IsValid() bool {
	switch s {
	case AgreementStatusProposed, AgreementStatusActive, AgreementStatusDeclined, AgreementStatusModified:
		return true
	}
	return false
}

// IsTerminal reports whether the agreement can no longer change.
func (s AgreementStatus) IsTerminal() bool { return s == AgreementStatusDeclined }

// CanTransitionTo reports whether moving from s to next is allowed.
// A modified agreement may be modified again.
func (s AgreementStatus) CanTransitionTo(next AgreementStatus) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}
	switch next {
	case AgreementStatusActive:
		return s == AgreementStatusProposed
	case AgreementStatusDeclined, AgreementStatusModified:
		return true
	}
	return false
}
