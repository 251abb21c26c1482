package dashboard

import "strconv"

// Tier is the card-view urgency of a deadline.
type Tier string

const (
	TierTBD    Tier = "tbd"
	TierPassed Tier = "passed"
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Class is the CSS class of the badge.
func (t Tier) Class() string {
	return "urgency-" + string(t)
}

// Status is the table-view urgency. It uses its own 30/90 day scale and is
// not derived from Tier.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusUrgent  Status = "urgent"
	StatusWarning Status = "warning"
	StatusGood    Status = "good"
)

// Class is the CSS class of the status pill.
func (s Status) Class() string {
	return "status-" + string(s)
}

const (
	LabelPending = "Fecha por definir"
	LabelExpired = "Vencido"
)

// Classify maps days remaining to a card tier.
func Classify(days *int) Tier {
	switch {
	case days == nil:
		return TierTBD
	case *days < 0:
		return TierPassed
	case *days <= 15:
		return TierHigh
	case *days <= 30:
		return TierMedium
	default:
		return TierLow
	}
}

// Label renders days remaining for badges. The 7-day short form is
// independent of the tier boundaries.
func Label(days *int) string {
	switch {
	case days == nil:
		return LabelPending
	case *days < 0:
		return LabelExpired
	case *days <= 7:
		return strconv.Itoa(*days) + "d"
	default:
		return strconv.Itoa(*days) + " días"
	}
}

// StatusOf maps days remaining to a table status pill.
func StatusOf(days *int) Status {
	switch {
	case days == nil || *days < 0:
		return StatusPassed
	case *days <= 30:
		return StatusUrgent
	case *days <= 90:
		return StatusWarning
	default:
		return StatusGood
	}
}
