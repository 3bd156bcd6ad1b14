package models

import "time"

// DetentionThreshold is the behaviour-point total at or below which a
// detention-worthy condition is flagged to the caller. The flag is a signal
// only; no detention is created automatically.
const DetentionThreshold = -10

// Behaviour is an append-only conduct entry. By convention points are
// positive for positive entries and negative for negative ones, but the
// store does not enforce it.
type Behaviour struct {
	ID        string        `json:"id"`
	StudentID string        `json:"student_id" validate:"required,uuid"`
	Type      BehaviourType `json:"type" validate:"required,oneof=positive negative"`
	Category  string        `json:"category" validate:"required"`
	Points    int           `json:"points"`
	Notes     string        `json:"notes,omitempty"`
	Date      time.Time     `json:"date"`
}

// BehaviourResult reports the outcome of a behaviour insert: the stored
// entry, the student's new running total and whether that total crossed the
// detention threshold.
type BehaviourResult struct {
	Behaviour        *Behaviour `json:"behaviour"`
	TotalPoints      int        `json:"total_points"`
	DetentionWarning bool       `json:"detention_warning"`
}

// CrossedDetentionThreshold reports whether a points total sits at or below
// the detention threshold.
func CrossedDetentionThreshold(total int) bool {
	return total <= DetentionThreshold
}
