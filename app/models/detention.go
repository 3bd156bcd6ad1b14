package models

import "time"

// Detention is a mutable sanction record; status and details may be patched
// after creation.
type Detention struct {
	ID        string          `json:"id"`
	StudentID string          `json:"student_id" validate:"required,uuid"`
	Type      DetentionType   `json:"type" validate:"required,oneof=lunch after_school"`
	Date      time.Time       `json:"date" validate:"required"`
	Time      string          `json:"time"`
	Location  string          `json:"location"`
	Status    DetentionStatus `json:"status"`
	Reason    string          `json:"reason,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DetentionPatch carries the optional fields of a detention update. Nil
// fields are left unchanged.
type DetentionPatch struct {
	Type     *DetentionType   `json:"type,omitempty"`
	Date     *time.Time       `json:"date,omitempty"`
	Time     *string          `json:"time,omitempty"`
	Location *string          `json:"location,omitempty"`
	Status   *DetentionStatus `json:"status,omitempty"`
	Reason   *string          `json:"reason,omitempty"`
}
