package models

import "time"

// TimetableEntry is a scheduled lesson for a tutor group. Independent of the
// attendance and behaviour subsystems.
type TimetableEntry struct {
	ID         string    `json:"id"`
	TutorGroup string    `json:"tutor_group" validate:"required"`
	DayOfWeek  int       `json:"day_of_week" validate:"min=0,max=6"`
	Period     int       `json:"period" validate:"min=1"`
	Subject    string    `json:"subject" validate:"required"`
	Room       string    `json:"room"`
	TeacherID  *string   `json:"teacher_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
