package models

import "time"

// DefaultSessionsPossible is the number of attendance sessions in a school
// year. New students start at the all-present baseline and only move down.
const DefaultSessionsPossible = 188

// Student carries three derived counters alongside its enrollment fields.
// attendance_sessions_present and behaviour_points are mutated only inside
// the same transaction as the attendance or behaviour insert that moves them.
type Student struct {
	ID                         string     `json:"id" validate:"required,uuid"`
	FirstName                  string     `json:"first_name" validate:"required"`
	LastName                   string     `json:"last_name" validate:"required"`
	DateOfBirth                *time.Time `json:"date_of_birth,omitempty"`
	YearGroup                  int        `json:"year_group"`
	TutorGroup                 string     `json:"tutor_group"`
	AdmissionDate              *time.Time `json:"admission_date,omitempty"`
	AttendanceSessionsPossible int        `json:"attendance_sessions_possible"`
	AttendanceSessionsPresent  int        `json:"attendance_sessions_present"`
	BehaviourPoints            int        `json:"behaviour_points"`
	CreatedAt                  time.Time  `json:"created_at"`
	UpdatedAt                  time.Time  `json:"updated_at"`
}

type TutorGroup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	YearGroup int       `json:"year_group"`
	CreatedAt time.Time `json:"created_at"`
}
