package models

import "time"

// Attendance is an append-only mark for one student, date and session. Marks
// are never updated or deleted in normal operation; the design assumes one
// mark per (student, date, session).
type Attendance struct {
	ID         string            `json:"id"`
	StudentID  string            `json:"student_id" validate:"required,uuid"`
	Date       time.Time         `json:"date" validate:"required"`
	Session    AttendanceSession `json:"session" validate:"required,oneof=am pm"`
	Status     AttendanceStatus  `json:"status" validate:"required,oneof=present late absent auth_absent unauth_absent"`
	RecordedAt time.Time         `json:"recorded_at"`
}
