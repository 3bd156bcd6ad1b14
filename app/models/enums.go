package models

// AttendanceSession defines the two daily attendance-taking slots.
type AttendanceSession string

const (
	SessionAM AttendanceSession = "am"
	SessionPM AttendanceSession = "pm"
)

// AttendanceStatus defines the possible status values for an attendance mark.
type AttendanceStatus string

const (
	Present      AttendanceStatus = "present"
	Late         AttendanceStatus = "late"
	Absent       AttendanceStatus = "absent"
	AuthAbsent   AttendanceStatus = "auth_absent"
	UnauthAbsent AttendanceStatus = "unauth_absent"
)

// ParseAttendanceStatus maps a request string to a status, reporting whether
// it is one of the known values.
func ParseAttendanceStatus(s string) (AttendanceStatus, bool) {
	switch AttendanceStatus(s) {
	case Present, Late, Absent, AuthAbsent, UnauthAbsent:
		return AttendanceStatus(s), true
	}
	return "", false
}

// CountsAsPresent reports whether a mark keeps the student's present counter
// untouched. Every other status costs one session.
func (s AttendanceStatus) CountsAsPresent() bool {
	return s == Present || s == Late
}

// IsAbsence reports whether a mark denotes any form of absence. Used by the
// positive-award guard.
func (s AttendanceStatus) IsAbsence() bool {
	return s == Absent || s == AuthAbsent || s == UnauthAbsent
}

// BehaviourType defines the polarity of a behaviour entry.
type BehaviourType string

const (
	PositiveBehaviour BehaviourType = "positive"
	NegativeBehaviour BehaviourType = "negative"
)

// DetentionType defines when a detention is served.
type DetentionType string

const (
	LunchDetention       DetentionType = "lunch"
	AfterSchoolDetention DetentionType = "after_school"
)

// DetentionStatus defines the lifecycle of a detention.
type DetentionStatus string

const (
	DetentionScheduled DetentionStatus = "scheduled"
	DetentionAttended  DetentionStatus = "attended"
	DetentionMissed    DetentionStatus = "missed"
)

// UserRole defines the roles a staff account can hold.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
)
