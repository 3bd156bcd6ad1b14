package models

// DashboardStats is the dashboard bundle. Each aggregate is computed
// independently from current store state; a failed aggregate falls back to
// its zero value without touching the others.
type DashboardStats struct {
	TotalStudents        int `json:"total_students"`
	AttendanceToday      int `json:"attendance_today"`
	BehaviourPointsToday int `json:"behaviour_points_today"`
	DetentionsThisWeek   int `json:"detentions_this_week"`
}

// TutorGroupAttendance is one row of the per-tutor-group attendance rollup.
// Present is a rounded percentage of the group's possible sessions.
type TutorGroupAttendance struct {
	Name    string `json:"name"`
	Present int    `json:"present"`
}
