package database

import (
	"database/sql"
	"log"
	"math"
	"time"

	"hillcrest-academy/app/models"
	"hillcrest-academy/pkg/timeutil"
)

// GetDashboardStats computes the dashboard bundle fresh from store state.
// Each aggregate runs its own query; when one fails it is logged and reported
// as zero so the rest of the bundle stays intact.
func GetDashboardStats(db *sql.DB) *models.DashboardStats {
	stats := &models.DashboardStats{}
	now := time.Now()

	if err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&stats.TotalStudents); err != nil {
		log.Printf("dashboard: total students: %v", err)
	}

	// Share of students with a present or late mark today, rounded. Zero
	// when there are no students; never a division by zero.
	var presentToday int
	err := db.QueryRow(
		`SELECT COUNT(DISTINCT student_id) FROM attendance
		 WHERE date = $1 AND status IN ($2, $3)`,
		timeutil.LocalDate(now), models.Present, models.Late,
	).Scan(&presentToday)
	if err != nil {
		log.Printf("dashboard: attendance today: %v", err)
	} else {
		stats.AttendanceToday = percent(presentToday, stats.TotalStudents)
	}

	err = db.QueryRow(
		`SELECT COALESCE(SUM(points), 0) FROM behaviour WHERE date >= $1`,
		timeutil.StartOfDay(now),
	).Scan(&stats.BehaviourPointsToday)
	if err != nil {
		log.Printf("dashboard: behaviour points today: %v", err)
	}

	err = db.QueryRow(
		`SELECT COUNT(*) FROM detentions WHERE date >= $1 AND date < $2`,
		timeutil.LocalDate(timeutil.StartOfWeek(now)), timeutil.LocalDate(timeutil.EndOfWeek(now)),
	).Scan(&stats.DetentionsThisWeek)
	if err != nil {
		log.Printf("dashboard: detentions this week: %v", err)
	}

	return stats
}

// GetTutorGroupAttendance returns the attendance percentage per tutor group,
// computed from the cached present counters against the full-year baseline.
func GetTutorGroupAttendance(db *sql.DB) ([]*models.TutorGroupAttendance, error) {
	query := `SELECT tutor_group, COUNT(*), COALESCE(SUM(attendance_sessions_present), 0)
			  FROM students
			  WHERE tutor_group <> ''
			  GROUP BY tutor_group
			  ORDER BY tutor_group`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.TutorGroupAttendance
	for rows.Next() {
		var name string
		var members, present int
		if err := rows.Scan(&name, &members, &present); err != nil {
			return nil, err
		}
		groups = append(groups, &models.TutorGroupAttendance{
			Name:    name,
			Present: percent(present, models.DefaultSessionsPossible*members),
		})
	}
	return groups, rows.Err()
}

// percent rounds 100*numerator/denominator to the nearest integer, returning
// 0 for an empty denominator instead of propagating NaN.
func percent(numerator, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(numerator) / float64(denominator)))
}
