package database

import (
	"database/sql"

	"hillcrest-academy/app/models"
)

// RecordAttendance inserts an attendance mark and keeps the owning student's
// present counter consistent with it, in one transaction. A mark that is
// neither present nor late costs one session, floored at zero; present and
// late marks leave the counter untouched.
//
// Replaying the same logical mark decrements again; the design assumes marks
// arrive exactly once per (student, date, session).
func RecordAttendance(db *sql.DB, attendance *models.Attendance) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the student row so concurrent events for the same student
	// serialize, and confirm the student exists.
	var exists bool
	err = tx.QueryRow(`SELECT true FROM students WHERE id = $1 FOR UPDATE`, attendance.StudentID).Scan(&exists)
	if err == sql.ErrNoRows {
		return models.NewNotFoundError("student", attendance.StudentID)
	}
	if err != nil {
		return err
	}

	// The date goes over the wire as a plain calendar date; a timestamp
	// would be cast through the session timezone.
	err = tx.QueryRow(
		`INSERT INTO attendance (student_id, date, session, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, recorded_at`,
		attendance.StudentID, attendance.Date.Format("2006-01-02"), attendance.Session, attendance.Status,
	).Scan(&attendance.ID, &attendance.RecordedAt)
	if err != nil {
		return err
	}

	if !attendance.Status.CountsAsPresent() {
		_, err = tx.Exec(
			`UPDATE students
			 SET attendance_sessions_present = GREATEST(attendance_sessions_present - 1, 0),
			     updated_at = now()
			 WHERE id = $1`,
			attendance.StudentID,
		)
		if err != nil {
			// Roll back the mark as well; the log and the counter must
			// never diverge.
			return &models.ConsistencyError{Op: "attendance counter update", Err: err}
		}
	}

	return tx.Commit()
}

func GetAttendanceByStudent(db *sql.DB, studentID string) ([]*models.Attendance, error) {
	query := `SELECT id, student_id, date, session, status, recorded_at
			  FROM attendance WHERE student_id = $1
			  ORDER BY date DESC, recorded_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		record := &models.Attendance{}
		if err := rows.Scan(&record.ID, &record.StudentID, &record.Date,
			&record.Session, &record.Status, &record.RecordedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
