package database

import (
	"database/sql"
	"time"

	"hillcrest-academy/app/models"
	"hillcrest-academy/pkg/timeutil"
)

// CreateBehaviour inserts a behaviour entry and adds its points to the owning
// student's running total, in one transaction.
//
// A positive award is rejected when the student's most recent attendance mark
// for today denotes absence: a student marked absent may not collect rewards
// the same day. Rejection leaves no state behind.
//
// The returned result carries the new total and whether it sits at or below
// the detention threshold. The threshold is a signal for the caller; no
// detention is created here.
func CreateBehaviour(db *sql.DB, behaviour *models.Behaviour) (*models.BehaviourResult, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Per-student serialization, same as RecordAttendance.
	var exists bool
	err = tx.QueryRow(`SELECT true FROM students WHERE id = $1 FOR UPDATE`, behaviour.StudentID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, models.NewNotFoundError("student", behaviour.StudentID)
	}
	if err != nil {
		return nil, err
	}

	if behaviour.Points > 0 {
		status, err := latestAttendanceStatusForDay(tx, behaviour.StudentID, time.Now())
		if err != nil {
			return nil, err
		}
		if status != nil && status.IsAbsence() {
			return nil, models.NewRejectedError("student is marked absent today and may not receive a positive award")
		}
	}

	err = tx.QueryRow(
		`INSERT INTO behaviour (student_id, type, category, points, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, date`,
		behaviour.StudentID, behaviour.Type, behaviour.Category, behaviour.Points, behaviour.Notes,
	).Scan(&behaviour.ID, &behaviour.Date)
	if err != nil {
		return nil, err
	}

	// Atomic increment at the store level; no read-modify-write.
	var total int
	err = tx.QueryRow(
		`UPDATE students
		 SET behaviour_points = behaviour_points + $1, updated_at = now()
		 WHERE id = $2
		 RETURNING behaviour_points`,
		behaviour.Points, behaviour.StudentID,
	).Scan(&total)
	if err != nil {
		return nil, &models.ConsistencyError{Op: "behaviour counter update", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &models.BehaviourResult{
		Behaviour:        behaviour,
		TotalPoints:      total,
		DetentionWarning: models.CrossedDetentionThreshold(total),
	}, nil
}

// latestAttendanceStatusForDay returns the status of the student's most
// recent mark dated on the local day containing t, or nil when the student
// has no mark that day.
func latestAttendanceStatusForDay(tx *sql.Tx, studentID string, t time.Time) (*models.AttendanceStatus, error) {
	var status models.AttendanceStatus
	err := tx.QueryRow(
		`SELECT status FROM attendance
		 WHERE student_id = $1 AND date = $2
		 ORDER BY recorded_at DESC
		 LIMIT 1`,
		studentID, timeutil.LocalDate(t),
	).Scan(&status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func GetBehaviourByStudent(db *sql.DB, studentID string) ([]*models.Behaviour, error) {
	query := `SELECT id, student_id, type, category, points, notes, date
			  FROM behaviour WHERE student_id = $1
			  ORDER BY date DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Behaviour
	for rows.Next() {
		record := &models.Behaviour{}
		if err := rows.Scan(&record.ID, &record.StudentID, &record.Type,
			&record.Category, &record.Points, &record.Notes, &record.Date); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
