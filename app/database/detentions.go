package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"hillcrest-academy/app/models"
	"hillcrest-academy/pkg/timeutil"
)

const detentionColumns = `id, student_id, type, date, time, location, status, reason, created_at, updated_at`

func CreateDetention(db *sql.DB, detention *models.Detention) error {
	if detention.Status == "" {
		detention.Status = models.DetentionScheduled
	}

	query := `INSERT INTO detentions (student_id, type, date, time, location, status, reason)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		detention.StudentID, detention.Type, detention.Date.Format("2006-01-02"), detention.Time,
		detention.Location, detention.Status, detention.Reason,
	).Scan(&detention.ID, &detention.CreatedAt, &detention.UpdatedAt)
}

func GetDetentionByID(db *sql.DB, detentionID string) (*models.Detention, error) {
	detention := &models.Detention{}
	query := `SELECT ` + detentionColumns + ` FROM detentions WHERE id = $1`

	err := db.QueryRow(query, detentionID).Scan(
		&detention.ID, &detention.StudentID, &detention.Type, &detention.Date,
		&detention.Time, &detention.Location, &detention.Status, &detention.Reason,
		&detention.CreatedAt, &detention.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return detention, nil
}

// UpdateDetention applies the non-nil fields of the patch. Returns
// NotFoundError when the detention does not exist.
func UpdateDetention(db *sql.DB, detentionID string, patch models.DetentionPatch) (*models.Detention, error) {
	var sets []string
	var args []interface{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if patch.Type != nil {
		addSet("type", *patch.Type)
	}
	if patch.Date != nil {
		addSet("date", patch.Date.Format("2006-01-02"))
	}
	if patch.Time != nil {
		addSet("time", *patch.Time)
	}
	if patch.Location != nil {
		addSet("location", *patch.Location)
	}
	if patch.Status != nil {
		addSet("status", *patch.Status)
	}
	if patch.Reason != nil {
		addSet("reason", *patch.Reason)
	}

	if len(sets) == 0 {
		detention, err := GetDetentionByID(db, detentionID)
		if err != nil {
			return nil, err
		}
		if detention == nil {
			return nil, models.NewNotFoundError("detention", detentionID)
		}
		return detention, nil
	}

	sets = append(sets, "updated_at = now()")
	query := fmt.Sprintf(`UPDATE detentions SET %s WHERE id = $%d RETURNING `+detentionColumns,
		strings.Join(sets, ", "), argIndex)
	args = append(args, detentionID)

	detention := &models.Detention{}
	err := db.QueryRow(query, args...).Scan(
		&detention.ID, &detention.StudentID, &detention.Type, &detention.Date,
		&detention.Time, &detention.Location, &detention.Status, &detention.Reason,
		&detention.CreatedAt, &detention.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.NewNotFoundError("detention", detentionID)
	}
	if err != nil {
		return nil, err
	}
	return detention, nil
}

func GetAllDetentions(db *sql.DB) ([]*models.Detention, error) {
	return queryDetentions(db, `SELECT `+detentionColumns+` FROM detentions ORDER BY date DESC, created_at DESC`)
}

func GetDetentionsByStudent(db *sql.DB, studentID string) ([]*models.Detention, error) {
	return queryDetentions(db,
		`SELECT `+detentionColumns+` FROM detentions WHERE student_id = $1 ORDER BY date DESC, created_at DESC`,
		studentID)
}

func queryDetentions(db *sql.DB, query string, args ...interface{}) ([]*models.Detention, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var detentions []*models.Detention
	for rows.Next() {
		detention := &models.Detention{}
		if err := rows.Scan(
			&detention.ID, &detention.StudentID, &detention.Type, &detention.Date,
			&detention.Time, &detention.Location, &detention.Status, &detention.Reason,
			&detention.CreatedAt, &detention.UpdatedAt,
		); err != nil {
			return nil, err
		}
		detentions = append(detentions, detention)
	}
	return detentions, rows.Err()
}

// MarkOverdueDetentionsMissed flips past-dated detentions still scheduled to
// missed. Run by the nightly sweep.
func MarkOverdueDetentionsMissed(db *sql.DB, before time.Time) (int64, error) {
	res, err := db.Exec(
		`UPDATE detentions SET status = $1, updated_at = now()
		 WHERE status = $2 AND date < $3`,
		models.DetentionMissed, models.DetentionScheduled, timeutil.LocalDate(before),
	)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Printf("MarkOverdueDetentionsMissed: rows affected unavailable: %v", err)
		return 0, nil
	}
	return affected, nil
}
