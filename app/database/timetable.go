package database

import (
	"database/sql"

	"hillcrest-academy/app/models"
)

const timetableColumns = `id, tutor_group, day_of_week, period, subject, room, teacher_id, created_at, updated_at`

func CreateTimetableEntry(db *sql.DB, entry *models.TimetableEntry) error {
	query := `INSERT INTO timetable_entries (tutor_group, day_of_week, period, subject, room, teacher_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		entry.TutorGroup, entry.DayOfWeek, entry.Period, entry.Subject, entry.Room, entry.TeacherID,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

func GetTimetableEntryByID(db *sql.DB, entryID string) (*models.TimetableEntry, error) {
	entry := &models.TimetableEntry{}
	query := `SELECT ` + timetableColumns + ` FROM timetable_entries WHERE id = $1`

	err := db.QueryRow(query, entryID).Scan(
		&entry.ID, &entry.TutorGroup, &entry.DayOfWeek, &entry.Period,
		&entry.Subject, &entry.Room, &entry.TeacherID, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func UpdateTimetableEntry(db *sql.DB, entry *models.TimetableEntry) error {
	query := `UPDATE timetable_entries
			  SET tutor_group = $1, day_of_week = $2, period = $3, subject = $4, room = $5,
			      teacher_id = $6, updated_at = now()
			  WHERE id = $7
			  RETURNING updated_at`

	err := db.QueryRow(query,
		entry.TutorGroup, entry.DayOfWeek, entry.Period, entry.Subject, entry.Room,
		entry.TeacherID, entry.ID,
	).Scan(&entry.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.NewNotFoundError("timetable entry", entry.ID)
	}
	return err
}

func DeleteTimetableEntry(db *sql.DB, entryID string) error {
	res, err := db.Exec(`DELETE FROM timetable_entries WHERE id = $1`, entryID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.NewNotFoundError("timetable entry", entryID)
	}
	return nil
}

func GetAllTimetableEntries(db *sql.DB) ([]*models.TimetableEntry, error) {
	return queryTimetableEntries(db,
		`SELECT `+timetableColumns+` FROM timetable_entries ORDER BY day_of_week, period`)
}

func GetTimetableEntriesByTutorGroup(db *sql.DB, tutorGroup string) ([]*models.TimetableEntry, error) {
	return queryTimetableEntries(db,
		`SELECT `+timetableColumns+` FROM timetable_entries WHERE tutor_group = $1 ORDER BY day_of_week, period`,
		tutorGroup)
}

func queryTimetableEntries(db *sql.DB, query string, args ...interface{}) ([]*models.TimetableEntry, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.TimetableEntry
	for rows.Next() {
		entry := &models.TimetableEntry{}
		if err := rows.Scan(
			&entry.ID, &entry.TutorGroup, &entry.DayOfWeek, &entry.Period,
			&entry.Subject, &entry.Room, &entry.TeacherID, &entry.CreatedAt, &entry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
