package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates any missing tables. Statements are idempotent so the
// server can run them on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'teacher',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS tutor_groups (
		id TEXT PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL UNIQUE,
		year_group INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS students (
		id TEXT PRIMARY KEY DEFAULT gen_random_uuid(),
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		date_of_birth DATE,
		year_group INT NOT NULL DEFAULT 0,
		tutor_group TEXT NOT NULL DEFAULT '',
		admission_date DATE,
		attendance_sessions_possible INT NOT NULL DEFAULT 188,
		attendance_sessions_present INT NOT NULL DEFAULT 188,
		behaviour_points INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CHECK (attendance_sessions_present >= 0),
		CHECK (attendance_sessions_present <= attendance_sessions_possible)
	)`,

	`CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id TEXT NOT NULL,
		date DATE NOT NULL,
		session VARCHAR(2) NOT NULL,
		status VARCHAR(20) NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_student_date ON attendance (student_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date)`,

	`CREATE TABLE IF NOT EXISTS behaviour (
		id TEXT PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id TEXT NOT NULL,
		type VARCHAR(10) NOT NULL,
		category TEXT NOT NULL,
		points INT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_behaviour_student ON behaviour (student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_behaviour_date ON behaviour (date)`,

	`CREATE TABLE IF NOT EXISTS detentions (
		id TEXT PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id TEXT NOT NULL,
		type VARCHAR(20) NOT NULL,
		date DATE NOT NULL,
		time VARCHAR(10) NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
		reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_detentions_student ON detentions (student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_detentions_date ON detentions (date)`,

	`CREATE TABLE IF NOT EXISTS timetable_entries (
		id TEXT PRIMARY KEY DEFAULT gen_random_uuid(),
		tutor_group TEXT NOT NULL,
		day_of_week INT NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
		period INT NOT NULL,
		subject TEXT NOT NULL,
		room TEXT NOT NULL DEFAULT '',
		teacher_id TEXT REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_timetable_tutor_group ON timetable_entries (tutor_group)`,
}
