package database

import (
	"database/sql"
	"fmt"
	"strings"

	"hillcrest-academy/app/models"
)

// StudentFilters represents the optional search predicates for the student
// roster. All supplied filters are combined with AND; no filters returns the
// full roster, most recent first.
type StudentFilters struct {
	Search     string // case-insensitive substring of "first_name last_name"
	YearGroup  *int
	TutorGroup string
}

const studentColumns = `id, first_name, last_name, date_of_birth, year_group, tutor_group, admission_date,
			  attendance_sessions_possible, attendance_sessions_present, behaviour_points, created_at, updated_at`

func CreateStudent(db *sql.DB, student *models.Student) error {
	if student.AttendanceSessionsPossible == 0 {
		student.AttendanceSessionsPossible = models.DefaultSessionsPossible
		student.AttendanceSessionsPresent = models.DefaultSessionsPossible
	}

	query := `INSERT INTO students (first_name, last_name, date_of_birth, year_group, tutor_group, admission_date,
			  attendance_sessions_possible, attendance_sessions_present)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, behaviour_points, created_at, updated_at`

	return db.QueryRow(query,
		student.FirstName, student.LastName, student.DateOfBirth, student.YearGroup,
		student.TutorGroup, student.AdmissionDate,
		student.AttendanceSessionsPossible, student.AttendanceSessionsPresent,
	).Scan(&student.ID, &student.BehaviourPoints, &student.CreatedAt, &student.UpdatedAt)
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	err := db.QueryRow(query, studentID).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.DateOfBirth,
		&student.YearGroup, &student.TutorGroup, &student.AdmissionDate,
		&student.AttendanceSessionsPossible, &student.AttendanceSessionsPresent,
		&student.BehaviourPoints, &student.CreatedAt, &student.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}

// buildStudentFilterQuery assembles the WHERE clause for GetStudentsWithFilters.
// Each optional predicate contributes one condition; conditions are ANDed.
func buildStudentFilterQuery(filters StudentFilters) (string, []interface{}) {
	query := `SELECT ` + studentColumns + ` FROM students`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf(`LOWER(first_name || ' ' || last_name) LIKE $%d`, argIndex))
		args = append(args, "%"+strings.ToLower(filters.Search)+"%")
		argIndex++
	}

	if filters.YearGroup != nil {
		conditions = append(conditions, fmt.Sprintf("year_group = $%d", argIndex))
		args = append(args, *filters.YearGroup)
		argIndex++
	}

	if filters.TutorGroup != "" {
		conditions = append(conditions, fmt.Sprintf("tutor_group = $%d", argIndex))
		args = append(args, filters.TutorGroup)
		argIndex++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC, id DESC"
	return query, args
}

func GetStudentsWithFilters(db *sql.DB, filters StudentFilters) ([]*models.Student, error) {
	query, args := buildStudentFilterQuery(filters)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName, &student.DateOfBirth,
			&student.YearGroup, &student.TutorGroup, &student.AdmissionDate,
			&student.AttendanceSessionsPossible, &student.AttendanceSessionsPresent,
			&student.BehaviourPoints, &student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// DeleteStudent removes a student and every attendance, behaviour and
// detention record it owns, in one transaction. Referential integrity is
// application-enforced.
func DeleteStudent(db *sql.DB, studentID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM students WHERE id = $1`, studentID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.NewNotFoundError("student", studentID)
	}

	for _, table := range []string{"attendance", "behaviour", "detentions"} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE student_id = $1`, studentID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
