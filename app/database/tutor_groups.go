package database

import (
	"database/sql"

	"hillcrest-academy/app/models"
)

func CreateTutorGroup(db *sql.DB, group *models.TutorGroup) error {
	query := `INSERT INTO tutor_groups (name, year_group)
			  VALUES ($1, $2)
			  RETURNING id, created_at`

	return db.QueryRow(query, group.Name, group.YearGroup).Scan(&group.ID, &group.CreatedAt)
}

func GetAllTutorGroups(db *sql.DB) ([]*models.TutorGroup, error) {
	query := `SELECT id, name, year_group, created_at FROM tutor_groups ORDER BY year_group, name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.TutorGroup
	for rows.Next() {
		group := &models.TutorGroup{}
		if err := rows.Scan(&group.ID, &group.Name, &group.YearGroup, &group.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

func GetTutorGroupByName(db *sql.DB, name string) (*models.TutorGroup, error) {
	group := &models.TutorGroup{}
	query := `SELECT id, name, year_group, created_at FROM tutor_groups WHERE name = $1`

	err := db.QueryRow(query, name).Scan(&group.ID, &group.Name, &group.YearGroup, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return group, nil
}
