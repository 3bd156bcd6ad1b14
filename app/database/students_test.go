package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hillcrest-academy/app/models"
)

func TestBuildStudentFilterQueryNoFilters(t *testing.T) {
	query, args := buildStudentFilterQuery(StudentFilters{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Empty(t, args)
}

func TestBuildStudentFilterQuerySearch(t *testing.T) {
	query, args := buildStudentFilterQuery(StudentFilters{Search: "Ali"})

	assert.Contains(t, query, `LOWER(first_name || ' ' || last_name) LIKE $1`)
	assert.Equal(t, []interface{}{"%ali%"}, args, "search is lowercased for case-insensitive match")
}

func TestBuildStudentFilterQueryAllFilters(t *testing.T) {
	year := 7
	query, args := buildStudentFilterQuery(StudentFilters{
		Search:     "smith",
		YearGroup:  &year,
		TutorGroup: "7A",
	})

	// All supplied predicates are ANDed, with stable placeholder numbering.
	assert.Contains(t, query, "LIKE $1")
	assert.Contains(t, query, "year_group = $2")
	assert.Contains(t, query, "tutor_group = $3")
	assert.Contains(t, query, " AND ")
	assert.Equal(t, []interface{}{"%smith%", 7, "7A"}, args)
}

func TestBuildStudentFilterQueryYearGroupOnly(t *testing.T) {
	year := 11
	query, args := buildStudentFilterQuery(StudentFilters{YearGroup: &year})

	assert.Contains(t, query, "year_group = $1")
	assert.NotContains(t, query, "LIKE")
	assert.Equal(t, []interface{}{11}, args)
}

func TestDeleteStudentCascadesOwnedRecords(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM students").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM attendance").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM behaviour").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM detentions").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, DeleteStudent(db, "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStudentUnknownID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM students").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := DeleteStudent(db, "ghost")
	var notFound *models.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
