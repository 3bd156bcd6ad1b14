package database

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hillcrest-academy/app/models"
)

func TestCreateBehaviourAddsPointsAtomically(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT true FROM students").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))
	// Negative points skip the absence guard entirely.
	mock.ExpectQuery("INSERT INTO behaviour").
		WithArgs("s1", "negative", "DISRUPTION", -10, "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date"}).AddRow("b1", time.Now()))
	mock.ExpectQuery("SET behaviour_points = behaviour_points").
		WithArgs(-10, "s1").
		WillReturnRows(sqlmock.NewRows([]string{"behaviour_points"}).AddRow(-10))
	mock.ExpectCommit()

	result, err := CreateBehaviour(db, &models.Behaviour{
		StudentID: "s1",
		Type:      models.NegativeBehaviour,
		Category:  "DISRUPTION",
		Points:    -10,
	})
	require.NoError(t, err)
	assert.Equal(t, -10, result.TotalPoints)
	assert.True(t, result.DetentionWarning)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBehaviourPositiveAwardWhilePresent(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT true FROM students").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))
	mock.ExpectQuery("SELECT status FROM attendance").
		WithArgs("s1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("present"))
	mock.ExpectQuery("INSERT INTO behaviour").
		WithArgs("s1", "positive", "MERIT", 5, "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date"}).AddRow("b2", time.Now()))
	mock.ExpectQuery("SET behaviour_points = behaviour_points").
		WithArgs(5, "s1").
		WillReturnRows(sqlmock.NewRows([]string{"behaviour_points"}).AddRow(5))
	mock.ExpectCommit()

	result, err := CreateBehaviour(db, &models.Behaviour{
		StudentID: "s1",
		Type:      models.PositiveBehaviour,
		Category:  "MERIT",
		Points:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalPoints)
	assert.False(t, result.DetentionWarning)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBehaviourPositiveAwardWhileAbsentLeavesNoState(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT true FROM students").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))
	mock.ExpectQuery("SELECT status FROM attendance").
		WithArgs("s1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("unauth_absent"))
	mock.ExpectRollback()

	result, err := CreateBehaviour(db, &models.Behaviour{
		StudentID: "s1",
		Type:      models.PositiveBehaviour,
		Category:  "MERIT",
		Points:    5,
	})
	assert.Nil(t, result)
	var rejected *models.RejectedError
	assert.True(t, errors.As(err, &rejected))
	// Rollback with no INSERT and no counter UPDATE ever issued.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBehaviourCounterFailureRollsBackEntry(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT true FROM students").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO behaviour").
		WithArgs("s1", "negative", "HOMEWORK", -2, "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date"}).AddRow("b3", time.Now()))
	mock.ExpectQuery("SET behaviour_points = behaviour_points").
		WithArgs(-2, "s1").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	result, err := CreateBehaviour(db, &models.Behaviour{
		StudentID: "s1",
		Type:      models.NegativeBehaviour,
		Category:  "HOMEWORK",
		Points:    -2,
	})
	assert.Nil(t, result)
	var consistency *models.ConsistencyError
	assert.True(t, errors.As(err, &consistency))
	assert.NoError(t, mock.ExpectationsWereMet())
}
