package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hillcrest-academy/app/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func attendanceMark(status models.AttendanceStatus) *models.Attendance {
	return &models.Attendance{
		StudentID: "s1",
		Date:      time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		Session:   models.SessionAM,
		Status:    status,
	}
}

func TestRecordAttendancePresentLeavesCounterUntouched(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT true FROM students").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO attendance").
		WithArgs("s1", "2026-03-11", "am", "present").
		WillReturnRows(sqlmock.NewRows([]string{"id", "recorded_at"}).AddRow("a1", time.Now()))
	mock.ExpectCommit()

	mark := attendanceMark(models.Present)
	require.NoError(t, RecordAttendance(db, mark))
	assert.Equal(t, "a1", mark.ID)
	// No counter UPDATE was expected; any would fail the mock.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordAttendanceAbsenceDecrementsWithFloor(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT true FROM students").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO attendance").
		WithArgs("s1", "2026-03-11", "am", "unauth_absent").
		WillReturnRows(sqlmock.NewRows([]string{"id", "recorded_at"}).AddRow("a2", time.Now()))
	mock.ExpectExec("attendance_sessions_present = GREATEST").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, RecordAttendance(db, attendanceMark(models.UnauthAbsent)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordAttendanceUnknownStudent(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT true FROM students").
		WithArgs("s1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := RecordAttendance(db, attendanceMark(models.Present))
	var notFound *models.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordAttendanceCounterFailureRollsBackMark(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT true FROM students").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO attendance").
		WithArgs("s1", "2026-03-11", "am", "absent").
		WillReturnRows(sqlmock.NewRows([]string{"id", "recorded_at"}).AddRow("a3", time.Now()))
	mock.ExpectExec("attendance_sessions_present = GREATEST").
		WithArgs("s1").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := RecordAttendance(db, attendanceMark(models.Absent))
	var consistency *models.ConsistencyError
	assert.True(t, errors.As(err, &consistency))
	assert.NoError(t, mock.ExpectationsWereMet())
}
