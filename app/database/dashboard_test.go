package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"hillcrest-academy/pkg/timeutil"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(5, 0), "empty denominator yields 0, not NaN")
	assert.Equal(t, 0, percent(0, 30))
	assert.Equal(t, 100, percent(30, 30))
	assert.Equal(t, 50, percent(1, 2))
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 67, percent(2, 3), "rounds to nearest, not truncates")

	// Two students at the full 188-session baseline.
	assert.Equal(t, 100, percent(376, 188*2))
	// One mark against the baseline: 187/188 rounds to 99.
	assert.Equal(t, 99, percent(187, 188))
}

// The today/this-week filters compare DATE columns against plain calendar
// dates, never timestamp bounds the session timezone could shift.
func TestGetDashboardStatsFiltersByLocalDate(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery("FROM students").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("FROM attendance").
		WithArgs(timeutil.LocalDate(now), "present", "late").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("FROM behaviour").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(-4))
	mock.ExpectQuery("FROM detentions").
		WithArgs(timeutil.LocalDate(timeutil.StartOfWeek(now)), timeutil.LocalDate(timeutil.EndOfWeek(now))).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	stats := GetDashboardStats(db)
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 50, stats.AttendanceToday)
	assert.Equal(t, -4, stats.BehaviourPointsToday)
	assert.Equal(t, 3, stats.DetentionsThisWeek)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed aggregate falls back to zero without poisoning the others.
func TestGetDashboardStatsAggregateFailureFallsBackToZero(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("FROM students").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery("FROM attendance").
		WillReturnError(assert.AnError)
	mock.ExpectQuery("FROM behaviour").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(7))
	mock.ExpectQuery("FROM detentions").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	stats := GetDashboardStats(db)
	assert.Equal(t, 10, stats.TotalStudents)
	assert.Equal(t, 0, stats.AttendanceToday)
	assert.Equal(t, 7, stats.BehaviourPointsToday)
	assert.NoError(t, mock.ExpectationsWereMet())
}
