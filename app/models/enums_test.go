package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAttendanceStatus(t *testing.T) {
	for _, valid := range []string{"present", "late", "absent", "auth_absent", "unauth_absent"} {
		status, ok := ParseAttendanceStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, AttendanceStatus(valid), status)
	}

	for _, invalid := range []string{"", "PRESENT", "excused", "sick"} {
		_, ok := ParseAttendanceStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestCountsAsPresent(t *testing.T) {
	assert.True(t, Present.CountsAsPresent())
	assert.True(t, Late.CountsAsPresent())
	assert.False(t, Absent.CountsAsPresent())
	assert.False(t, AuthAbsent.CountsAsPresent())
	assert.False(t, UnauthAbsent.CountsAsPresent())
}

func TestIsAbsence(t *testing.T) {
	// The positive-award guard treats every absence variant the same way.
	assert.True(t, Absent.IsAbsence())
	assert.True(t, AuthAbsent.IsAbsence())
	assert.True(t, UnauthAbsent.IsAbsence())
	assert.False(t, Present.IsAbsence())
	assert.False(t, Late.IsAbsence())
}
