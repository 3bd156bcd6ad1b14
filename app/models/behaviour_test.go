package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossedDetentionThreshold(t *testing.T) {
	assert.False(t, CrossedDetentionThreshold(0))
	assert.False(t, CrossedDetentionThreshold(-9))
	assert.True(t, CrossedDetentionThreshold(-10))
	assert.True(t, CrossedDetentionThreshold(-25))
	assert.False(t, CrossedDetentionThreshold(10))
}
