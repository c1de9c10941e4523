package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampAttemptLimit(t *testing.T) {
	assert.Equal(t, 100, clampAttemptLimit(0))
	assert.Equal(t, 100, clampAttemptLimit(-5))
	assert.Equal(t, 1, clampAttemptLimit(1))
	assert.Equal(t, 500, clampAttemptLimit(500))

	// Oversized requests clamp to the ceiling, not the default
	assert.Equal(t, 500, clampAttemptLimit(501))
	assert.Equal(t, 500, clampAttemptLimit(100000))
}
