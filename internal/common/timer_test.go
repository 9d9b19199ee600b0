package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer(t *testing.T) {
	timer := NewNamedTimer("encode_stage")
	assert.Equal(t, "encode_stage", timer.Name())

	// Sleep for a short duration
	time.Sleep(10 * time.Millisecond)

	duration := timer.Stop()
	assert.GreaterOrEqual(t, duration, 10*time.Millisecond)
	assert.Equal(t, duration, timer.Duration())

	str := timer.String()
	assert.Contains(t, str, "encode_stage")
	assert.Contains(t, str, "ms")
}

func TestTimer_Unnamed(t *testing.T) {
	timer := NewTimer()
	assert.Empty(t, timer.Name())

	time.Sleep(time.Millisecond)

	duration := timer.Stop()
	assert.Greater(t, duration, time.Duration(0))
	assert.Equal(t, duration.String(), timer.String())
}
