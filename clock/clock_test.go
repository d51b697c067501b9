package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		c = System()
	)

	require.NotNil(c)
	assert.False(c.Now().IsZero())
	c.Sleep(time.Millisecond)

	timer := c.NewTimer(time.Millisecond)
	require.NotNil(timer)

	select {
	case <-timer.C():
		// fired
	case <-time.After(time.Second):
		assert.FailNow("the system timer did not fire")
	}

	assert.False(timer.Stop())
	timer.Reset(time.Hour)
	assert.True(timer.Stop())
}

func TestWrapTimer(t *testing.T) {
	var (
		require = require.New(t)

		timer = WrapTimer(time.NewTimer(time.Millisecond))
	)

	require.NotNil(timer)

	select {
	case <-timer.C():
		// fired
	case <-time.After(time.Second):
		require.FailNow("the wrapped timer did not fire")
	}
}
