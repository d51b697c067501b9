package task

import (
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startable returns a runnable that starts a goroutine which runs until shutdown
func startable(runCount *uint32) Runnable {
	return RunnableFunc(func(lifecycle *Lifecycle) error {
		atomic.AddUint32(runCount, 1)
		lifecycle.Go(func(shutdown <-chan struct{}) {
			<-shutdown
		})

		return nil
	})
}

// unstartable returns a runnable that fails to start
func unstartable(runCount *uint32) Runnable {
	return RunnableFunc(func(*Lifecycle) error {
		atomic.AddUint32(runCount, 1)
		return errors.New("expected start failure")
	})
}

func TestRunnableSet(t *testing.T) {
	var runCount uint32
	testData := []struct {
		set              RunnableSet
		expectsError     bool
		expectedRunCount uint32
	}{
		{nil, false, 0},
		{RunnableSet{}, false, 0},
		{RunnableSet{startable(&runCount)}, false, 1},
		{RunnableSet{unstartable(&runCount)}, true, 1},
		{RunnableSet{startable(&runCount), startable(&runCount)}, false, 2},
		{RunnableSet{startable(&runCount), unstartable(&runCount), startable(&runCount)}, true, 2},
	}

	for _, record := range testData {
		assert := assert.New(t)
		atomic.StoreUint32(&runCount, 0)

		lifecycle, err := Execute(record.set)
		lifecycle.Stop()

		assert.Equal(record.expectsError, err != nil)
		assert.Equal(record.expectedRunCount, atomic.LoadUint32(&runCount))
		assert.True(lifecycle.WaitTimeout(2 * time.Second))
	}
}

func testExecuteSuccess(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		runCount uint32
	)

	lifecycle, err := Execute(startable(&runCount))
	require.NoError(err)
	require.NotNil(lifecycle)
	require.NotNil(lifecycle.Shutdown())
	assert.Equal(uint32(1), atomic.LoadUint32(&runCount))

	lifecycle.Stop()
	assert.True(lifecycle.WaitTimeout(2 * time.Second))
}

func testExecuteFail(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		runCount uint32
	)

	lifecycle, err := Execute(unstartable(&runCount))
	assert.Error(err)
	require.NotNil(lifecycle)

	lifecycle.Stop()
	assert.True(lifecycle.WaitTimeout(2 * time.Second))
}

func TestExecute(t *testing.T) {
	t.Run("Success", testExecuteSuccess)
	t.Run("Fail", testExecuteFail)
}

func TestAwait(t *testing.T) {
	var (
		assert = assert.New(t)

		stopped  = new(WaitGroup)
		returned = make(chan error, 1)
	)

	stopped.Add(1)
	work := RunnableFunc(func(lifecycle *Lifecycle) error {
		lifecycle.Go(func(shutdown <-chan struct{}) {
			defer stopped.Done()
			<-shutdown
		})

		return nil
	})

	signals := make(chan os.Signal, 1)
	go func() {
		returned <- Await(work, signals)
	}()

	// simulate a ctrl+c
	signals <- os.Interrupt

	assert.True(stopped.WaitTimeout(2 * time.Second))

	select {
	case err := <-returned:
		assert.NoError(err)
	case <-time.After(2 * time.Second):
		assert.FailNow("Await did not return after shutdown")
	}
}

func TestWaitGroup(t *testing.T) {
	var (
		assert = assert.New(t)
		wg     = new(WaitGroup)
	)

	wg.Add(1)
	go func() {
		time.Sleep(100 * time.Millisecond)
		wg.Done()
	}()

	assert.True(wg.WaitTimeout(2 * time.Second))

	wg.Add(1)
	assert.False(wg.WaitTimeout(50 * time.Millisecond))
	wg.Done()
}
