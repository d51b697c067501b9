package mutex

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lockstep-org/lockstep/clock/clocktest"
	"github.com/lockstep-org/lockstep/logging"
)

// testAdder is a trivial, unsynchronized Adder for assertions
type testAdder struct {
	value float64
}

func (ta *testAdder) Add(delta float64) {
	ta.value += delta
}

func testInstrumentDefaults(t *testing.T) {
	assert := assert.New(t)
	im := Instrument(New())

	im.Lock()
	assert.False(im.TryLock())
	assert.NoError(im.Unlock())
}

func testInstrumentNilOptions(t *testing.T) {
	assert := assert.New(t)
	im := Instrument(New(), WithHolds(nil), WithErrors(nil), WithLogger(nil))

	im.Lock()
	assert.NoError(im.Unlock())
}

func testInstrumentHolds(t *testing.T) {
	var (
		assert = assert.New(t)
		holds  = new(testAdder)
		im     = Instrument(New(), WithHolds(holds), WithLogger(logging.NewTestLogger(nil, t)))
	)

	im.Lock()
	assert.Equal(1.0, holds.value)
	assert.NoError(im.Unlock())
	assert.Equal(0.0, holds.value)

	assert.True(im.TryLock())
	assert.Equal(1.0, holds.value)
	assert.NoError(im.Unlock())

	assert.NoError(im.LockWait(make(chan time.Time)))
	assert.Equal(1.0, holds.value)
	assert.NoError(im.Unlock())

	assert.NoError(im.LockCtx(context.Background()))
	assert.Equal(1.0, holds.value)
	assert.NoError(im.Unlock())
	assert.Equal(0.0, holds.value)
}

func testInstrumentErrors(t *testing.T) {
	var (
		assert = assert.New(t)
		errors = new(testAdder)
		im     = Instrument(New(), WithErrors(errors), WithLogger(logging.NewTestLogger(nil, t)))
	)

	assert.Equal(ErrNotOwner, im.Unlock())
	assert.Equal(1.0, errors.value)

	im.Lock()
	assert.False(im.TryLock())
	assert.Equal(2.0, errors.value)

	timer := make(chan time.Time, 1)
	timer <- time.Time{}
	assert.Equal(ErrTimeout, im.LockWait(timer))
	assert.Equal(3.0, errors.value)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(context.Canceled, im.LockCtx(ctx))
	assert.Equal(4.0, errors.value)

	assert.NoError(im.Unlock())
	assert.Equal(4.0, errors.value)
}

// testObserver is a trivial, unsynchronized Observer for assertions
type testObserver struct {
	observations []float64
}

func (to *testObserver) Observe(value float64) {
	to.observations = append(to.observations, value)
}

func testInstrumentHoldDuration(t *testing.T) {
	var (
		assert = assert.New(t)

		start        = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
		c            = new(clocktest.Mock)
		holdDuration = new(testObserver)

		im = Instrument(New(), WithHoldDuration(holdDuration, c))
	)

	c.OnNow(start).Once()
	im.Lock()

	c.OnNow(start.Add(250 * time.Millisecond)).Once()
	assert.NoError(im.Unlock())

	assert.Equal([]float64{0.25}, holdDuration.observations)
	c.AssertExpectations(t)
}

// syncObserver is a goroutine-safe Observer for contended assertions
type syncObserver struct {
	lock         sync.Mutex
	observations []float64
}

func (so *syncObserver) Observe(value float64) {
	so.lock.Lock()
	so.observations = append(so.observations, value)
	so.lock.Unlock()
}

func testInstrumentHoldDurationContended(t *testing.T) {
	const (
		routineCount = 4
		iterations   = 50
	)

	var (
		assert = assert.New(t)

		holdDuration = new(syncObserver)
		im           = Instrument(New(), WithHoldDuration(holdDuration, nil))
		wg           = new(sync.WaitGroup)
	)

	wg.Add(routineCount)
	for i := 0; i < routineCount; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				im.Lock()
				if err := im.Unlock(); err != nil {
					panic(err)
				}
			}
		}()
	}

	wg.Wait()

	assert.Len(holdDuration.observations, routineCount*iterations)
	for _, observed := range holdDuration.observations {
		assert.GreaterOrEqual(observed, 0.0)
	}
}

func testInstrumentHoldDurationDefaults(t *testing.T) {
	assert := assert.New(t)
	im := Instrument(New(), WithHoldDuration(nil, nil))

	im.Lock()
	assert.NoError(im.Unlock())
}

func TestInstrument(t *testing.T) {
	t.Run("Defaults", testInstrumentDefaults)
	t.Run("NilOptions", testInstrumentNilOptions)
	t.Run("Holds", testInstrumentHolds)
	t.Run("Errors", testInstrumentErrors)
	t.Run("HoldDuration", testInstrumentHoldDuration)
	t.Run("HoldDurationContended", testInstrumentHoldDurationContended)
	t.Run("HoldDurationDefaults", testInstrumentHoldDurationDefaults)
}
