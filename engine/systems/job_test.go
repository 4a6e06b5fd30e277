package systems

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobSystemRejectsBadSizes(t *testing.T) {
	_, err := NewJobSystem(0, 1)
	assert.ErrorIs(t, err, ErrNoWorkers)

	_, err = NewJobSystem(1, -1)
	assert.ErrorIs(t, err, ErrNegativeChannelSize)
}

func TestJobSystemRunsEveryJobBeforeShutdownReturns(t *testing.T) {
	js, err := NewJobSystem(3, 4)
	require.NoError(t, err)

	var mutex sync.Mutex
	sum := 0
	failures := 0
	boom := errors.New("boom")

	for i := 1; i <= 10; i++ {
		n := i
		require.NoError(t, js.Submit(JobTask{
			Name: "add",
			OnStart: func() (interface{}, error) {
				if n == 7 {
					return nil, boom
				}
				return n, nil
			},
			OnComplete: func(result interface{}) {
				mutex.Lock()
				sum += result.(int)
				mutex.Unlock()
			},
			OnFailure: func(err error) {
				mutex.Lock()
				if errors.Is(err, boom) {
					failures++
				}
				mutex.Unlock()
			},
		}))
	}

	require.NoError(t, js.Shutdown())
	assert.Equal(t, 55-7, sum)
	assert.Equal(t, 1, failures)
}

func TestJobSystemAfterShutdown(t *testing.T) {
	js, err := NewJobSystem(1, 0)
	require.NoError(t, err)
	require.NoError(t, js.Shutdown())

	assert.ErrorIs(t, js.Shutdown(), ErrJobSystemClosed)
	assert.ErrorIs(t, js.Submit(JobTask{OnStart: func() (interface{}, error) { return nil, nil }}), ErrJobSystemClosed)
}

func TestJobSystemRequiresEntryPoint(t *testing.T) {
	js, err := NewJobSystem(1, 1)
	require.NoError(t, err)
	defer js.Shutdown()

	assert.Error(t, js.Submit(JobTask{Name: "empty"}))
}
