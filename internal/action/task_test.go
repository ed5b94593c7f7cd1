package action

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_ResolvesWithValue(t *testing.T) {
	task := Start(context.Background(), 5*time.Millisecond, func(context.Context) (string, error) {
		return "Propriété approuvée", nil
	})

	got, err := task.Await(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Propriété approuvée", got)
}

func TestTask_ResolvesWithError(t *testing.T) {
	boom := errors.New("boom")
	task := Start(context.Background(), 0, func(context.Context) (int, error) {
		return 0, boom
	})

	_, err := task.Await(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestTask_CancelledDuringDelaySkipsWork(t *testing.T) {
	var ran atomic.Bool
	ctx, cancel := context.WithCancel(context.Background())
	task := Start(ctx, time.Hour, func(context.Context) (int, error) {
		ran.Store(true)
		return 1, nil
	})

	cancel()
	<-task.Done()

	_, err := task.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran.Load())
}

func TestTask_AwaitRespectsCallerContext(t *testing.T) {
	taskCtx, stop := context.WithCancel(context.Background())
	defer stop()
	task := Start(taskCtx, time.Hour, func(context.Context) (int, error) { return 1, nil })
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := task.Await(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSleep(t *testing.T) {
	assert.NoError(t, Sleep(context.Background(), 0))
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
	assert.ErrorIs(t, Sleep(ctx, 0), context.Canceled)
}
