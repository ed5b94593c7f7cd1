package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActionRunner_FillsNotification(t *testing.T) {
	notifier := new(MockNotifier)
	acceptAll(notifier)

	n, err := newRunner(notifier).Run(context.Background(), "approve", "property", "hse_02", func(context.Context) (*domain.Notification, error) {
		return &domain.Notification{Title: "ok"}, nil
	})

	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "approve", n.Action)
	assert.Equal(t, "property", n.Subject)
	assert.Equal(t, "hse_02", n.SubjectID)
	assert.Equal(t, domain.VariantDefault, n.Variant)
	assert.Equal(t, fixedNow, n.CreatedAt)
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestActionRunner_NotifierFailureIsNotFatal(t *testing.T) {
	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("nats down"))

	n, err := newRunner(notifier).Run(context.Background(), "delete", "user", "usr_01", func(context.Context) (*domain.Notification, error) {
		return &domain.Notification{Title: "deleted", Variant: domain.VariantDestructive}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, domain.VariantDestructive, n.Variant)
}

func TestActionRunner_BuildErrorSkipsNotification(t *testing.T) {
	notifier := new(MockNotifier)

	_, err := newRunner(notifier).Run(context.Background(), "approve", "property", "missing", func(context.Context) (*domain.Notification, error) {
		return nil, domain.ErrNotFound
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestActionRunner_CancelledWhileWaiting(t *testing.T) {
	notifier := new(MockNotifier)
	runner := NewActionRunner(notifier, time.Hour, fixedClock, nil, logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, "suspend", "user", "usr_01", func(context.Context) (*domain.Notification, error) {
		t.Error("action body must not run")
		return &domain.Notification{}, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestActionRunner_CancelledAfterBuildSkipsNotification(t *testing.T) {
	notifier := new(MockNotifier)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n, err := newRunner(notifier).Run(ctx, "approve", "property", "hse_02", func(context.Context) (*domain.Notification, error) {
		cancel()
		return &domain.Notification{Title: "approved"}, nil
	})

	assert.Nil(t, n)
	assert.ErrorIs(t, err, context.Canceled)
	notifier.AssertNumberOfCalls(t, "Notify", 0)
}
