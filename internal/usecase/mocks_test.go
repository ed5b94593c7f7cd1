package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/adapter/repository/memory"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/catalog"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockQueryCache struct{ mock.Mock }

func (m *MockQueryCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

func (m *MockQueryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

type MockImageResolver struct{ mock.Mock }

func (m *MockImageResolver) ResolveURL(ctx context.Context, ref string) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

var fixedNow = time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func seedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	src, err := memory.Load("")
	require.NoError(t, err)
	cat, err := catalog.Load(context.Background(), src)
	require.NoError(t, err)
	return cat
}

func newRunner(n domain.Notifier) *ActionRunner {
	return NewActionRunner(n, 0, fixedClock, nil, logger.NewNop())
}

func newLister() *Lister {
	return NewLister(nil, time.Minute, nil, logger.NewNop())
}

func acceptAll(m *MockNotifier) {
	m.On("Notify", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil)
}
