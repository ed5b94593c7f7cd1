package domain

import (
	"context"
	"time"
)

// RecordSource supplies the read-only collections the admin views work on.
type RecordSource interface {
	Users(ctx context.Context) ([]User, error)
	Properties(ctx context.Context) ([]Property, error)
	Transactions(ctx context.Context) ([]Transaction, error)
	Chats(ctx context.Context) ([]Chat, error)
}

// QueryCache memoizes serialized list results.
type QueryCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Notifier delivers the notification produced by a simulated action.
type Notifier interface {
	Notify(ctx context.Context, n *Notification) error
}

// ImageResolver turns a stored image reference into a URL a browser can load.
type ImageResolver interface {
	ResolveURL(ctx context.Context, ref string) (string, error)
}
