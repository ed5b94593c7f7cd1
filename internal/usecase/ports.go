package usecase

import (
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("admin-service/usecase")

// Catalog is the read-only record snapshot the usecases query.
type Catalog interface {
	Users() []domain.User
	Properties() []domain.Property
	Transactions() []domain.Transaction
	Chats() []domain.Chat
	User(id string) (*domain.User, error)
	Property(id string) (*domain.Property, error)
	Chat(id string) (*domain.Chat, error)
}

// Clock returns the current time. Tests pin it.
type Clock func() time.Time
