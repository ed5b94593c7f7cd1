// Package catalog holds the read-only snapshot of every collection the admin
// views work on, with cross-record references resolved.
package catalog

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
)

// Catalog is immutable once built. The slices it hands out are shared between
// callers and must not be modified.
type Catalog struct {
	users        []domain.User
	properties   []domain.Property
	transactions []domain.Transaction
	chats        []domain.Chat

	userByID     map[string]int
	propertyByID map[string]int
	chatByID     map[string]int
}

// Load reads every collection from src and builds the catalog.
func Load(ctx context.Context, src domain.RecordSource) (*Catalog, error) {
	users, err := src.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	properties, err := src.Properties(ctx)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}
	transactions, err := src.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	chats, err := src.Chats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load chats: %w", err)
	}
	return New(users, properties, transactions, chats)
}

// New copies the collections, checks id uniqueness and resolves references.
// Dangling references are left nil.
func New(users []domain.User, properties []domain.Property, transactions []domain.Transaction, chats []domain.Chat) (*Catalog, error) {
	c := &Catalog{
		users:        append([]domain.User(nil), users...),
		properties:   append([]domain.Property(nil), properties...),
		transactions: append([]domain.Transaction(nil), transactions...),
		chats:        append([]domain.Chat(nil), chats...),
	}

	var err error
	if c.userByID, err = index(c.users, func(u *domain.User) string { return u.ID }); err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	if c.propertyByID, err = index(c.properties, func(p *domain.Property) string { return p.ID }); err != nil {
		return nil, fmt.Errorf("properties: %w", err)
	}
	if _, err = index(c.transactions, func(t *domain.Transaction) string { return t.ID }); err != nil {
		return nil, fmt.Errorf("transactions: %w", err)
	}
	if c.chatByID, err = index(c.chats, func(ch *domain.Chat) string { return ch.ID }); err != nil {
		return nil, fmt.Errorf("chats: %w", err)
	}

	c.resolve()
	return c, nil
}

func index[T any](records []T, id func(*T) string) (map[string]int, error) {
	idx := make(map[string]int, len(records))
	for i := range records {
		key := id(&records[i])
		if _, dup := idx[key]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidInput, key)
		}
		idx[key] = i
	}
	return idx, nil
}

func (c *Catalog) resolve() {
	for i := range c.properties {
		p := &c.properties[i]
		p.Landlord = c.userRef(p.LandlordID)
	}
	for i := range c.transactions {
		t := &c.transactions[i]
		t.User = c.userRef(t.UserID)
	}
	for i := range c.chats {
		ch := &c.chats[i]
		ch.Renter = c.userRef(ch.RenterID)
		ch.Landlord = c.userRef(ch.LandlordID)
		ch.House = c.propertyRef(ch.HouseID)

		msgs := make([]domain.ChatMessage, len(ch.Messages))
		copy(msgs, ch.Messages)
		for j := range msgs {
			msgs[j].Sender = c.userRef(msgs[j].SenderID)
			msgs[j].Receiver = c.userRef(msgs[j].ReceiverID)
		}
		ch.Messages = msgs
	}
}

func (c *Catalog) userRef(id string) *domain.User {
	if i, ok := c.userByID[id]; ok {
		return &c.users[i]
	}
	return nil
}

func (c *Catalog) propertyRef(id string) *domain.Property {
	if i, ok := c.propertyByID[id]; ok {
		return &c.properties[i]
	}
	return nil
}

func (c *Catalog) Users() []domain.User               { return c.users }
func (c *Catalog) Properties() []domain.Property      { return c.properties }
func (c *Catalog) Transactions() []domain.Transaction { return c.transactions }
func (c *Catalog) Chats() []domain.Chat               { return c.chats }

// User returns the user with the given id or domain.ErrNotFound.
func (c *Catalog) User(id string) (*domain.User, error) {
	if u := c.userRef(id); u != nil {
		return u, nil
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

func (c *Catalog) Property(id string) (*domain.Property, error) {
	if p := c.propertyRef(id); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
}

func (c *Catalog) Chat(id string) (*domain.Chat, error) {
	if i, ok := c.chatByID[id]; ok {
		return &c.chats[i], nil
	}
	return nil, fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
}
