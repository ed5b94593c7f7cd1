// Package memory serves the record collections from a JSON fixture held in
// memory. The default fixture is embedded in the binary.
package memory

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
)

//go:embed seed.json
var seed []byte

// Fixture is the on-disk layout of a seed file.
type Fixture struct {
	Users        []domain.User        `json:"users"`
	Houses       []domain.Property    `json:"houses"`
	Transactions []domain.Transaction `json:"transactions"`
	Chats        []domain.Chat        `json:"chats"`
}

// Source is a domain.RecordSource over a fixed fixture.
type Source struct {
	data Fixture
}

func NewSource(data Fixture) *Source {
	return &Source{data: data}
}

// Load reads the fixture at path, or the embedded seed when path is empty.
func Load(path string) (*Source, error) {
	if path == "" {
		return Parse(bytes.NewReader(seed))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*Source, error) {
	var data Fixture
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return NewSource(data), nil
}

func (s *Source) Users(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.User(nil), s.data.Users...), nil
}

func (s *Source) Properties(ctx context.Context) ([]domain.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Property(nil), s.data.Houses...), nil
}

func (s *Source) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Transaction(nil), s.data.Transactions...), nil
}

func (s *Source) Chats(ctx context.Context) ([]domain.Chat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Chat(nil), s.data.Chats...), nil
}
