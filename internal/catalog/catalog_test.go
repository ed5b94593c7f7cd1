package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/adapter/repository/memory"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ResolvesReferences(t *testing.T) {
	src, err := memory.Load("")
	require.NoError(t, err)

	c, err := Load(context.Background(), src)
	require.NoError(t, err)

	villa, err := c.Property("hse_01")
	require.NoError(t, err)
	require.NotNil(t, villa.Landlord)
	assert.Equal(t, "Kadiatou Sylla", villa.Landlord.Name)

	tx := c.Transactions()[0]
	require.NotNil(t, tx.User)
	assert.Equal(t, "Fatou Barry", tx.User.Name)

	chat, err := c.Chat("cht_01")
	require.NoError(t, err)
	assert.Equal(t, "Mamadou Diallo", chat.Renter.Name)
	assert.Equal(t, "Kadiatou Sylla", chat.Landlord.Name)
	assert.Equal(t, "Villa Moderne à Kipé", chat.House.Title)
	for _, m := range chat.Messages {
		assert.NotNil(t, m.Sender)
		assert.NotNil(t, m.Receiver)
	}
}

func TestNew_DanglingReferenceIsNil(t *testing.T) {
	c, err := New(nil,
		[]domain.Property{{ID: "p1", LandlordID: "ghost"}},
		[]domain.Transaction{{ID: "t1", UserID: "ghost"}},
		nil,
	)
	require.NoError(t, err)

	assert.Nil(t, c.Properties()[0].Landlord)
	assert.Nil(t, c.Transactions()[0].User)
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := New([]domain.User{{ID: "u1"}, {ID: "u1"}}, nil, nil, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNew_DoesNotMutateInput(t *testing.T) {
	props := []domain.Property{{ID: "p1", LandlordID: "u1"}}

	_, err := New([]domain.User{{ID: "u1"}}, props, nil, nil)
	require.NoError(t, err)

	assert.Nil(t, props[0].Landlord)
}

func TestCatalog_NotFound(t *testing.T) {
	c, err := New(nil, nil, nil, nil)
	require.NoError(t, err)

	_, err = c.User("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = c.Property("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = c.Chat("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type failingSource struct{ *memory.Source }

func (failingSource) Transactions(context.Context) ([]domain.Transaction, error) {
	return nil, errors.New("connection reset")
}

func TestLoad_PropagatesSourceError(t *testing.T) {
	_, err := Load(context.Background(), failingSource{Source: memory.NewSource(memory.Fixture{})})

	assert.ErrorContains(t, err, "load transactions")
}
