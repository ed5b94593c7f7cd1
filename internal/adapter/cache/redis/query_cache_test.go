package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestQueryKey_OrderIndependent(t *testing.T) {
	a := QueryKey("admin:users", map[string]string{"q": "kadiatou", "role": "landlord"})
	b := QueryKey("admin:users", map[string]string{"role": "landlord", "q": "kadiatou"})

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "admin:users:"))
	assert.Len(t, strings.TrimPrefix(a, "admin:users:"), 32)
}

func TestQueryKey_DistinctParams(t *testing.T) {
	a := QueryKey("admin:users", map[string]string{"role": "landlord"})
	b := QueryKey("admin:users", map[string]string{"role": "renter"})
	c := QueryKey("admin:properties", map[string]string{"role": "landlord"})

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestQueryKey_SeparatorsInValuesDoNotAlias(t *testing.T) {
	text := QueryKey("admin:users", map[string]string{"q": "a:role=landlord"})
	split := QueryKey("admin:users", map[string]string{"q": "a", "role": "landlord"})
	amp := QueryKey("admin:users", map[string]string{"q": "a&role=landlord"})

	assert.NotEqual(t, text, split)
	assert.NotEqual(t, amp, split)
	assert.NotEqual(t, text, amp)
}

func TestQueryKey_Empty(t *testing.T) {
	assert.Equal(t, "admin:users:d41d8cd98f00b204e9800998ecf8427e", QueryKey("admin:users", nil))
}

func TestNopCache(t *testing.T) {
	var c NopCache
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}
