package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryImageCache_GetSet(t *testing.T) {
	c := NewInMemoryImageCache(time.Minute)
	defer c.Close()
	ctx := context.Background()
	propertyID, imageID := uuid.New(), uuid.New()

	data, ok, err := c.Get(ctx, propertyID, imageID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)

	require.NoError(t, c.Set(ctx, propertyID, imageID, []byte{1, 2, 3}))

	data, ok, err = c.Get(ctx, propertyID, imageID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, data)

	_, ok, _ = c.Get(ctx, uuid.New(), imageID)
	assert.False(t, ok, "keys include the property id")

	hits, misses := c.GetStats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(2), misses)
}

func TestInMemoryImageCache_CopiesBytes(t *testing.T) {
	c := NewInMemoryImageCache(time.Minute)
	defer c.Close()
	ctx := context.Background()
	propertyID, imageID := uuid.New(), uuid.New()

	src := []byte{9, 9, 9}
	require.NoError(t, c.Set(ctx, propertyID, imageID, src))
	src[0] = 0

	got, _, _ := c.Get(ctx, propertyID, imageID)
	got[1] = 0

	again, _, _ := c.Get(ctx, propertyID, imageID)
	assert.Equal(t, []byte{9, 9, 9}, again)
}

func TestInMemoryImageCache_Expiry(t *testing.T) {
	c := NewInMemoryImageCache(time.Minute)
	defer c.Close()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	expiring, fresh := uuid.New(), uuid.New()
	propertyID := uuid.New()
	require.NoError(t, c.Set(ctx, propertyID, expiring, []byte{1}))

	now = now.Add(45 * time.Second)
	require.NoError(t, c.Set(ctx, propertyID, fresh, []byte{2}))

	now = now.Add(30 * time.Second)
	_, ok, _ := c.Get(ctx, propertyID, expiring)
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, propertyID, fresh)
	assert.True(t, ok)

	assert.Equal(t, 2, c.Len())
	c.removeExpired()
	assert.Equal(t, 1, c.Len())
}

func TestInMemoryImageCache_Delete(t *testing.T) {
	c := NewInMemoryImageCache(0)
	defer c.Close()
	ctx := context.Background()
	propertyID, imageID := uuid.New(), uuid.New()

	assert.Equal(t, defaultImageTTL, c.ttl)
	require.NoError(t, c.Set(ctx, propertyID, imageID, []byte{1}))
	require.NoError(t, c.Delete(ctx, propertyID, imageID))

	_, ok, _ := c.Get(ctx, propertyID, imageID)
	assert.False(t, ok)
}

func TestInMemoryImageCache_CloseTwice(t *testing.T) {
	c := NewInMemoryImageCache(time.Minute)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestInMemoryImageCache_Concurrent(t *testing.T) {
	c := NewInMemoryImageCache(time.Minute)
	defer c.Close()
	ctx := context.Background()
	propertyID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := uuid.New()
			_ = c.Set(ctx, propertyID, id, []byte{byte(i)})
			got, ok, _ := c.Get(ctx, propertyID, id)
			assert.True(t, ok)
			assert.Equal(t, []byte{byte(i)}, got)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, c.Len())
}
