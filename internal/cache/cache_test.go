package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := New(srv.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return client, srv
}

func TestClient_SetGetDelete(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", []byte("v"), time.Minute))

	data, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)

	require.NoError(t, client.Delete(ctx, "k"))
	data, err = client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestClient_FailsSafeWhenRedisIsDown(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Close()
	ctx := context.Background()

	assert.NoError(t, client.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := client.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, int64(0), client.Incr(ctx, "n"))
}

func TestClient_NilIsUsable(t *testing.T) {
	var client *Client
	ctx := context.Background()

	data, err := client.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, client.Set(ctx, "k", nil, time.Second))
	assert.NoError(t, client.Delete(ctx, "k"))
	assert.NoError(t, client.Close())
}

func TestViewCache_InvalidateDropsAllVariants(t *testing.T) {
	client, _ := newTestClient(t)
	views := NewViewCache(client, time.Minute)
	ctx := context.Background()

	views.Set(ctx, views.Key(ctx, "/dashboard/invoices", "q=|page=1"), []byte("page-1"))
	views.Set(ctx, views.Key(ctx, "/dashboard/invoices", "q=lee|page=2"), []byte("page-2"))
	views.Set(ctx, views.Key(ctx, "/dashboard/customers", "q="), []byte("customers"))

	assert.Equal(t, []byte("page-1"), views.Get(ctx, views.Key(ctx, "/dashboard/invoices", "q=|page=1")))
	assert.Equal(t, []byte("page-2"), views.Get(ctx, views.Key(ctx, "/dashboard/invoices", "q=lee|page=2")))

	views.Invalidate(ctx, "/dashboard/invoices")

	assert.Nil(t, views.Get(ctx, views.Key(ctx, "/dashboard/invoices", "q=|page=1")))
	assert.Nil(t, views.Get(ctx, views.Key(ctx, "/dashboard/invoices", "q=lee|page=2")))
	assert.Equal(t, []byte("customers"), views.Get(ctx, views.Key(ctx, "/dashboard/customers", "q=")))

	views.Set(ctx, views.Key(ctx, "/dashboard/invoices", "q=|page=1"), []byte("fresh"))
	assert.Equal(t, []byte("fresh"), views.Get(ctx, views.Key(ctx, "/dashboard/invoices", "q=|page=1")))
}

func TestViewCache_RenderRacingInvalidateIsNotServed(t *testing.T) {
	client, _ := newTestClient(t)
	views := NewViewCache(client, time.Minute)
	ctx := context.Background()

	key := views.Key(ctx, "/dashboard/invoices", "query=&page=1")
	require.Nil(t, views.Get(ctx, key))

	// a mutation commits and invalidates while the render is still in flight
	views.Invalidate(ctx, "/dashboard/invoices")
	views.Set(ctx, key, []byte("stale"))

	assert.Nil(t, views.Get(ctx, views.Key(ctx, "/dashboard/invoices", "query=&page=1")))
}

func TestViewCache_EntriesExpire(t *testing.T) {
	client, srv := newTestClient(t)
	views := NewViewCache(client, 30*time.Second)
	ctx := context.Background()

	views.Set(ctx, views.Key(ctx, "/dashboard/invoices", "v"), []byte("x"))
	srv.FastForward(31 * time.Second)

	assert.Nil(t, views.Get(ctx, views.Key(ctx, "/dashboard/invoices", "v")))
}

func TestViewCache_GenerationCounter(t *testing.T) {
	client, srv := newTestClient(t)
	views := NewViewCache(client, time.Minute)
	ctx := context.Background()

	views.Invalidate(ctx, "/dashboard/invoices")
	views.Invalidate(ctx, "/dashboard/invoices")

	got, err := srv.Get("view:/dashboard/invoices:generation")
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(2), got)
}
