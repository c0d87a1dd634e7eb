package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistencia_os/internal/domain/entities"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failGet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestSnapshotCache_OrderShareRoundTrip(t *testing.T) {
	fake := newFakeRedis()
	c := NewSnapshotCache(newRedis(fake, nil, nil), time.Hour)
	ctx := context.Background()

	share := entities.OrderShare{
		ID:           "sh-1",
		StoreName:    "KING OF CELL",
		Customer:     "Ana",
		Brand:        "Samsung",
		Model:        "A52",
		Repairs:      []string{"Tela"},
		Conditions:   []string{},
		TotalPrice:   entities.Money(decimal.RequireFromString("350.50")),
		PhotosBefore: []string{"p1"},
		PhotosAfter:  []string{},
		CreatedAt:    time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
		OrderID:      "os-1",
	}

	_, found, err := c.GetOrderShare(ctx, "sh-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.SetOrderShare(ctx, share))
	assert.Equal(t, time.Hour, fake.ttls["share:order:sh-1"])

	got, found, err := c.GetOrderShare(ctx, "sh-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "350.5", got.TotalPrice.Decimal.String())
	assert.True(t, got.CreatedAt.Equal(share.CreatedAt))
	assert.Equal(t, share.Repairs, got.Repairs)
	assert.Equal(t, "os-1", got.OrderID)
}

func TestSnapshotCache_ResaleShareMissingPrice(t *testing.T) {
	fake := newFakeRedis()
	c := NewSnapshotCache(newRedis(fake, nil, nil), time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetResaleShare(ctx, entities.ResaleShare{ID: "v-1", Brand: "Apple", ResaleID: "r-1"}))

	got, found, err := c.GetResaleShare(ctx, "v-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, got.SoldPrice.Valid)
	assert.Nil(t, got.SoldAt)
	assert.Equal(t, "r-1", got.ResaleID)
}

func TestSnapshotCache_Errors(t *testing.T) {
	fake := newFakeRedis()
	c := NewSnapshotCache(newRedis(fake, nil, nil), time.Minute)
	ctx := context.Background()

	fake.data["share:order:bad"] = "{not json"
	_, found, err := c.GetOrderShare(ctx, "bad")
	require.NoError(t, err)
	assert.False(t, found)

	fake.failGet = errors.New("connection refused")
	_, _, err = c.GetResaleShare(ctx, "v-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "share:resale:v-1")
}

func TestRedis_PingAndClose(t *testing.T) {
	closed := false
	r := newRedis(newFakeRedis(), func() error { closed = true; return nil }, nil)

	require.NoError(t, r.Ping(context.Background()))
	require.NoError(t, r.Close())
	assert.True(t, closed)
	assert.NoError(t, newRedis(newFakeRedis(), nil, nil).Close())
}
