package stats

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

var today = time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCache(client, ttl), mr
}

func TestCache_Disabled(t *testing.T) {
	ctx := context.Background()

	for name, c := range map[string]*Cache{
		"nil cache":  nil,
		"nil client": NewCache(nil, time.Minute),
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, c.Enabled())

			_, err := c.Get(ctx, "company-1", today)
			assert.ErrorIs(t, err, ErrCacheMiss)

			assert.NoError(t, c.Set(ctx, "company-1", today, &domain.BookingStats{TotalBookings: 1}))
			assert.NoError(t, c.Invalidate(ctx, "company-1"))
		})
	}
}

func TestCache_Miss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	require.True(t, c.Enabled())
	_, err := c.Get(context.Background(), "company-1", today)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	in := &domain.BookingStats{
		TotalBookings:  5,
		TodayBookings:  2,
		TotalRevenue:   decimal.RequireFromString("150.10"),
		PendingRevenue: decimal.RequireFromString("0.30"),
	}
	require.NoError(t, c.Set(ctx, "company-1", today, in))

	assert.True(t, mr.Exists("booking:stats:company-1"))
	assert.Equal(t, time.Minute, mr.TTL("booking:stats:company-1"))

	out, err := c.Get(ctx, "company-1", today)
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.TotalBookings)
	assert.Equal(t, int64(2), out.TodayBookings)
	assert.True(t, in.TotalRevenue.Equal(out.TotalRevenue))
	assert.True(t, in.PendingRevenue.Equal(out.PendingRevenue))

	_, err = c.Get(ctx, "company-2", today)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_OtherDayIsMiss(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t, time.Hour)

	require.NoError(t, c.Set(ctx, "company-1", today, &domain.BookingStats{TodayBookings: 3}))

	_, err := c.Get(ctx, "company-1", today.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_Expires(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, c.Set(ctx, "company-1", today, &domain.BookingStats{TotalBookings: 1}))
	mr.FastForward(time.Minute + time.Second)

	_, err := c.Get(ctx, "company-1", today)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, c.Set(ctx, "company-1", today, &domain.BookingStats{TotalBookings: 1}))
	require.NoError(t, c.Set(ctx, "company-2", today, &domain.BookingStats{TotalBookings: 2}))

	require.NoError(t, c.Invalidate(ctx, "company-1"))

	assert.False(t, mr.Exists("booking:stats:company-1"))
	_, err := c.Get(ctx, "company-1", today)
	assert.ErrorIs(t, err, ErrCacheMiss)

	other, err := c.Get(ctx, "company-2", today)
	require.NoError(t, err)
	assert.Equal(t, int64(2), other.TotalBookings)
}

func TestCache_CorruptedValue(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("booking:stats:company-1", "not json"))

	_, err := c.Get(context.Background(), "company-1", today)
	assert.ErrorIs(t, err, ErrCache)
}

func TestCache_RedisDown(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, err := c.Get(ctx, "company-1", today)
	assert.ErrorIs(t, err, ErrCache)
	assert.ErrorIs(t, c.Set(ctx, "company-1", today, &domain.BookingStats{}), ErrCache)
	assert.ErrorIs(t, c.Invalidate(ctx, "company-1"), ErrCache)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "booking:stats:company-1", key("company-1"))
}
