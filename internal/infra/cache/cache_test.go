package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/ptr"
)

type fakeRedis struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failing bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.failing {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failing {
		return redis.NewStatusResult("", errors.New("connection refused"))
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func sampleBookings() []*domain.Booking {
	return []*domain.Booking{{
		ID:        1,
		Reference: "REF-1A2B3C4D",
		UserID:    "u1",
		DoctorID:  "dr-mehta",
		Date:      time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "10:00",
		Name:      "Jane",
		Email:     "jane@example.com",
		Phone:     ptr.Ptr("555"),
		Status:    domain.StatusConfirmed,
	}}
}

func TestMemoryCache_PutGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, err := c.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrMiss)

	bookings := sampleBookings()
	require.NoError(t, c.Put(ctx, "u1", bookings))
	bookings[0].Name = "mutated"

	got, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane", got[0].Name)
}

func TestRedisCache_PutGet(t *testing.T) {
	client := newFakeRedis()
	c := NewRedisCache(client, "", time.Hour)
	ctx := context.Background()

	_, err := c.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Put(ctx, "u1", sampleBookings()))
	assert.Equal(t, time.Hour, client.ttls["docaid:snapshot:u1"])

	got, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "REF-1A2B3C4D", got[0].Reference)
	assert.Equal(t, "10:00", got[0].TimeSlot.String())
	assert.Equal(t, "555", *got[0].Phone)
	assert.True(t, got[0].Date.Equal(time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)))
}

func TestRedisCache_BackendError(t *testing.T) {
	client := newFakeRedis()
	client.failing = true
	c := NewRedisCache(client, "test", 0)

	err := c.Put(context.Background(), "u1", sampleBookings())
	assert.ErrorIs(t, err, ErrBackend)

	_, err = c.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrBackend)
}
