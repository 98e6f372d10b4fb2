package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/tripmuse/internal/cache"
	"github.com/neexbeast/tripmuse/internal/engine"
)

func newTestCache(t *testing.T) (*cache.PoolCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewPoolCache(client), mr
}

func samplePool() []engine.Candidate {
	hours := 2.9
	return []engine.Candidate{
		{
			City:               "Lisbon",
			Country:            "Portugal",
			Region:             engine.RegionEurope,
			Type:               engine.TypeCity,
			Themes:             []string{engine.TagCulture, engine.TagFood},
			BestSeasons:        []engine.Season{engine.SeasonSpring},
			ApproxNonstopHours: &hours,
			Summary:            "Hills and tiles.",
			Highlights:         []string{"Tram 28 ride", "Warm pastel de nata", "Miradouro sunset"},
		},
	}
}

func TestPoolCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", samplePool()))

	got, err := c.Get(ctx, "short")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Lisbon", got[0].City)
	assert.Equal(t, engine.RegionEurope, got[0].Region)
	require.NotNil(t, got[0].ApproxNonstopHours)
	assert.InDelta(t, 2.9, *got[0].ApproxNonstopHours, 1e-9)
}

func TestPoolCache_MissReturnsNilNil(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), "long")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPoolCache_BandsAreIndependent(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", samplePool()))

	got, err := c.Get(ctx, "medium")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPoolCache_EmptyPoolNotStored(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(context.Background(), "short", nil))

	assert.False(t, mr.Exists("pool:short"))
}

func TestPoolCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", samplePool()))
	mr.FastForward(2 * time.Hour)

	got, err := c.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, got)
}
