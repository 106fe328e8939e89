package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-platform/internal/models"
)

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := NewRedisCache(mr.Addr())
	require.NoError(t, cache.Ping())
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestLeaderboardRoundTrip(t *testing.T) {
	cache := newTestCache(t)

	entries := []models.LeaderboardEntry{
		{Rank: 1, Username: "ada", Email: "ada@example.com", XP: 3200, Level: 4},
		{Rank: 2, Username: "linus", Email: "linus@example.com", XP: 1500, Level: 2},
	}
	require.NoError(t, cache.SetLeaderboard(entries))

	got, err := cache.GetLeaderboard()
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestLeaderboardMissReturnsNil(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.GetLeaderboard()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInvalidateLeaderboard(t *testing.T) {
	cache := newTestCache(t)

	require.NoError(t, cache.SetLeaderboard([]models.LeaderboardEntry{
		{Rank: 1, Username: "ada", XP: 3200, Level: 4},
	}))
	require.NoError(t, cache.InvalidateLeaderboard())

	got, err := cache.GetLeaderboard()
	require.NoError(t, err)
	assert.Nil(t, got, "invalidation must produce a clean miss")
}

func TestSetOverwritesPreviousSnapshot(t *testing.T) {
	cache := newTestCache(t)

	require.NoError(t, cache.SetLeaderboard([]models.LeaderboardEntry{
		{Rank: 1, Username: "ada", XP: 100, Level: 1},
	}))
	require.NoError(t, cache.SetLeaderboard([]models.LeaderboardEntry{
		{Rank: 1, Username: "linus", XP: 200, Level: 1},
	}))

	got, err := cache.GetLeaderboard()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "linus", got[0].Username)
}
