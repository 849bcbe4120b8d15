package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripboard/internal/models/db_models"
	mem "tripboard/pkg/memcache"
)

type fakeFriendRepo struct {
	friendships []db_models.Friendship
	calls       int
}

func (f *fakeFriendRepo) ListFriends(ctx context.Context, userID uuid.UUID) ([]db_models.Friendship, error) {
	f.calls++
	var out []db_models.Friendship
	for _, fs := range f.friendships {
		if fs.UserID == userID {
			out = append(out, fs)
		}
	}
	return out, nil
}

func TestCandidatePool_CachesPerUser(t *testing.T) {
	user := uuid.New()
	friend := uuid.New()
	repo := &fakeFriendRepo{friendships: []db_models.Friendship{
		{UserID: user, FriendID: friend},
	}}
	svc := NewFriendService(repo, mem.NewFriendPools())

	pool, err := svc.CandidatePool(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{friend}, pool)
	assert.Equal(t, 1, repo.calls)

	// Second lookup inside the TTL is served from the cache.
	pool, err = svc.CandidatePool(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{friend}, pool)
	assert.Equal(t, 1, repo.calls)
}

func TestGetFriends_MapsDisplayData(t *testing.T) {
	user := uuid.New()
	friend := uuid.New()
	repo := &fakeFriendRepo{friendships: []db_models.Friendship{
		{
			UserID:   user,
			FriendID: friend,
			Friend:   db_models.Account{Name: "Mai", AvatarURL: "https://cdn.example/mai.png"},
		},
	}}
	svc := NewFriendService(repo, mem.NewFriendPools())

	friends, err := svc.GetFriends(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, friend.String(), friends[0].UserID)
	assert.Equal(t, "Mai", friends[0].DisplayName)
	assert.Equal(t, "https://cdn.example/mai.png", friends[0].AvatarURL)
}
