package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"tripboard/internal/models/response_models"
	"tripboard/internal/repositories"
	mem "tripboard/pkg/memcache"
	"tripboard/pkg/utils"
)

// Candidate pools drive roster validation on every traveler add, so they are
// cached briefly. The cache is advisory only; a stale pool can delay, never
// grant, a traveler add for a just-made friend.
const candidatePoolTTL = time.Minute

type FriendServiceInterface interface {
	GetFriends(ctx context.Context, userID uuid.UUID) ([]response_models.FriendResponse, error)

	// CandidatePool returns the ids a user may attach as travelers.
	CandidatePool(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type FriendService struct {
	friendRepo repositories.FriendRepository
	pools      mem.FriendPoolStore
}

func NewFriendService(friendRepo repositories.FriendRepository, pools mem.FriendPoolStore) FriendServiceInterface {
	return &FriendService{
		friendRepo: friendRepo,
		pools:      pools,
	}
}

func (f *FriendService) GetFriends(ctx context.Context, userID uuid.UUID) ([]response_models.FriendResponse, error) {
	friendships, err := f.friendRepo.ListFriends(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FriendResponse, 0, len(friendships))
	for _, fs := range friendships {
		out = append(out, response_models.FriendResponse{
			UserID:      fs.FriendID.String(),
			DisplayName: fs.Friend.Name,
			AvatarURL:   fs.Friend.AvatarURL,
		})
	}
	return out, nil
}

func (f *FriendService) CandidatePool(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if pool, ok := f.pools.Get(userID); ok {
		return pool, nil
	}

	friendships, err := f.friendRepo.ListFriends(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pool := make([]uuid.UUID, 0, len(friendships))
	for _, fs := range friendships {
		pool = append(pool, fs.FriendID)
	}

	f.pools.Set(userID, pool, candidatePoolTTL)
	return pool, nil
}
