package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripboard/internal/models/db_models"
)

type FriendRepository interface {
	// ListFriends returns the user's friends with their display data.
	ListFriends(ctx context.Context, userID uuid.UUID) ([]db_models.Friendship, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (f *friendRepository) ListFriends(ctx context.Context, userID uuid.UUID) ([]db_models.Friendship, error) {
	var friendships []db_models.Friendship
	err := f.db.WithContext(ctx).
		Preload("Friend").
		Where("user_id = ?", userID).
		Find(&friendships).Error

	if err != nil {
		return nil, err
	}
	return friendships, nil
}
