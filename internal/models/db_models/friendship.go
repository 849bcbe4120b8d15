package db_models

import "github.com/google/uuid"

// Friendship is one directed edge of the friend graph. The graph itself is
// managed elsewhere; this engine only reads it as the candidate pool for
// traveler selection.
type Friendship struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;index:idx_friend_pair,unique"`
	FriendID uuid.UUID `gorm:"type:uuid;index:idx_friend_pair,unique"`

	Friend Account `gorm:"foreignKey:FriendID"`
}
