package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	PrivacyPrivate = "private"
	PrivacyFriends = "friends"
	PrivacyPublic  = "public"
)

// Roster roles. Owner is never stored as a traveler and visitor is never
// stored anywhere; both are resolved, not persisted.
const (
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

type Itinerary struct {
	BaseModel
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Privacy   string         `gorm:"default:'private';check:privacy IN ('private','friends','public')"`
	Tags      pq.StringArray `gorm:"type:text[]"`

	// Recomputed from boards on every mutation, stored only as a snapshot.
	TotalBudget float64

	Boards    []Board    `gorm:"constraint:OnDelete:CASCADE"`
	Notes     []Note     `gorm:"constraint:OnDelete:CASCADE"`
	Travelers []Traveler `gorm:"constraint:OnDelete:CASCADE"`
}

// TravelDays is always derived from the board count, never stored.
func (it *Itinerary) TravelDays() int { return len(it.Boards) }

// Board holds one calendar day's favorites and spend. Its date is set at
// generation time and only ever changes through a full reschedule.
type Board struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	Date        time.Time
	Position    int
	DailyBudget float64

	Items []BoardItem `gorm:"constraint:OnDelete:CASCADE"`
}

// BoardItem is a favorite dragged onto a board. Price and display payload
// come from the favorites catalog and pass through this engine untouched.
type BoardItem struct {
	BaseModel
	BoardID        uuid.UUID `gorm:"type:uuid;index"`
	FavoriteID     uuid.UUID `gorm:"type:uuid"`
	Price          float64
	Position       int
	DisplayPayload datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}

// Note is one freeform checklist entry, independent of boards.
type Note struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	Text        string
	Completed   bool
	AuthorID    uuid.UUID `gorm:"type:uuid"`
	Position    int
}

type Traveler struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index:idx_itinerary_traveler,unique"`
	UserID      uuid.UUID `gorm:"type:uuid;index:idx_itinerary_traveler,unique"`
	Role        string    `gorm:"check:role IN ('viewer','editor')"`
}
