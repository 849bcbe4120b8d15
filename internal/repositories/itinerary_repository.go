// internal/repositories/itinerary_repo.go
package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "tripboard/internal/models/db_models"
)

type ItineraryRepository interface {
	// Create persists a fully-formed aggregate atomically; on any error
	// nothing is persisted.
	Create(ctx context.Context, it *dbm.Itinerary) error

	// GetByID loads the aggregate with boards, items, notes and travelers in
	// display order. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Itinerary, error)

	// Mutate runs fn against a locked snapshot of the aggregate and persists
	// the result in the same transaction. The row lock serializes concurrent
	// mutations per aggregate so budget recomputation never races and access
	// resolution never observes a half-applied roster. fn returning an error
	// rolls everything back. Returns (nil, nil) when the itinerary is absent.
	Mutate(ctx context.Context, id uuid.UUID, fn func(*dbm.Itinerary) error) (*dbm.Itinerary, error)

	ListByMember(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dbm.Itinerary, error)

	// Delete removes the aggregate and all contained rows atomically.
	Delete(ctx context.Context, id uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(ctx context.Context, it *dbm.Itinerary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(it).Error; err != nil {
			return err
		}
		return createChildren(tx, it)
	})
}

func (r *itineraryRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Itinerary, error) {
	var it dbm.Itinerary
	err := preloadAggregate(r.db.WithContext(ctx)).
		First(&it, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (r *itineraryRepository) Mutate(ctx context.Context, id uuid.UUID, fn func(*dbm.Itinerary) error) (*dbm.Itinerary, error) {
	var out *dbm.Itinerary

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the root row first; every mutation path takes this lock, so
		// the child reads below see a consistent snapshot.
		var it dbm.Itinerary
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&it, "id = ?", id).Error; err != nil {
			return err
		}
		if err := preloadAggregate(tx).First(&it, "id = ?", id).Error; err != nil {
			return err
		}

		if err := fn(&it); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(&it).Error; err != nil {
			return err
		}
		if err := replaceChildren(tx, &it); err != nil {
			return err
		}

		out = &it
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

func (r *itineraryRepository) ListByMember(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dbm.Itinerary, error) {
	memberOf := r.db.Model(&dbm.Traveler{}).
		Select("itinerary_id").
		Where("user_id = ?", userID)

	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Boards", orderByPosition).
		Where("owner_id = ? OR id IN (?)", userID, memberOf).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		boardIDs := tx.Model(&dbm.Board{}).
			Select("id").
			Where("itinerary_id = ?", id)

		if err := tx.Where("board_id IN (?)", boardIDs).
			Delete(&dbm.BoardItem{}).Error; err != nil {
			return err
		}
		for _, child := range []interface{}{&dbm.Board{}, &dbm.Note{}, &dbm.Traveler{}} {
			if err := tx.Where("itinerary_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&dbm.Itinerary{}, "id = ?", id).Error
	})
}

func preloadAggregate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Boards", orderByPosition).
		Preload("Boards.Items", orderByPosition).
		Preload("Notes", orderByPosition).
		Preload("Travelers")
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// replaceChildren rewrites the materialized child rows from the in-memory
// aggregate: wipe, then recreate. IDs surviving in the aggregate survive the
// rewrite, so clients can keep referring to unchanged boards and notes.
func replaceChildren(tx *gorm.DB, it *dbm.Itinerary) error {
	boardIDs := tx.Model(&dbm.Board{}).
		Select("id").
		Where("itinerary_id = ?", it.ID)

	if err := tx.Unscoped().Where("board_id IN (?)", boardIDs).
		Delete(&dbm.BoardItem{}).Error; err != nil {
		return err
	}
	for _, child := range []interface{}{&dbm.Board{}, &dbm.Note{}, &dbm.Traveler{}} {
		if err := tx.Unscoped().Where("itinerary_id = ?", it.ID).Delete(child).Error; err != nil {
			return err
		}
	}
	return createChildren(tx, it)
}

func createChildren(tx *gorm.DB, it *dbm.Itinerary) error {
	for i := range it.Boards {
		board := &it.Boards[i]
		board.ItineraryID = it.ID

		items := board.Items
		board.Items = nil
		if err := tx.Create(board).Error; err != nil {
			return err
		}
		board.Items = items

		for j := range board.Items {
			board.Items[j].BoardID = board.ID
		}
		if len(board.Items) > 0 {
			if err := tx.Create(&board.Items).Error; err != nil {
				return err
			}
		}
	}

	for i := range it.Notes {
		it.Notes[i].ItineraryID = it.ID
	}
	if len(it.Notes) > 0 {
		if err := tx.Create(&it.Notes).Error; err != nil {
			return err
		}
	}

	for i := range it.Travelers {
		it.Travelers[i].ItineraryID = it.ID
	}
	if len(it.Travelers) > 0 {
		if err := tx.Create(&it.Travelers).Error; err != nil {
			return err
		}
	}
	return nil
}
