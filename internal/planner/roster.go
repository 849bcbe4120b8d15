package planner

import (
	"github.com/google/uuid"
	"tripboard/internal/models/db_models"
	"tripboard/pkg/utils"
)

// AddTraveler attaches userID to the itinerary with the given role. The user
// must come from pool, the requester's friend list. Role defaults to viewer.
// The owner is implicit and never stored as a traveler.
func AddTraveler(it *db_models.Itinerary, pool []uuid.UUID, userID uuid.UUID, role string) error {
	if role == "" {
		role = db_models.RoleViewer
	}
	if role != db_models.RoleViewer && role != db_models.RoleEditor {
		return utils.ErrInvalidInput
	}
	if userID == it.OwnerID {
		return utils.ErrDuplicateTraveler
	}

	inPool := false
	for _, id := range pool {
		if id == userID {
			inPool = true
			break
		}
	}
	if !inPool {
		return utils.ErrNotAFriend
	}

	for _, t := range it.Travelers {
		if t.UserID == userID {
			return utils.ErrDuplicateTraveler
		}
	}

	it.Travelers = append(it.Travelers, db_models.Traveler{
		ItineraryID: it.ID,
		UserID:      userID,
		Role:        role,
	})
	return nil
}

// SetTravelerRole changes an attached traveler's role.
func SetTravelerRole(it *db_models.Itinerary, userID uuid.UUID, role string) error {
	if role != db_models.RoleViewer && role != db_models.RoleEditor {
		return utils.ErrInvalidInput
	}

	for i := range it.Travelers {
		if it.Travelers[i].UserID == userID {
			it.Travelers[i].Role = role
			return nil
		}
	}
	return utils.ErrTravelerNotFound
}

// RemoveTraveler detaches userID. Removing a non-member is a no-op, which
// keeps double-submitted removals harmless.
func RemoveTraveler(it *db_models.Itinerary, userID uuid.UUID) {
	for i := range it.Travelers {
		if it.Travelers[i].UserID == userID {
			it.Travelers = append(it.Travelers[:i], it.Travelers[i+1:]...)
			return
		}
	}
}
