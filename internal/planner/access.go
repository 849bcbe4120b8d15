package planner

import (
	"github.com/google/uuid"
	"tripboard/internal/models/db_models"
)

type Tier string

const (
	TierOwner   Tier = "owner"
	TierEditor  Tier = "editor"
	TierViewer  Tier = "viewer"
	TierVisitor Tier = "visitor"
)

// Access is the effective permission of one requester against one itinerary.
type Access struct {
	Tier    Tier
	CanView bool
	CanEdit bool
}

// Resolve computes the requester's tier and capabilities from the current
// aggregate state. It is total: an unknown or anonymous requester resolves
// to visitor, never to an error. Callers must re-resolve on every access;
// nothing here is cached.
func Resolve(it *db_models.Itinerary, requesterID uuid.UUID) Access {
	if requesterID != uuid.Nil {
		if requesterID == it.OwnerID {
			return Access{Tier: TierOwner, CanView: true, CanEdit: true}
		}
		for _, t := range it.Travelers {
			if t.UserID != requesterID {
				continue
			}
			if t.Role == db_models.RoleEditor {
				return Access{Tier: TierEditor, CanView: true, CanEdit: true}
			}
			return Access{Tier: TierViewer, CanView: true, CanEdit: false}
		}
	}
	return Access{
		Tier:    TierVisitor,
		CanView: it.Privacy != db_models.PrivacyPrivate,
		CanEdit: false,
	}
}
