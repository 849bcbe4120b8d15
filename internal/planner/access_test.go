package planner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripboard/internal/models/db_models"
)

func accessFixture(t *testing.T) (*db_models.Itinerary, uuid.UUID, uuid.UUID) {
	t.Helper()
	it := newTrip(t, date(2025, 4, 1), date(2025, 4, 2))
	it.OwnerID = uuid.New()

	editor := uuid.New()
	viewer := uuid.New()
	it.Travelers = []db_models.Traveler{
		{UserID: editor, Role: db_models.RoleEditor},
		{UserID: viewer, Role: db_models.RoleViewer},
	}
	return it, editor, viewer
}

func TestResolve_Tiers(t *testing.T) {
	it, editor, viewer := accessFixture(t)

	t.Run("owner", func(t *testing.T) {
		access := Resolve(it, it.OwnerID)
		assert.Equal(t, TierOwner, access.Tier)
		assert.True(t, access.CanView)
		assert.True(t, access.CanEdit)
	})

	t.Run("editor", func(t *testing.T) {
		access := Resolve(it, editor)
		assert.Equal(t, TierEditor, access.Tier)
		assert.True(t, access.CanView)
		assert.True(t, access.CanEdit)
	})

	t.Run("viewer", func(t *testing.T) {
		access := Resolve(it, viewer)
		assert.Equal(t, TierViewer, access.Tier)
		assert.True(t, access.CanView)
		assert.False(t, access.CanEdit)
	})

	t.Run("visitor on private itinerary", func(t *testing.T) {
		access := Resolve(it, uuid.New())
		assert.Equal(t, TierVisitor, access.Tier)
		assert.False(t, access.CanView)
		assert.False(t, access.CanEdit)
	})
}

func TestResolve_VisitorFollowsPrivacy(t *testing.T) {
	it, _, _ := accessFixture(t)
	stranger := uuid.New()

	for privacy, wantView := range map[string]bool{
		db_models.PrivacyPrivate: false,
		db_models.PrivacyFriends: true,
		db_models.PrivacyPublic:  true,
	} {
		it.Privacy = privacy
		access := Resolve(it, stranger)
		assert.Equal(t, TierVisitor, access.Tier)
		assert.Equal(t, wantView, access.CanView, "privacy %q", privacy)
		assert.False(t, access.CanEdit)
	}
}

func TestResolve_TotalAndMonotone(t *testing.T) {
	it, editor, viewer := accessFixture(t)

	requesters := []uuid.UUID{it.OwnerID, editor, viewer, uuid.New(), uuid.Nil}
	privacies := []string{db_models.PrivacyPrivate, db_models.PrivacyFriends, db_models.PrivacyPublic}

	for _, privacy := range privacies {
		it.Privacy = privacy
		for _, requester := range requesters {
			access := Resolve(it, requester)
			require.NotEmpty(t, access.Tier)
			if access.CanEdit {
				assert.True(t, access.CanView, "CanEdit must imply CanView (tier %s)", access.Tier)
			}
		}
	}
}

func TestResolve_AnonymousIsVisitor(t *testing.T) {
	it, _, _ := accessFixture(t)
	it.Privacy = db_models.PrivacyPublic

	access := Resolve(it, uuid.Nil)
	assert.Equal(t, TierVisitor, access.Tier)
	assert.True(t, access.CanView)
	assert.False(t, access.CanEdit)
}

func TestResolve_ReflectsRosterChanges(t *testing.T) {
	it, _, viewer := accessFixture(t)

	// Resolution is evaluated fresh each call, never cached.
	require.NoError(t, SetTravelerRole(it, viewer, db_models.RoleEditor))
	assert.Equal(t, TierEditor, Resolve(it, viewer).Tier)

	RemoveTraveler(it, viewer)
	assert.Equal(t, TierVisitor, Resolve(it, viewer).Tier)
}
