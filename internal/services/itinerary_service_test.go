package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripboard/internal/models/db_models"
	"tripboard/internal/models/request_models"
	"tripboard/internal/models/response_models"
	"tripboard/internal/planner"
	"tripboard/pkg/utils"
)

// fakeItineraryRepo keeps aggregates in a map. Mutate mirrors the real
// repository's contract: fn errors leave the stored aggregate untouched
// because fn runs against a copy that is only written back on success.
type fakeItineraryRepo struct {
	items map[uuid.UUID]*db_models.Itinerary
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{items: make(map[uuid.UUID]*db_models.Itinerary)}
}

func assignIDs(it *db_models.Itinerary) {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	for i := range it.Boards {
		if it.Boards[i].ID == uuid.Nil {
			it.Boards[i].ID = uuid.New()
		}
		for j := range it.Boards[i].Items {
			if it.Boards[i].Items[j].ID == uuid.Nil {
				it.Boards[i].Items[j].ID = uuid.New()
			}
		}
	}
	for i := range it.Notes {
		if it.Notes[i].ID == uuid.Nil {
			it.Notes[i].ID = uuid.New()
		}
	}
	for i := range it.Travelers {
		if it.Travelers[i].ID == uuid.Nil {
			it.Travelers[i].ID = uuid.New()
		}
	}
}

func cloneAggregate(it *db_models.Itinerary) *db_models.Itinerary {
	out := *it
	out.Boards = make([]db_models.Board, len(it.Boards))
	for i, b := range it.Boards {
		out.Boards[i] = b
		out.Boards[i].Items = append([]db_models.BoardItem(nil), b.Items...)
	}
	out.Notes = append([]db_models.Note(nil), it.Notes...)
	out.Travelers = append([]db_models.Traveler(nil), it.Travelers...)
	return &out
}

func (r *fakeItineraryRepo) Create(ctx context.Context, it *db_models.Itinerary) error {
	assignIDs(it)
	r.items[it.ID] = cloneAggregate(it)
	return nil
}

func (r *fakeItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Itinerary, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneAggregate(it), nil
}

func (r *fakeItineraryRepo) Mutate(ctx context.Context, id uuid.UUID, fn func(*db_models.Itinerary) error) (*db_models.Itinerary, error) {
	stored, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	working := cloneAggregate(stored)
	if err := fn(working); err != nil {
		return nil, err
	}
	assignIDs(working)
	r.items[id] = cloneAggregate(working)
	return working, nil
}

func (r *fakeItineraryRepo) ListByMember(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Itinerary, error) {
	var out []db_models.Itinerary
	for _, it := range r.items {
		if it.OwnerID == userID {
			out = append(out, *cloneAggregate(it))
			continue
		}
		for _, tr := range it.Travelers {
			if tr.UserID == userID {
				out = append(out, *cloneAggregate(it))
				break
			}
		}
	}
	return out, nil
}

func (r *fakeItineraryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

type fakeFriendService struct {
	pools map[uuid.UUID][]uuid.UUID
}

func (f *fakeFriendService) GetFriends(ctx context.Context, userID uuid.UUID) ([]response_models.FriendResponse, error) {
	return nil, nil
}

func (f *fakeFriendService) CandidatePool(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return f.pools[userID], nil
}

type serviceFixture struct {
	svc     ItineraryServiceInterface
	repo    *fakeItineraryRepo
	friends *fakeFriendService
	owner   uuid.UUID
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	repo := newFakeItineraryRepo()
	friends := &fakeFriendService{pools: make(map[uuid.UUID][]uuid.UUID)}
	return &serviceFixture{
		svc:     NewItineraryService(repo, friends),
		repo:    repo,
		friends: friends,
		owner:   uuid.New(),
	}
}

func favorite(price float64) request_models.BoardItemInput {
	return request_models.BoardItemInput{FavoriteID: uuid.New().String(), Price: price}
}

func (f *serviceFixture) submitBasic(t *testing.T) *response_models.ItineraryDetailResponse {
	t.Helper()
	out, err := f.svc.Submit(context.Background(), f.owner, request_models.SubmitItineraryRequest{
		Name:      "Spring trip",
		StartDate: "2025-04-01",
		EndDate:   "2025-04-03",
		BoardAssignments: [][]request_models.BoardItemInput{
			{favorite(50)},
			{favorite(30)},
		},
	})
	require.NoError(t, err)
	return out
}

func TestSubmit_DerivesBudgetsAndBoards(t *testing.T) {
	f := newServiceFixture(t)

	out := f.submitBasic(t)

	assert.Equal(t, 3, out.TravelDays)
	require.Len(t, out.Boards, 3)
	assert.Equal(t, "2025-04-01", out.Boards[0].Date)
	assert.Equal(t, "2025-04-03", out.Boards[2].Date)
	assert.Equal(t, 50.0, out.Boards[0].DailyBudget)
	assert.Equal(t, 30.0, out.Boards[1].DailyBudget)
	assert.Equal(t, 0.0, out.Boards[2].DailyBudget)
	assert.Equal(t, 80.0, out.TotalBudget)
	assert.Equal(t, string(planner.TierOwner), out.Access.Tier)
	assert.Len(t, f.repo.items, 1)
}

func TestSubmit_ValidatesTravelersAgainstFriendPool(t *testing.T) {
	f := newServiceFixture(t)
	friend := uuid.New()
	stranger := uuid.New()
	f.friends.pools[f.owner] = []uuid.UUID{friend}

	_, err := f.svc.Submit(context.Background(), f.owner, request_models.SubmitItineraryRequest{
		StartDate: "2025-04-01",
		EndDate:   "2025-04-02",
		Travelers: []request_models.TravelerSelection{
			{UserID: friend.String(), Role: db_models.RoleEditor},
			{UserID: stranger.String()},
		},
	})
	assert.ErrorIs(t, err, utils.ErrNotAFriend)
	// All-or-nothing: the rejected submission persisted nothing.
	assert.Empty(t, f.repo.items)

	out, err := f.svc.Submit(context.Background(), f.owner, request_models.SubmitItineraryRequest{
		StartDate: "2025-04-01",
		EndDate:   "2025-04-02",
		Travelers: []request_models.TravelerSelection{
			{UserID: friend.String(), Role: db_models.RoleEditor},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Travelers, 1)
	assert.Equal(t, db_models.RoleEditor, out.Travelers[0].Role)
}

func TestSubmit_RejectsBadInput(t *testing.T) {
	f := newServiceFixture(t)

	t.Run("end before start", func(t *testing.T) {
		_, err := f.svc.Submit(context.Background(), f.owner, request_models.SubmitItineraryRequest{
			StartDate: "2025-04-03",
			EndDate:   "2025-04-01",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
	})

	t.Run("more assignment rows than days", func(t *testing.T) {
		_, err := f.svc.Submit(context.Background(), f.owner, request_models.SubmitItineraryRequest{
			StartDate: "2025-04-01",
			EndDate:   "2025-04-01",
			BoardAssignments: [][]request_models.BoardItemInput{
				{favorite(1)}, {favorite(2)},
			},
		})
		assert.ErrorIs(t, err, utils.ErrIndexOutOfRange)
	})

	t.Run("unparseable date", func(t *testing.T) {
		_, err := f.svc.Submit(context.Background(), f.owner, request_models.SubmitItineraryRequest{
			StartDate: "April 1st",
			EndDate:   "2025-04-03",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	assert.Empty(t, f.repo.items)
}

func TestAccessGating_Writes(t *testing.T) {
	f := newServiceFixture(t)
	created := f.submitBasic(t)

	viewer := uuid.New()
	editor := uuid.New()
	f.friends.pools[f.owner] = []uuid.UUID{viewer, editor}

	_, err := f.svc.AddTraveler(context.Background(), created.ID, f.owner, request_models.AddTravelerRequest{UserID: viewer.String()})
	require.NoError(t, err)
	_, err = f.svc.AddTraveler(context.Background(), created.ID, f.owner, request_models.AddTravelerRequest{UserID: editor.String(), Role: db_models.RoleEditor})
	require.NoError(t, err)

	t.Run("viewer write is denied", func(t *testing.T) {
		_, err := f.svc.AssignItem(context.Background(), created.ID, viewer, 0, favorite(10))
		assert.ErrorIs(t, err, utils.ErrPermissionDenied)
	})

	t.Run("visitor write gets uniform denial on private trip", func(t *testing.T) {
		_, err := f.svc.AssignItem(context.Background(), created.ID, uuid.New(), 0, favorite(10))
		assert.ErrorIs(t, err, utils.ErrItineraryNotAccessible)
	})

	t.Run("editor write recomputes budgets", func(t *testing.T) {
		out, err := f.svc.AssignItem(context.Background(), created.ID, editor, 2, favorite(20))
		require.NoError(t, err)
		assert.Equal(t, 20.0, out.Boards[2].DailyBudget)
		assert.Equal(t, 100.0, out.TotalBudget)
	})

	t.Run("viewer read is allowed", func(t *testing.T) {
		out, err := f.svc.GetItinerary(context.Background(), created.ID, viewer)
		require.NoError(t, err)
		assert.Equal(t, string(planner.TierViewer), out.Access.Tier)
		assert.False(t, out.Access.CanEdit)
	})
}

func TestGetItinerary_UniformDenial(t *testing.T) {
	f := newServiceFixture(t)
	created := f.submitBasic(t)
	stranger := uuid.New()

	_, errPrivate := f.svc.GetItinerary(context.Background(), created.ID, stranger)
	_, errMissing := f.svc.GetItinerary(context.Background(), uuid.New().String(), stranger)

	// A denied visitor must not learn whether the itinerary exists.
	assert.ErrorIs(t, errPrivate, utils.ErrItineraryNotAccessible)
	assert.ErrorIs(t, errMissing, utils.ErrItineraryNotAccessible)
	assert.Equal(t, errPrivate, errMissing)
}

func TestGetItinerary_PublicVisitor(t *testing.T) {
	f := newServiceFixture(t)
	created := f.submitBasic(t)

	privacy := db_models.PrivacyPublic
	_, err := f.svc.UpdateDetails(context.Background(), created.ID, f.owner, request_models.UpdateItineraryRequest{Privacy: &privacy})
	require.NoError(t, err)

	out, err := f.svc.GetItinerary(context.Background(), created.ID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, string(planner.TierVisitor), out.Access.Tier)
	// Visitors never see the roster.
	assert.Empty(t, out.Travelers)
}

func TestReschedule_TruncatesTrailingDays(t *testing.T) {
	f := newServiceFixture(t)
	created := f.submitBasic(t)

	// Shrinking three days to one drops day 1's item (30) with the day.
	out, err := f.svc.Reschedule(context.Background(), created.ID, f.owner, request_models.RescheduleRequest{
		StartDate: "2025-05-01",
		EndDate:   "2025-05-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.TravelDays)
	assert.Equal(t, "2025-05-01", out.Boards[0].Date)
	require.Len(t, out.Boards[0].Items, 1)
	assert.Equal(t, 50.0, out.TotalBudget)
}

func TestDeleteItinerary_OwnerOnly(t *testing.T) {
	f := newServiceFixture(t)
	created := f.submitBasic(t)

	editor := uuid.New()
	f.friends.pools[f.owner] = []uuid.UUID{editor}
	_, err := f.svc.AddTraveler(context.Background(), created.ID, f.owner, request_models.AddTravelerRequest{UserID: editor.String(), Role: db_models.RoleEditor})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeleteItinerary(context.Background(), created.ID, editor), utils.ErrPermissionDenied)
	assert.ErrorIs(t, f.svc.DeleteItinerary(context.Background(), created.ID, uuid.New()), utils.ErrItineraryNotAccessible)

	require.NoError(t, f.svc.DeleteItinerary(context.Background(), created.ID, f.owner))
	assert.Empty(t, f.repo.items)
}

func TestNotes_Lifecycle(t *testing.T) {
	f := newServiceFixture(t)
	created := f.submitBasic(t)

	out, err := f.svc.AddNote(context.Background(), created.ID, f.owner, "book ferry tickets")
	require.NoError(t, err)
	require.Len(t, out.Notes, 1)
	assert.Equal(t, f.owner.String(), out.Notes[0].AuthorID)
	assert.False(t, out.Notes[0].Completed)

	out, err = f.svc.ToggleNote(context.Background(), created.ID, f.owner, out.Notes[0].ID)
	require.NoError(t, err)
	assert.True(t, out.Notes[0].Completed)

	out, err = f.svc.RemoveNote(context.Background(), created.ID, f.owner, out.Notes[0].ID)
	require.NoError(t, err)
	assert.Empty(t, out.Notes)
}

func TestRemoveTraveler_ServiceIdempotency(t *testing.T) {
	f := newServiceFixture(t)
	created := f.submitBasic(t)

	viewer := uuid.New()
	f.friends.pools[f.owner] = []uuid.UUID{viewer}
	_, err := f.svc.AddTraveler(context.Background(), created.ID, f.owner, request_models.AddTravelerRequest{UserID: viewer.String()})
	require.NoError(t, err)

	out, err := f.svc.RemoveTraveler(context.Background(), created.ID, f.owner, viewer.String())
	require.NoError(t, err)
	assert.Empty(t, out.Travelers)

	out, err = f.svc.RemoveTraveler(context.Background(), created.ID, f.owner, viewer.String())
	require.NoError(t, err)
	assert.Empty(t, out.Travelers)
}
