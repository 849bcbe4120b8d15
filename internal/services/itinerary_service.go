package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"tripboard/internal/models/db_models"
	"tripboard/internal/models/request_models"
	"tripboard/internal/models/response_models"
	"tripboard/internal/planner"
	"tripboard/internal/repositories"
	"tripboard/pkg/utils"
)

type ItineraryServiceInterface interface {
	// Submit creates the aggregate in one atomic step: boards are regenerated
	// server-side from the date range, budgets derived from item prices, and
	// traveler selections validated against the owner's friend pool. The
	// owner comes from the authenticated caller, never from the payload.
	Submit(ctx context.Context, ownerID uuid.UUID, req request_models.SubmitItineraryRequest) (*response_models.ItineraryDetailResponse, error)

	GetItinerary(ctx context.Context, itineraryID string, requesterID uuid.UUID) (*response_models.ItineraryDetailResponse, error)
	ListItineraries(ctx context.Context, requesterID uuid.UUID, page, pageSize int) ([]response_models.ItinerarySummary, error)
	DeleteItinerary(ctx context.Context, itineraryID string, requesterID uuid.UUID) error

	Reschedule(ctx context.Context, itineraryID string, requesterID uuid.UUID, req request_models.RescheduleRequest) (*response_models.ItineraryDetailResponse, error)
	UpdateDetails(ctx context.Context, itineraryID string, requesterID uuid.UUID, req request_models.UpdateItineraryRequest) (*response_models.ItineraryDetailResponse, error)

	AssignItem(ctx context.Context, itineraryID string, requesterID uuid.UUID, dayIndex int, req request_models.BoardItemInput) (*response_models.ItineraryDetailResponse, error)
	RemoveItem(ctx context.Context, itineraryID string, requesterID uuid.UUID, dayIndex, itemIndex int) (*response_models.ItineraryDetailResponse, error)
	AddDay(ctx context.Context, itineraryID string, requesterID uuid.UUID) (*response_models.ItineraryDetailResponse, error)
	RemoveDay(ctx context.Context, itineraryID string, requesterID uuid.UUID, dayIndex int) (*response_models.ItineraryDetailResponse, error)

	AddTraveler(ctx context.Context, itineraryID string, requesterID uuid.UUID, req request_models.AddTravelerRequest) (*response_models.ItineraryDetailResponse, error)
	SetTravelerRole(ctx context.Context, itineraryID string, requesterID uuid.UUID, travelerID string, role string) (*response_models.ItineraryDetailResponse, error)
	RemoveTraveler(ctx context.Context, itineraryID string, requesterID uuid.UUID, travelerID string) (*response_models.ItineraryDetailResponse, error)

	AddNote(ctx context.Context, itineraryID string, requesterID uuid.UUID, text string) (*response_models.ItineraryDetailResponse, error)
	ToggleNote(ctx context.Context, itineraryID string, requesterID uuid.UUID, noteID string) (*response_models.ItineraryDetailResponse, error)
	RemoveNote(ctx context.Context, itineraryID string, requesterID uuid.UUID, noteID string) (*response_models.ItineraryDetailResponse, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	friendService FriendServiceInterface
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository, friendService FriendServiceInterface) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		friendService: friendService,
	}
}

func (s *ItineraryService) Submit(ctx context.Context, ownerID uuid.UUID, req request_models.SubmitItineraryRequest) (*response_models.ItineraryDetailResponse, error) {
	start, err := utils.ParseCalendarDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseCalendarDate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	boards, err := planner.GenerateBoards(start, end)
	if err != nil {
		return nil, err
	}

	privacy := req.Privacy
	if privacy == "" {
		privacy = db_models.PrivacyPrivate
	}

	it := &db_models.Itinerary{
		OwnerID:   ownerID,
		Name:      req.Name,
		StartDate: utils.CalendarDate(start),
		EndDate:   utils.CalendarDate(end),
		Privacy:   privacy,
		Tags:      req.Tags,
		Boards:    boards,
	}

	// Board assignments are applied through the engine so index validation
	// and budget derivation cannot be bypassed by the caller.
	if len(req.BoardAssignments) > len(it.Boards) {
		return nil, utils.IndexError("day", len(req.BoardAssignments)-1, len(it.Boards))
	}
	for dayIndex, items := range req.BoardAssignments {
		for _, input := range items {
			item, err := buildBoardItem(input)
			if err != nil {
				return nil, err
			}
			if err := planner.AssignItem(it, dayIndex, item); err != nil {
				return nil, err
			}
		}
	}

	if len(req.Travelers) > 0 {
		pool, err := s.friendService.CandidatePool(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		for _, sel := range req.Travelers {
			userID, err := uuid.Parse(sel.UserID)
			if err != nil {
				return nil, utils.ErrInvalidInput
			}
			if err := planner.AddTraveler(it, pool, userID, sel.Role); err != nil {
				return nil, err
			}
		}
	}

	for i, note := range req.Notes {
		it.Notes = append(it.Notes, db_models.Note{
			Text:     note.Text,
			AuthorID: ownerID,
			Position: i,
		})
	}

	planner.RecomputeBudgets(it)
	if err := planner.VerifyBudgets(it); err != nil {
		return nil, err
	}

	if err := s.itineraryRepo.Create(ctx, it); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildItineraryDetail(it, planner.Resolve(it, ownerID)), nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, itineraryID string, requesterID uuid.UUID) (*response_models.ItineraryDetailResponse, error) {
	id, err := uuid.Parse(itineraryID)
	if err != nil {
		return nil, utils.ErrItineraryNotAccessible
	}

	it, err := s.itineraryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if it == nil {
		return nil, utils.ErrItineraryNotAccessible
	}

	access := planner.Resolve(it, requesterID)
	if !access.CanView {
		// Same response as a missing itinerary: a denied visitor must not
		// learn whether it exists.
		return nil, utils.ErrItineraryNotAccessible
	}

	return response_models.BuildItineraryDetail(it, access), nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, requesterID uuid.UUID, page, pageSize int) ([]response_models.ItinerarySummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	itineraries, err := s.itineraryRepo.ListByMember(ctx, requesterID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItinerarySummary, 0, len(itineraries))
	for i := range itineraries {
		out = append(out, response_models.BuildItinerarySummary(&itineraries[i]))
	}
	return out, nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, itineraryID string, requesterID uuid.UUID) error {
	id, err := uuid.Parse(itineraryID)
	if err != nil {
		return utils.ErrItineraryNotAccessible
	}

	it, err := s.itineraryRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if it == nil {
		return utils.ErrItineraryNotAccessible
	}

	access := planner.Resolve(it, requesterID)
	if access.Tier != planner.TierOwner {
		if !access.CanView {
			return utils.ErrItineraryNotAccessible
		}
		return utils.ErrPermissionDenied
	}

	if err := s.itineraryRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) Reschedule(ctx context.Context, itineraryID string, requesterID uuid.UUID, req request_models.RescheduleRequest) (*response_models.ItineraryDetailResponse, error) {
	start, err := utils.ParseCalendarDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseCalendarDate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	return s.edit(ctx, itineraryID, requesterID, func(it *db_models.Itinerary) error {
		boards, err := planner.RescheduleBoards(it.Boards, start, end)
		if err != nil {
			return err
		}
		it.Boards = boards
		it.StartDate = utils.CalendarDate(start)
		it.EndDate = utils.CalendarDate(end)
		planner.RecomputeBudgets(it)
		return nil
	})
}

func (s *ItineraryService) UpdateDetails(ctx context.Context, itineraryID string, requesterID uuid.UUID, req request_models.UpdateItineraryRequest) (*response_models.ItineraryDetailResponse, error) {
	return s.edit(ctx, itineraryID, requesterID, func(it *db_models.Itinerary) error {
		if req.Name != nil {
			it.Name = *req.Name
		}
		if req.Privacy != nil {
			switch *req.Privacy {
			case db_models.PrivacyPrivate, db_models.PrivacyFriends, db_models.PrivacyPublic:
				it.Privacy = *req.Privacy
			default:
				return utils.ErrInvalidInput
			}
		}
		return nil
	})
}

func (s *ItineraryService) AssignItem(ctx context.Context, itineraryID string, requesterID uuid.UUID, dayIndex int, req request_models.BoardItemInput) (*response_models.ItineraryDetailResponse, error) {
	item, err := buildBoardItem(req)
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, itineraryID, requesterID, func(it *db_models.Itinerary) error {
		return planner.AssignItem(it, dayIndex, item)
	})
}

func (s *ItineraryService) RemoveItem(ctx context.Context, itineraryID string, requesterID uuid.UUID, dayIndex, itemIndex int) (*response_models.ItineraryDetailResponse, error) {
	return s.edit(ctx, itineraryID, requesterID, func(it *db_models.Itinerary) error {
		return planner.RemoveItem(it, dayIndex, itemIndex)
	})
}

func (s *ItineraryService) AddDay(ctx context.Context, itineraryID string, requesterID uuid.UUID) (*response_models.ItineraryDetailResponse, error) {
	return s.edit(ctx, itineraryID, requesterID, func(it *db_models.Itinerary) error {
		planner.AddDay(it)
		return nil
	})
}

func (s *ItineraryService) RemoveDay(ctx context.Context, itineraryID string, requesterID uuid.UUID, dayIndex int) (*response_models.ItineraryDetailResponse, error) {
	return s.edit(ctx, itineraryID, requesterID, func(it *db_models.Itinerary) error {
		return planner.RemoveDay(it, dayIndex)
	})
}

func (s *ItineraryService) AddTraveler(ctx context.Context, itineraryID string, requesterID uuid.UUID, req request_models.AddTravelerRequest) (*response_models.ItineraryDetailResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	// The candidate pool is the requester's friend list, fetched outside the
	// aggregate transaction; the friend graph is not part of the aggregate.
	pool, err := s.friendService.CandidatePool(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	return s.edit(ctx, itineraryID, requesterID, func(it *db_models.Itinerary) error {
		return planner.AddTraveler(it, pool, userID, req.Role)
	})
}

func (s *ItineraryService) SetTravelerRole(ctx context.Context, itineraryID string, requesterID uuid.UUID, travelerID string, role string) (*response_models.ItineraryDetailResponse, error) {
	userID, err := uuid.Parse(travelerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	return s.edit(ctx, itineraryID, requesterID, func(it *db_models.Itinerary) error {
		return planner.SetTravelerRole(it, userID, role)
	})
}

func (s *ItineraryService) RemoveTraveler(ctx context.Context, itineraryID string, requesterID uuid.UUID, travelerID string) (*response_models.ItineraryDetailResponse, error) {
	userID, err := uuid.Parse(travelerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	return s.edit(ctx, itineraryID, requesterID, func(it *db_models.Itinerary) error {
		planner.RemoveTraveler(it, userID)
		return nil
	})
}

func (s *ItineraryService) AddNote(ctx context.Context, itineraryID string, requesterID uuid.UUID, text string) (*response_models.ItineraryDetailResponse, error) {
	if text == "" {
		return nil, utils.ErrInvalidInput
	}
	return s.edit(ctx, itineraryID, requesterID, func(it *db_models.Itinerary) error {
		it.Notes = append(it.Notes, db_models.Note{
			ItineraryID: it.ID,
			Text:        text,
			AuthorID:    requesterID,
			Position:    len(it.Notes),
		})
		return nil
	})
}

func (s *ItineraryService) ToggleNote(ctx context.Context, itineraryID string, requesterID uuid.UUID, noteID string) (*response_models.ItineraryDetailResponse, error) {
	id, err := uuid.Parse(noteID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	return s.edit(ctx, itineraryID, requesterID, func(it *db_models.Itinerary) error {
		for i := range it.Notes {
			if it.Notes[i].ID == id {
				it.Notes[i].Completed = !it.Notes[i].Completed
				return nil
			}
		}
		return utils.ErrInvalidInput
	})
}

func (s *ItineraryService) RemoveNote(ctx context.Context, itineraryID string, requesterID uuid.UUID, noteID string) (*response_models.ItineraryDetailResponse, error) {
	id, err := uuid.Parse(noteID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	return s.edit(ctx, itineraryID, requesterID, func(it *db_models.Itinerary) error {
		for i := range it.Notes {
			if it.Notes[i].ID == id {
				it.Notes = append(it.Notes[:i], it.Notes[i+1:]...)
				for j := range it.Notes {
					it.Notes[j].Position = j
				}
				return nil
			}
		}
		return nil // removal is idempotent, like traveler removal
	})
}

// edit is the single write path: lock the aggregate, resolve access fresh,
// apply the mutation, re-check the budget invariant, persist. Any failure
// leaves the aggregate unchanged.
func (s *ItineraryService) edit(ctx context.Context, itineraryID string, requesterID uuid.UUID, fn func(*db_models.Itinerary) error) (*response_models.ItineraryDetailResponse, error) {
	id, err := uuid.Parse(itineraryID)
	if err != nil {
		return nil, utils.ErrItineraryNotAccessible
	}

	it, err := s.itineraryRepo.Mutate(ctx, id, func(it *db_models.Itinerary) error {
		access := planner.Resolve(it, requesterID)
		if !access.CanEdit {
			if !access.CanView {
				return utils.ErrItineraryNotAccessible
			}
			return utils.ErrPermissionDenied
		}

		if err := fn(it); err != nil {
			return err
		}
		return planner.VerifyBudgets(it)
	})
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, utils.ErrItineraryNotAccessible
	}

	return response_models.BuildItineraryDetail(it, planner.Resolve(it, requesterID)), nil
}

func buildBoardItem(input request_models.BoardItemInput) (db_models.BoardItem, error) {
	favoriteID, err := uuid.Parse(input.FavoriteID)
	if err != nil {
		return db_models.BoardItem{}, utils.ErrInvalidInput
	}
	if input.Price < 0 {
		return db_models.BoardItem{}, utils.ErrInvalidInput
	}

	item := db_models.BoardItem{
		FavoriteID: favoriteID,
		Price:      input.Price,
	}
	if len(input.DisplayPayload) > 0 {
		item.DisplayPayload = datatypes.JSON(input.DisplayPayload)
	}
	return item, nil
}
