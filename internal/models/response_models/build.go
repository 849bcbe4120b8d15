package response_models

import (
	"encoding/json"

	"tripboard/internal/models/db_models"
	"tripboard/internal/planner"
	"tripboard/pkg/utils"
)

// BuildItineraryDetail renders the aggregate filtered to what the resolved
// tier may see: the traveler roster is only exposed to the owner and attached
// travelers, never to visitors of a public itinerary.
func BuildItineraryDetail(it *db_models.Itinerary, access planner.Access) *ItineraryDetailResponse {
	out := &ItineraryDetailResponse{
		ID:          it.ID.String(),
		OwnerID:     it.OwnerID.String(),
		Name:        it.Name,
		StartDate:   utils.FormatCalendarDate(it.StartDate),
		EndDate:     utils.FormatCalendarDate(it.EndDate),
		TravelDays:  it.TravelDays(),
		TotalBudget: it.TotalBudget,
		Privacy:     it.Privacy,
		Tags:        it.Tags,
		Boards:      make([]BoardResponse, 0, len(it.Boards)),
		Notes:       make([]NoteResponse, 0, len(it.Notes)),
		Access: AccessResponse{
			Tier:    string(access.Tier),
			CanView: access.CanView,
			CanEdit: access.CanEdit,
		},
	}

	for _, b := range it.Boards {
		board := BoardResponse{
			ID:          b.ID.String(),
			Date:        utils.FormatCalendarDate(b.Date),
			Position:    b.Position,
			DailyBudget: b.DailyBudget,
			Items:       make([]BoardItemResponse, 0, len(b.Items)),
		}
		for _, item := range b.Items {
			board.Items = append(board.Items, BoardItemResponse{
				ID:             item.ID.String(),
				FavoriteID:     item.FavoriteID.String(),
				Price:          item.Price,
				DisplayPayload: json.RawMessage(item.DisplayPayload),
			})
		}
		out.Boards = append(out.Boards, board)
	}

	for _, n := range it.Notes {
		out.Notes = append(out.Notes, NoteResponse{
			ID:        n.ID.String(),
			Text:      n.Text,
			Completed: n.Completed,
			AuthorID:  n.AuthorID.String(),
		})
	}

	if access.Tier != planner.TierVisitor {
		for _, t := range it.Travelers {
			out.Travelers = append(out.Travelers, TravelerResponse{
				UserID: t.UserID.String(),
				Role:   t.Role,
			})
		}
	}

	return out
}

func BuildItinerarySummary(it *db_models.Itinerary) ItinerarySummary {
	return ItinerarySummary{
		ID:          it.ID.String(),
		Name:        it.Name,
		StartDate:   utils.FormatCalendarDate(it.StartDate),
		EndDate:     utils.FormatCalendarDate(it.EndDate),
		TravelDays:  it.TravelDays(),
		TotalBudget: it.TotalBudget,
		Privacy:     it.Privacy,
	}
}
