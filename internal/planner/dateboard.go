// Package planner is the pure itinerary engine: board generation from date
// ranges, item assignment with budget bookkeeping, the traveler roster, and
// permission resolution. It mutates a single in-memory aggregate and never
// touches storage or transport; callers own persistence and serialization.
package planner

import (
	"time"

	"tripboard/internal/models/db_models"
	"tripboard/pkg/utils"
)

// GenerateBoards produces one empty board per calendar day of [startDate,
// endDate], both inclusive. Inputs are normalized to timezone-naive calendar
// dates before any arithmetic so a client in another offset can never shift
// the day count.
func GenerateBoards(startDate, endDate time.Time) ([]db_models.Board, error) {
	start := utils.CalendarDate(startDate)
	end := utils.CalendarDate(endDate)

	if end.Before(start) {
		return nil, utils.ErrInvalidDateRange
	}

	days := utils.DaysBetween(start, end) + 1
	boards := make([]db_models.Board, days)
	for i := 0; i < days; i++ {
		boards[i] = db_models.Board{
			Date:     start.AddDate(0, 0, i),
			Position: i,
			Items:    []db_models.BoardItem{},
		}
	}
	return boards, nil
}

// RescheduleBoards regenerates the board list for a new date range, carrying
// item assignments over positionally by day index. Days past the new length
// are dropped together with their items; the truncation is deliberately
// lossy, matching how shortening a trip has always behaved.
func RescheduleBoards(existing []db_models.Board, newStartDate, newEndDate time.Time) ([]db_models.Board, error) {
	boards, err := GenerateBoards(newStartDate, newEndDate)
	if err != nil {
		return nil, err
	}

	for i := range boards {
		if i < len(existing) {
			boards[i].Items = existing[i].Items
			boards[i].DailyBudget = sumItemPrices(existing[i].Items)
		}
	}
	return boards, nil
}
