package planner

import (
	"tripboard/internal/models/db_models"
	"tripboard/pkg/utils"
)

// AssignItem appends item to the board at dayIndex and recomputes that
// board's budget and the itinerary total.
func AssignItem(it *db_models.Itinerary, dayIndex int, item db_models.BoardItem) error {
	if dayIndex < 0 || dayIndex >= len(it.Boards) {
		return utils.IndexError("day", dayIndex, len(it.Boards))
	}
	if item.Price < 0 {
		return utils.ErrInvalidInput
	}

	board := &it.Boards[dayIndex]
	item.BoardID = board.ID
	item.Position = len(board.Items)
	board.Items = append(board.Items, item)

	RecomputeBudgets(it)
	return nil
}

// RemoveItem removes the item at itemIndex from the board at dayIndex and
// recomputes budgets.
func RemoveItem(it *db_models.Itinerary, dayIndex, itemIndex int) error {
	if dayIndex < 0 || dayIndex >= len(it.Boards) {
		return utils.IndexError("day", dayIndex, len(it.Boards))
	}
	board := &it.Boards[dayIndex]
	if itemIndex < 0 || itemIndex >= len(board.Items) {
		return utils.IndexError("item", itemIndex, len(board.Items))
	}

	board.Items = append(board.Items[:itemIndex], board.Items[itemIndex+1:]...)
	for i := range board.Items {
		board.Items[i].Position = i
	}

	RecomputeBudgets(it)
	return nil
}

// AddDay appends one empty board dated a day after the current last board,
// extending the trip without a full reschedule.
func AddDay(it *db_models.Itinerary) {
	date := utils.CalendarDate(it.StartDate)
	if n := len(it.Boards); n > 0 {
		date = utils.CalendarDate(it.Boards[n-1].Date).AddDate(0, 0, 1)
	}

	it.Boards = append(it.Boards, db_models.Board{
		ItineraryID: it.ID,
		Date:        date,
		Position:    len(it.Boards),
		Items:       []db_models.BoardItem{},
	})
	it.EndDate = date
	RecomputeBudgets(it)
}

// RemoveDay deletes the board at dayIndex. Positions close up so day indices
// stay dense, but the remaining boards keep their dates: removing a middle
// day leaves a calendar gap rather than silently moving items to other days.
func RemoveDay(it *db_models.Itinerary, dayIndex int) error {
	if dayIndex < 0 || dayIndex >= len(it.Boards) {
		return utils.IndexError("day", dayIndex, len(it.Boards))
	}

	it.Boards = append(it.Boards[:dayIndex], it.Boards[dayIndex+1:]...)
	for i := range it.Boards {
		it.Boards[i].Position = i
	}

	RecomputeBudgets(it)
	return nil
}

// RecomputeBudgets re-derives every board's daily budget and the itinerary
// total from item prices. Totals are never trusted as input anywhere.
func RecomputeBudgets(it *db_models.Itinerary) {
	total := 0.0
	for i := range it.Boards {
		daily := sumItemPrices(it.Boards[i].Items)
		it.Boards[i].DailyBudget = daily
		total += daily
	}
	it.TotalBudget = total
}

// VerifyBudgets cross-checks the stored budget snapshots against the item
// prices. A failure means a bug in this package, not bad input.
func VerifyBudgets(it *db_models.Itinerary) error {
	total := 0.0
	for i := range it.Boards {
		daily := sumItemPrices(it.Boards[i].Items)
		if it.Boards[i].DailyBudget != daily {
			return utils.ErrBudgetInvariantViolation
		}
		total += daily
	}
	if it.TotalBudget != total {
		return utils.ErrBudgetInvariantViolation
	}
	return nil
}

func sumItemPrices(items []db_models.BoardItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.Price
	}
	return sum
}
