package planner

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripboard/internal/models/db_models"
	"tripboard/pkg/utils"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func item(price float64) db_models.BoardItem {
	return db_models.BoardItem{FavoriteID: uuid.New(), Price: price}
}

func TestGenerateBoards(t *testing.T) {
	t.Run("three day trip", func(t *testing.T) {
		boards, err := GenerateBoards(date(2025, 4, 1), date(2025, 4, 3))
		require.NoError(t, err)
		require.Len(t, boards, 3)

		assert.Equal(t, date(2025, 4, 1), boards[0].Date)
		assert.Equal(t, date(2025, 4, 2), boards[1].Date)
		assert.Equal(t, date(2025, 4, 3), boards[2].Date)
		for i, b := range boards {
			assert.Equal(t, i, b.Position)
			assert.Empty(t, b.Items)
			assert.Zero(t, b.DailyBudget)
		}
	})

	t.Run("single day", func(t *testing.T) {
		boards, err := GenerateBoards(date(2025, 4, 1), date(2025, 4, 1))
		require.NoError(t, err)
		assert.Len(t, boards, 1)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := GenerateBoards(date(2025, 4, 3), date(2025, 4, 1))
		assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
	})

	t.Run("contiguous across month boundary", func(t *testing.T) {
		boards, err := GenerateBoards(date(2025, 1, 30), date(2025, 2, 2))
		require.NoError(t, err)
		require.Len(t, boards, 4)
		for i := 1; i < len(boards); i++ {
			assert.Equal(t, boards[i-1].Date.AddDate(0, 0, 1), boards[i].Date)
		}
	})

	t.Run("timezone offsets never shift the day count", func(t *testing.T) {
		ict := time.FixedZone("ICT", 7*3600)
		pst := time.FixedZone("PST", -8*3600)

		// Same calendar dates, wildly different instants.
		start := time.Date(2025, 4, 1, 23, 30, 0, 0, ict)
		end := time.Date(2025, 4, 3, 1, 15, 0, 0, pst)

		boards, err := GenerateBoards(start, end)
		require.NoError(t, err)
		require.Len(t, boards, 3)
		assert.Equal(t, date(2025, 4, 1), boards[0].Date)
		assert.Equal(t, date(2025, 4, 3), boards[2].Date)
	})
}

func TestRescheduleBoards(t *testing.T) {
	existing, err := GenerateBoards(date(2025, 4, 1), date(2025, 4, 3))
	require.NoError(t, err)
	existing[0].Items = []db_models.BoardItem{item(50)}
	existing[2].Items = []db_models.BoardItem{item(30), item(20)}

	t.Run("extension carries items and adds empty trailing days", func(t *testing.T) {
		boards, err := RescheduleBoards(existing, date(2025, 5, 10), date(2025, 5, 14))
		require.NoError(t, err)
		require.Len(t, boards, 5)

		assert.Equal(t, date(2025, 5, 10), boards[0].Date)
		assert.Len(t, boards[0].Items, 1)
		assert.Equal(t, 50.0, boards[0].DailyBudget)
		assert.Len(t, boards[2].Items, 2)
		assert.Equal(t, 50.0, boards[2].DailyBudget)
		assert.Empty(t, boards[3].Items)
		assert.Empty(t, boards[4].Items)
	})

	t.Run("truncation drops trailing day items", func(t *testing.T) {
		boards, err := RescheduleBoards(existing, date(2025, 4, 1), date(2025, 4, 2))
		require.NoError(t, err)
		require.Len(t, boards, 2)

		assert.Len(t, boards[0].Items, 1)
		assert.Empty(t, boards[1].Items)
	})

	t.Run("invalid range rejected before any carry-over", func(t *testing.T) {
		_, err := RescheduleBoards(existing, date(2025, 4, 2), date(2025, 4, 1))
		assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
	})
}
