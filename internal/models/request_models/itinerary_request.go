package request_models

import "encoding/json"

type SubmitItineraryRequest struct {
	Name    string   `json:"name"`
	Privacy string   `json:"privacy" binding:"omitempty,oneof=private friends public"`
	Tags    []string `json:"tags"`
	// ISO calendar dates, "2006-01-02"
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`

	Notes []NoteInput `json:"notes"`
	// Outer index is the day index produced by the date range; inner slice is
	// the favorites assigned to that day, in display order.
	BoardAssignments [][]BoardItemInput  `json:"board_assignments"`
	Travelers        []TravelerSelection `json:"travelers"`
	// Any caller-supplied total budget is ignored; totals are always derived.
}

type BoardItemInput struct {
	FavoriteID     string          `json:"favorite_id" binding:"required,uuid4"`
	Price          float64         `json:"price"`
	DisplayPayload json.RawMessage `json:"display_payload"`
}

type TravelerSelection struct {
	UserID string `json:"user_id" binding:"required,uuid4"`
	Role   string `json:"role" binding:"omitempty,oneof=editor viewer"`
}

type NoteInput struct {
	Text string `json:"text" binding:"required"`
}

type RescheduleRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type UpdateItineraryRequest struct {
	Name    *string `json:"name"`
	Privacy *string `json:"privacy" binding:"omitempty,oneof=private friends public"`
}

type AddTravelerRequest struct {
	UserID string `json:"user_id" binding:"required,uuid4"`
	Role   string `json:"role" binding:"omitempty,oneof=editor viewer"`
}

type SetTravelerRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=editor viewer"`
}
