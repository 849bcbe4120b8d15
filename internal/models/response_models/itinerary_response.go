package response_models

import "encoding/json"

type ItinerarySummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TravelDays  int     `json:"travel_days"`
	TotalBudget float64 `json:"total_budget"`
	Privacy     string  `json:"privacy"`
}

type ItineraryDetailResponse struct {
	ID          string             `json:"id"`
	OwnerID     string             `json:"owner_id"`
	Name        string             `json:"name"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	TravelDays  int                `json:"travel_days"`
	TotalBudget float64            `json:"total_budget"`
	Privacy     string             `json:"privacy"`
	Tags        []string           `json:"tags,omitempty"`
	Boards      []BoardResponse    `json:"boards"`
	Notes       []NoteResponse     `json:"notes"`
	Travelers   []TravelerResponse `json:"travelers,omitempty"`
	Access      AccessResponse     `json:"access"`
}

type BoardResponse struct {
	ID          string              `json:"id"`
	Date        string              `json:"date"`
	Position    int                 `json:"position"`
	DailyBudget float64             `json:"daily_budget"`
	Items       []BoardItemResponse `json:"items"`
}

type BoardItemResponse struct {
	ID             string          `json:"id"`
	FavoriteID     string          `json:"favorite_id"`
	Price          float64         `json:"price"`
	DisplayPayload json.RawMessage `json:"display_payload,omitempty"`
}

type NoteResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	AuthorID  string `json:"author_id"`
}

type TravelerResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type AccessResponse struct {
	Tier    string `json:"tier"`
	CanView bool   `json:"can_view"`
	CanEdit bool   `json:"can_edit"`
}

type FriendResponse struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}
