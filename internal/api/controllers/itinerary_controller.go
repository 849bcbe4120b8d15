package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tripboard/internal/models/request_models"
	"tripboard/internal/services"
	"tripboard/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// requesterID reads the authenticated user set by the JWT middleware.
// uuid.Nil stands for an anonymous visitor on optional-auth routes.
func requesterID(c *gin.Context) uuid.UUID {
	raw := c.GetString("user_id")
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Submit godoc
// @Summary Create an itinerary
// @Description Create a complete itinerary (boards, notes, travelers) in one atomic submission
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SubmitItineraryRequest true "Itinerary"
// @Success 201 {object} response_models.ItineraryDetailResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (ic *ItineraryController) Submit(c *gin.Context) {
	var req request_models.SubmitItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := ic.itineraryService.Submit(c.Request.Context(), requesterID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, out, "Itinerary created successfully")
}

// GetItinerary godoc
// @Summary Get itinerary details
// @Description Fetch an itinerary filtered to what the requester's tier may see
// @Tags Itinerary
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{itineraryId} [get]
func (ic *ItineraryController) GetItinerary(c *gin.Context) {
	out, err := ic.itineraryService.GetItinerary(c.Request.Context(), c.Param("itineraryId"), requesterID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Itinerary fetched successfully")
}

func (ic *ItineraryController) ListItineraries(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	out, err := ic.itineraryService.ListItineraries(c.Request.Context(), requesterID(c), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Itineraries fetched successfully")
}

func (ic *ItineraryController) DeleteItinerary(c *gin.Context) {
	if err := ic.itineraryService.DeleteItinerary(c.Request.Context(), c.Param("itineraryId"), requesterID(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

// Reschedule godoc
// @Summary Reschedule an itinerary
// @Description Regenerate boards for a new date range; items carry over by day index, trailing days are dropped
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param request body request_models.RescheduleRequest true "New date range"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/reschedule [put]
func (ic *ItineraryController) Reschedule(c *gin.Context) {
	var req request_models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "start_date and end_date are required")
		return
	}

	out, err := ic.itineraryService.Reschedule(c.Request.Context(), c.Param("itineraryId"), requesterID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Itinerary rescheduled successfully")
}

func (ic *ItineraryController) UpdateDetails(c *gin.Context) {
	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := ic.itineraryService.UpdateDetails(c.Request.Context(), c.Param("itineraryId"), requesterID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Itinerary updated successfully")
}

func (ic *ItineraryController) AddDay(c *gin.Context) {
	out, err := ic.itineraryService.AddDay(c.Request.Context(), c.Param("itineraryId"), requesterID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Day added successfully")
}

func (ic *ItineraryController) RemoveDay(c *gin.Context) {
	dayIndex, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day index")
		return
	}

	out, err := ic.itineraryService.RemoveDay(c.Request.Context(), c.Param("itineraryId"), requesterID(c), dayIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Day removed successfully")
}

// AssignItem godoc
// @Summary Assign a favorite to a day
// @Description Append a favorite to the board at the given day index and recompute budgets
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param day path int true "Day index"
// @Param request body request_models.BoardItemInput true "Favorite"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/boards/{day}/items [post]
func (ic *ItineraryController) AssignItem(c *gin.Context) {
	dayIndex, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day index")
		return
	}

	var req request_models.BoardItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "favorite_id is required")
		return
	}

	out, err := ic.itineraryService.AssignItem(c.Request.Context(), c.Param("itineraryId"), requesterID(c), dayIndex, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Item assigned successfully")
}

func (ic *ItineraryController) RemoveItem(c *gin.Context) {
	dayIndex, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day index")
		return
	}
	itemIndex, err := strconv.Atoi(c.Param("item"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item index")
		return
	}

	out, err := ic.itineraryService.RemoveItem(c.Request.Context(), c.Param("itineraryId"), requesterID(c), dayIndex, itemIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Item removed successfully")
}

func (ic *ItineraryController) AddTraveler(c *gin.Context) {
	var req request_models.AddTravelerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	out, err := ic.itineraryService.AddTraveler(c.Request.Context(), c.Param("itineraryId"), requesterID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Traveler added successfully")
}

func (ic *ItineraryController) SetTravelerRole(c *gin.Context) {
	var req request_models.SetTravelerRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "role must be editor or viewer")
		return
	}

	out, err := ic.itineraryService.SetTravelerRole(c.Request.Context(), c.Param("itineraryId"), requesterID(c), c.Param("userId"), req.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Traveler role updated successfully")
}

func (ic *ItineraryController) RemoveTraveler(c *gin.Context) {
	out, err := ic.itineraryService.RemoveTraveler(c.Request.Context(), c.Param("itineraryId"), requesterID(c), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Traveler removed successfully")
}

func (ic *ItineraryController) AddNote(c *gin.Context) {
	var req request_models.NoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "text is required")
		return
	}

	out, err := ic.itineraryService.AddNote(c.Request.Context(), c.Param("itineraryId"), requesterID(c), req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Note added successfully")
}

func (ic *ItineraryController) ToggleNote(c *gin.Context) {
	out, err := ic.itineraryService.ToggleNote(c.Request.Context(), c.Param("itineraryId"), requesterID(c), c.Param("noteId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Note updated successfully")
}

func (ic *ItineraryController) RemoveNote(c *gin.Context) {
	out, err := ic.itineraryService.RemoveNote(c.Request.Context(), c.Param("itineraryId"), requesterID(c), c.Param("noteId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Note removed successfully")
}
