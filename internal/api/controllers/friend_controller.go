package controllers

import (
	"github.com/gin-gonic/gin"
	"tripboard/internal/services"
	"tripboard/pkg/utils"
)

type FriendController struct {
	friendService services.FriendServiceInterface
}

func NewFriendController(friendService services.FriendServiceInterface) *FriendController {
	return &FriendController{
		friendService: friendService,
	}
}

// GetFriends godoc
// @Summary List friends
// @Description Fetch the authenticated user's friends, the candidate pool for traveler selection
// @Tags Friend
// @Produce json
// @Success 200 {array} response_models.FriendResponse
// @Security BearerAuth
// @Router /friends [get]
func (f *FriendController) GetFriends(c *gin.Context) {
	friends, err := f.friendService.GetFriends(c.Request.Context(), requesterID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, friends, "Friends fetched successfully")
}
