package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/costureira_pro/internal/core/ports/services"
	"github.com/SscSPs/costureira_pro/internal/dto"
	"github.com/SscSPs/costureira_pro/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles HTTP requests related to the current account.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := &profileHandler{profileService: profileService}

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.updateProfile)
	}
}

// getProfile godoc
// @Summary Get the current account
// @Description Returns the profile of the authenticated user. It is created on the first authenticated call.
// @Tags profile
// @Produce  json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve profile"
// @Security BearerAuth
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profile, err := h.profileService.GetProfile(c.Request.Context(), profileIDFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// updateProfile godoc
// @Summary Update the current account
// @Description Updates display name, business name and phone of the authenticated user.
// @Tags profile
// @Accept  json
// @Produce  json
// @Param   profile body dto.UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update profile"
// @Security BearerAuth
// @Router /profile [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), profileIDFrom(c), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update profile")
		return
	}
	logger.Info("Profile updated")
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
