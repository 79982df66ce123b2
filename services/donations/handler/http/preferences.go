package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sparechange/roundup/internal/pkg/logger"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/internal/utils"
	"github.com/sparechange/roundup/services/donations"
)

// PreferencesHandler handles HTTP requests for donation preferences
type PreferencesHandler struct {
	donationUC donations.DonationUC
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(donationUC donations.DonationUC) *PreferencesHandler {
	return &PreferencesHandler{
		donationUC: donationUC,
	}
}

// GetPreferences returns the user's round-up configuration
func (h *PreferencesHandler) GetPreferences(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	prefs, err := h.donationUC.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, donations.ErrPreferencesNotFound) {
			return utils.NotFoundResponse(c, "Donation preferences not found")
		}
		logger.Error("Failed to get preferences",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get preferences")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Preferences retrieved", prefs)
}

// UpdatePreferences creates or updates the user's round-up configuration
func (h *PreferencesHandler) UpdatePreferences(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid preferences payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	prefs, err := h.donationUC.UpdatePreferences(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, donations.ErrCharityRequired):
			return utils.BadRequestResponse(c, "A default charity is required")
		case errors.Is(err, donations.ErrCharityNotFound):
			return utils.NotFoundResponse(c, "Charity not found")
		case errors.Is(err, donations.ErrInvalidAmount):
			return utils.BadRequestResponse(c, "Threshold and limit must not be negative")
		case errors.Is(err, donations.ErrInvalidDonationDay):
			return utils.BadRequestResponse(c, err.Error())
		default:
			logger.Error("Failed to update preferences",
				logger.String("user_id", userID.String()),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to update preferences")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Preferences updated", prefs)
}
