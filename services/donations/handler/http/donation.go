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

// DonationHandler handles HTTP requests for donation operations
type DonationHandler struct {
	donationUC donations.DonationUC
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationUC donations.DonationUC) *DonationHandler {
	return &DonationHandler{
		donationUC: donationUC,
	}
}

// SubmitDirectDonation handles one-off donation requests
func (h *DonationHandler) SubmitDirectDonation(c echo.Context) error {
	return h.submitDonation(c, models.DonationKindDirect)
}

// SubmitRoundUpDonation handles explicit batch round-up donation requests
func (h *DonationHandler) SubmitRoundUpDonation(c echo.Context) error {
	return h.submitDonation(c, models.DonationKindRoundUp)
}

func (h *DonationHandler) submitDonation(c echo.Context, kind string) error {
	var req models.DonationRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid donation request payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.Kind = kind

	outcome, err := h.donationUC.SubmitDonation(c.Request().Context(), &req)
	if err != nil {
		return donationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Donation submitted", outcome)
}

// GetOpportunities returns the round-ups the current feed window would produce
func (h *DonationHandler) GetOpportunities(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	opportunities, summary, err := h.donationUC.GetRoundUpOpportunities(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, donations.ErrNoFeedItem) {
			return utils.NotFoundResponse(c, "No linked transaction feed")
		}
		logger.Error("Failed to get round-up opportunities",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get round-up opportunities")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Round-up opportunities retrieved", map[string]interface{}{
		"opportunities": opportunities,
		"summary":       summary,
	})
}

// GetUserTransactions returns the user's donation transaction history
func (h *DonationHandler) GetUserTransactions(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	txns, err := h.donationUC.GetUserTransactions(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to get user transactions",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", txns)
}

// GetTotalDonations returns the user's lifetime completed donation total
func (h *DonationHandler) GetTotalDonations(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	total, err := h.donationUC.GetTotalDonations(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to get total donations",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get total donations")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Total donations retrieved", map[string]interface{}{
		"user_id": userID,
		"total":   total,
	})
}

func donationErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, donations.ErrInvalidAmount):
		return utils.BadRequestResponse(c, "Donation amount must be positive")
	case errors.Is(err, donations.ErrCharityRequired):
		return utils.BadRequestResponse(c, "A charity is required")
	case errors.Is(err, donations.ErrCharityNotFound):
		return utils.NotFoundResponse(c, "Charity not found")
	case errors.Is(err, donations.ErrInstrumentNotFound):
		return utils.NotFoundResponse(c, "Funding instrument not found")
	case errors.Is(err, donations.ErrInstrumentInactive):
		return utils.BadRequestResponse(c, "Funding instrument is inactive")
	case errors.Is(err, donations.ErrNoFundingInstrument):
		return utils.BadRequestResponse(c, "No active funding instrument on file")
	case errors.Is(err, donations.ErrCustomerRefMissing):
		return utils.BadRequestResponse(c, "User has no payment profile")
	default:
		logger.Error("Failed to submit donation", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to submit donation")
	}
}
