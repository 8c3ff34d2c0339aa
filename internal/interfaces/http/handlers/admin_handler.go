package handlers

import (
	"net/http"

	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
	"bedrijvengids.backend/internal/interfaces/http/response"
	"bedrijvengids.backend/internal/usecases"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles moderation endpoints. Routes are mounted behind
// RequireAdmin.
type AdminHandler struct {
	claimUsecase  *usecases.ClaimUsecase
	reviewUsecase *usecases.ReviewUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(claimUsecase *usecases.ClaimUsecase, reviewUsecase *usecases.ReviewUsecase) *AdminHandler {
	return &AdminHandler{
		claimUsecase:  claimUsecase,
		reviewUsecase: reviewUsecase,
	}
}

// UpdateClaimStatus approves or rejects a verified claim
// PUT /api/v1/admin/claims/:id/status
func (h *AdminHandler) UpdateClaimStatus(c *gin.Context) {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid claim id"))
		return
	}

	var input struct {
		Status entities.ClaimStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	claim, err := h.claimUsecase.UpdateClaimStatus(c.Request.Context(), claimID, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"claim": claim})
}

// UpdateReviewStatus publishes or rejects a pending review
// PUT /api/v1/admin/reviews/:id/status
func (h *AdminHandler) UpdateReviewStatus(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid review id"))
		return
	}

	var input struct {
		Status entities.ReviewStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	review, err := h.reviewUsecase.UpdateReviewStatus(c.Request.Context(), reviewID, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"review": review})
}
