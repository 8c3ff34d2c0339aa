package handlers

import (
	"net/http"

	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
	"bedrijvengids.backend/internal/interfaces/http/middleware"
	"bedrijvengids.backend/internal/interfaces/http/response"
	"bedrijvengids.backend/internal/usecases"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClaimHandler handles facility claim endpoints
type ClaimHandler struct {
	claimUsecase *usecases.ClaimUsecase
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimUsecase *usecases.ClaimUsecase) *ClaimHandler {
	return &ClaimHandler{
		claimUsecase: claimUsecase,
	}
}

// Create submits a claim for a facility
// POST /api/v1/claims
func (h *ClaimHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.claimUsecase.CreateClaim(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// List lists the caller's claims
// GET /api/v1/claims
func (h *ClaimHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	claims, err := h.claimUsecase.ListClaims(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"claims": claims})
}

// Get returns one of the caller's claims
// GET /api/v1/claims/:id
func (h *ClaimHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid claim id"))
		return
	}

	claim, err := h.claimUsecase.GetClaim(c.Request.Context(), userID, claimID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"claim": claim})
}

// Verify confirms the emailed claim code
// POST /api/v1/claims/:id/verify
func (h *ClaimHandler) Verify(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid claim id"))
		return
	}

	var input entities.VerifyClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	claim, err := h.claimUsecase.VerifyClaim(c.Request.Context(), userID, claimID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"claim": claim})
}
