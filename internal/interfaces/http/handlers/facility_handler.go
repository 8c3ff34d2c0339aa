package handlers

import (
	"net/http"
	"strconv"

	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
	"bedrijvengids.backend/internal/interfaces/http/response"
	"bedrijvengids.backend/internal/usecases"
	"github.com/gin-gonic/gin"
)

// FacilityHandler handles public directory endpoints
type FacilityHandler struct {
	facilityUsecase *usecases.FacilityUsecase
	reviewUsecase   *usecases.ReviewUsecase
}

// NewFacilityHandler creates a new facility handler
func NewFacilityHandler(facilityUsecase *usecases.FacilityUsecase, reviewUsecase *usecases.ReviewUsecase) *FacilityHandler {
	return &FacilityHandler{
		facilityUsecase: facilityUsecase,
		reviewUsecase:   reviewUsecase,
	}
}

// List lists facilities with optional filters and pagination
// GET /api/v1/facilities?search=&category=&city=&state=&page=&limit=
func (h *FacilityHandler) List(c *gin.Context) {
	var filter entities.FacilityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	facilities, meta, err := h.facilityUsecase.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"facilities": facilities,
		"pagination": meta,
	})
}

// Get returns a single facility by slug
// GET /api/v1/facilities/:slug
func (h *FacilityHandler) Get(c *gin.Context) {
	facility, err := h.facilityUsecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"facility": facility})
}

// Reviews returns the merged review page for a facility
// GET /api/v1/facilities/:slug/reviews
func (h *FacilityHandler) Reviews(c *gin.Context) {
	page, err := h.reviewUsecase.GetFacilityReviews(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}
