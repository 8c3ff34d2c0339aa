package handlers

import (
	"net/http"

	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
	"bedrijvengids.backend/internal/interfaces/http/middleware"
	"bedrijvengids.backend/internal/interfaces/http/response"
	"bedrijvengids.backend/internal/usecases"
	"github.com/gin-gonic/gin"
)

// FavoriteHandler handles saved-facility endpoints
type FavoriteHandler struct {
	favoriteUsecase *usecases.FavoriteUsecase
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteUsecase *usecases.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUsecase: favoriteUsecase,
	}
}

// Add saves a facility for the caller
// POST /api/v1/favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.AddFavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	favorite, err := h.favoriteUsecase.AddFavorite(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorite": favorite})
}

// Remove deletes a saved facility; removing one that is not saved
// succeeds quietly
// DELETE /api/v1/favorites?slug=...
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	slug := c.Query("slug")
	if slug == "" {
		response.Error(c, domainerrors.BadRequest("slug query parameter is required"))
		return
	}

	if err := h.favoriteUsecase.RemoveFavorite(c.Request.Context(), userID, slug); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List lists the caller's saved facilities
// GET /api/v1/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	favorites, err := h.favoriteUsecase.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorites": favorites})
}
