package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erick-chung/near-you/internal/application"
	"github.com/erick-chung/near-you/internal/auth"
	"github.com/erick-chung/near-you/internal/domain/search"
	"github.com/erick-chung/near-you/internal/middleware"
	"github.com/erick-chung/near-you/internal/response"
)

// FavoriteHandler handles HTTP requests for favorite restaurants.
type FavoriteHandler struct {
	service *application.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service *application.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// RegisterRoutes registers all favorite routes on the given router group.
func (h *FavoriteHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	favorites := r.Group("/api/v1/favorites")
	favorites.Use(authMW)
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("/:restaurantId", h.RemoveFavorite)
	}
}

// ListFavorites handles GET /api/v1/favorites.
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	favorites, err := h.service.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, favorites)
}

// AddFavorite handles POST /api/v1/favorites. The body is a restaurant
// snapshot as returned by search.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req search.Restaurant
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddFavorite(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// RemoveFavorite handles DELETE /api/v1/favorites/:restaurantId.
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	restaurantID := c.Param("restaurantId")
	if err := h.service.RemoveFavorite(c.Request.Context(), userID, restaurantID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"removed": restaurantID})
}
