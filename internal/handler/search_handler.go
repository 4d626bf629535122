package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/erick-chung/near-you/internal/application"
	"github.com/erick-chung/near-you/internal/auth"
	"github.com/erick-chung/near-you/internal/middleware"
	"github.com/erick-chung/near-you/internal/response"
)

// SearchHandler handles HTTP requests for restaurant search.
type SearchHandler struct {
	service *application.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(service *application.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// RegisterRoutes registers all search routes on the given router group.
func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	search := r.Group("/api/v1/search")
	search.Use(authMW)
	{
		search.POST("", h.Search)
		search.GET("/history", h.GetHistory)
	}

	geocode := r.Group("/api/v1/geocode")
	geocode.Use(authMW)
	{
		geocode.GET("/reverse", h.ReverseGeocode)
	}
}

// Search handles POST /api/v1/search.
func (h *SearchHandler) Search(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req application.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Search(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetHistory handles GET /api/v1/search/history.
func (h *SearchHandler) GetHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	records, err := h.service.GetSearchHistory(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, records)
}

// ReverseGeocode handles GET /api/v1/geocode/reverse?lat=..&lng=..
func (h *SearchHandler) ReverseGeocode(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "invalid lat parameter")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		response.BadRequest(c, "invalid lng parameter")
		return
	}

	address, err := h.service.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"address": address})
}
