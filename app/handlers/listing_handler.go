package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adjaoko/app/dto"
	"adjaoko/app/services"
	"adjaoko/app/utils"
)

// ListingHandler handles the post and browse endpoints.
type ListingHandler struct {
	listings *services.ListingService
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(listings *services.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

// List returns listings filtered by the q, crop and location query
// parameters.
func (h *ListingHandler) List(c *gin.Context) {
	filter := services.BrowseFilter{
		Search:   c.Query("q"),
		Crop:     c.Query("crop"),
		Location: c.Query("location"),
	}

	listings := h.listings.Browse(c.Request.Context(), filter)
	respondJSON(c, http.StatusOK, dto.ListingsResponse{Listings: listings})
}

// Create publishes a new listing for the signed-in user.
func (h *ListingHandler) Create(c *gin.Context) {
	var req dto.PostListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation failed", map[string]string{"error": err.Error()})
		return
	}

	created, err := h.listings.Post(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			respondError(c, http.StatusUnauthorized, "vous devez être connecté pour publier une annonce", nil)
			return
		}
		respondError(c, http.StatusBadGateway, "une erreur est survenue lors de la publication", nil)
		return
	}

	respondJSON(c, http.StatusCreated, created)
}
