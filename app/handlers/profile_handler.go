package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adjaoko/app/dto"
	"adjaoko/app/services"
	"adjaoko/app/utils"
)

// ProfileHandler handles the profile screen endpoints.
type ProfileHandler struct {
	profiles *services.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get returns the signed-in user's profile; Profile is null for first-time
// users.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profiles.Load(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			respondError(c, http.StatusUnauthorized, "vous devez être connecté pour accéder à votre profil", nil)
			return
		}
		respondError(c, http.StatusBadGateway, "failed to load profile", nil)
		return
	}

	respondJSON(c, http.StatusOK, dto.ProfileResponse{Profile: profile})
}

// Save upserts the signed-in user's profile.
func (h *ProfileHandler) Save(c *gin.Context) {
	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation failed", map[string]string{"error": err.Error()})
		return
	}

	saved, err := h.profiles.Save(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			respondError(c, http.StatusUnauthorized, "vous devez être connecté pour sauvegarder votre profil", nil)
			return
		}
		respondError(c, http.StatusBadGateway, "une erreur est survenue lors de la sauvegarde", nil)
		return
	}

	respondJSON(c, http.StatusOK, dto.ProfileResponse{Profile: saved})
}
