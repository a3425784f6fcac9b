package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adjaoko/app/dto"
	"adjaoko/app/services"
	"adjaoko/app/session"
	"adjaoko/app/utils"
)

// AuthHandler handles the auth screen endpoints.
type AuthHandler struct {
	remote *services.RemoteStore
	holder *session.Holder
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(remote *services.RemoteStore, holder *session.Holder) *AuthHandler {
	return &AuthHandler{
		remote: remote,
		holder: holder,
	}
}

// SignUp registers a new account and signs it in right away, the way the
// sign-up screen does.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation failed", map[string]string{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	if _, err := h.remote.SignUp(ctx, req.Email, req.Password, req.Name); err != nil {
		respondError(c, http.StatusBadGateway, "impossible de créer le compte", map[string]string{"error": err.Error()})
		return
	}

	user, err := h.remote.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		respondError(c, http.StatusBadGateway, "impossible de se connecter après inscription", map[string]string{"error": err.Error()})
		return
	}

	respondJSON(c, http.StatusCreated, dto.UserResponse{User: user})
}

// SignIn exchanges credentials for a session.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation failed", map[string]string{"error": err.Error()})
		return
	}

	user, err := h.remote.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "impossible de se connecter", map[string]string{"error": err.Error()})
		return
	}

	respondJSON(c, http.StatusOK, dto.UserResponse{User: user})
}

// SignOut invalidates the current session.
func (h *AuthHandler) SignOut(c *gin.Context) {
	// The local session is cleared even when the remote call fails.
	_ = h.remote.SignOut(c.Request.Context())
	respondJSON(c, http.StatusOK, dto.OKResponse{OK: true})
}

// ForgotPassword asks for a password recovery email.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation failed", map[string]string{"error": err.Error()})
		return
	}

	if err := h.remote.ResetPasswordForEmail(c.Request.Context(), req.Email); err != nil {
		respondError(c, http.StatusBadGateway, "impossible d'envoyer l'email", nil)
		return
	}

	respondJSON(c, http.StatusOK, dto.OKResponse{OK: true})
}

// GetSession reports the session holder's state.
func (h *AuthHandler) GetSession(c *gin.Context) {
	respondJSON(c, http.StatusOK, dto.SessionResponse{
		State: string(h.holder.State()),
		User:  h.holder.User(),
	})
}
