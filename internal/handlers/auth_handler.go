package handlers

import (
	"net/http"

	"timin-server/internal/middleware"
	"timin-server/internal/models"
	"timin-server/internal/services"

	"github.com/rs/zerolog"
)

type AuthHandler struct {
	userService *services.UserService
	authService *services.AuthService
	secure      bool
	logger      zerolog.Logger
}

func NewAuthHandler(userService *services.UserService, authService *services.AuthService, secure bool, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		secure:      secure,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	decodeJSON(w, r, &req)

	user, err := h.userService.Register(&req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.issueSession(w, user)
	respondWithJSON(w, http.StatusCreated, models.SessionResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	decodeJSON(w, r, &req)

	user, err := h.userService.Authenticate(&req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.issueSession(w, user)
	respondWithJSON(w, http.StatusOK, models.SessionResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	})
}

// Logout only clears the cookie; tokens are stateless and there is no
// server-side revocation list.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w, h.secure)
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, user *models.User) {
	token, err := h.authService.IssueToken(user)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", user.ID).Msg("Token issue failed")
		return
	}
	middleware.SetSessionCookie(w, token, services.TokenTTL, h.secure)
}
