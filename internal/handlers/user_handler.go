package handlers

import (
	"net/http"

	"timin-server/internal/middleware"
	"timin-server/internal/models"
	"timin-server/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService   *services.UserService
	reviewService *services.ReviewService
	logger        zerolog.Logger
}

func NewUserHandler(userService *services.UserService, reviewService *services.ReviewService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService:   userService,
		reviewService: reviewService,
		logger:        logger,
	}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	respondWithJSON(w, http.StatusOK, models.MeResponse{
		ID:      user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Profile: user.Profile,
	})
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		respondWithError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req models.ProfileUpdate
	decodeJSON(w, r, &req)

	profile, err := h.userService.UpdateProfile(user.ID, user.Role, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"profile": profile,
	})
}

// PublicProfile is unauthenticated and includes the reviewee's rounded
// rating summary.
func (h *UserHandler) PublicProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, err := h.userService.GetByID(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	rating, err := h.reviewService.RatingSummary(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.PublicProfileResponse{
		ID:      user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Profile: user.Profile,
		Rating:  *rating,
	})
}
