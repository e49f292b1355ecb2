package handlers

import (
	"errors"
	"net/http"

	"timin-server/internal/middleware"
	"timin-server/internal/models"
	"timin-server/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
	logger        zerolog.Logger
}

func NewReviewHandler(reviewService *services.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		respondWithError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req models.SubmitReviewRequest
	decodeJSON(w, r, &req)

	review, err := h.reviewService.Submit(user, &req)
	if err != nil {
		// The review surface reports a missing shift as shift_not_found,
		// unlike the shift routes' generic not_found.
		if errors.Is(err, services.ErrShiftNotFound) {
			respondWithError(w, http.StatusNotFound, "shift_not_found")
			return
		}
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) ForUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviewService.ForUser(mux.Vars(r)["userId"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *ReviewHandler) ForShift(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ForShift(mux.Vars(r)["shiftId"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reviews)
}
