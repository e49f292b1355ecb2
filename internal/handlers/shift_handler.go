package handlers

import (
	"net/http"

	"timin-server/internal/middleware"
	"timin-server/internal/models"
	"timin-server/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type ShiftHandler struct {
	shiftService *services.ShiftService
	logger       zerolog.Logger
}

func NewShiftHandler(shiftService *services.ShiftService, logger zerolog.Logger) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
		logger:       logger,
	}
}

func (h *ShiftHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	mine := r.URL.Query().Get("mine") == "true"
	shifts, err := h.shiftService.List(user, mine)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, shifts)
}

func (h *ShiftHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		respondWithError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req models.CreateShiftRequest
	decodeJSON(w, r, &req)

	shift, err := h.shiftService.Create(user, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, shift)
}

func (h *ShiftHandler) Apply(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		respondWithError(w, http.StatusForbidden, "forbidden")
		return
	}

	if err := h.shiftService.Apply(mux.Vars(r)["id"], user); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *ShiftHandler) Hire(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		respondWithError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req models.HireRequest
	decodeJSON(w, r, &req)

	if err := h.shiftService.Hire(mux.Vars(r)["id"], user, req.WorkerID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *ShiftHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		respondWithError(w, http.StatusForbidden, "forbidden")
		return
	}

	if err := h.shiftService.CheckIn(mux.Vars(r)["id"], user); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *ShiftHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		respondWithError(w, http.StatusForbidden, "forbidden")
		return
	}

	if err := h.shiftService.CheckOut(mux.Vars(r)["id"], user); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
