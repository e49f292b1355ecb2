package router

import (
	"net/http"
	"time"

	"timin-server/internal/config"
	"timin-server/internal/handlers"
	"timin-server/internal/middleware"
	"timin-server/internal/services"
	"timin-server/internal/store"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func SetupRouter(stores *store.Stores, cfg config.Config, logger zerolog.Logger) *mux.Router {
	authService := services.NewAuthService(cfg.Secret, logger)
	userService := services.NewUserService(stores, logger)
	shiftService := services.NewShiftService(stores, logger)
	reviewService := services.NewReviewService(stores, logger)

	authHandler := handlers.NewAuthHandler(userService, authService, cfg.Production, logger)
	userHandler := handlers.NewUserHandler(userService, reviewService, logger)
	shiftHandler := handlers.NewShiftHandler(shiftService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())
	r.Use(middleware.Session(authService, userService))

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	api.HandleFunc("/me", userHandler.Me).Methods("GET")
	api.HandleFunc("/me/profile", userHandler.UpdateProfile).Methods("PUT")
	api.HandleFunc("/profile/{userId}", userHandler.PublicProfile).Methods("GET")

	api.HandleFunc("/shifts", shiftHandler.List).Methods("GET")
	api.HandleFunc("/shifts", shiftHandler.Create).Methods("POST")
	api.HandleFunc("/shifts/{id}/apply", shiftHandler.Apply).Methods("POST")
	api.HandleFunc("/shifts/{id}/hire", shiftHandler.Hire).Methods("POST")
	api.HandleFunc("/shifts/{id}/checkin", shiftHandler.CheckIn).Methods("POST")
	api.HandleFunc("/shifts/{id}/checkout", shiftHandler.CheckOut).Methods("POST")

	api.HandleFunc("/reviews", reviewHandler.Submit).Methods("POST")
	api.HandleFunc("/reviews/user/{userId}", reviewHandler.ForUser).Methods("GET")
	api.HandleFunc("/reviews/shift/{shiftId}", reviewHandler.ForShift).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}`))
	}).Methods("GET")

	return r
}
