package services

import (
	"math"
	"strings"
	"time"

	"timin-server/internal/models"
	"timin-server/internal/store"

	"github.com/rs/zerolog"
)

type ReviewService struct {
	stores *store.Stores
	logger zerolog.Logger
}

func NewReviewService(stores *store.Stores, logger zerolog.Logger) *ReviewService {
	return &ReviewService{
		stores: stores,
		logger: logger,
	}
}

// Submit records a one-off review for a shift the reviewer was party to
// (owning employer or hired worker). The reviewee is caller-trusted: only the
// reviewer's involvement is checked, matching the original behavior.
func (s *ReviewService) Submit(reviewer *models.User, req *models.SubmitReviewRequest) (*models.Review, error) {
	if req.ShiftID == "" || req.RevieweeID == "" || req.Rating == 0 {
		return nil, ErrMissingFields
	}
	if req.Rating != math.Trunc(req.Rating) || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	shifts, err := s.stores.Shifts.Load()
	if err != nil {
		return nil, err
	}
	shift := findShift(shifts, req.ShiftID)
	if shift == nil {
		return nil, ErrShiftNotFound
	}

	asEmployer := reviewer.Role == string(models.RoleEmployer) && shift.EmployerID == reviewer.ID
	asWorker := reviewer.Role == string(models.RoleWorker) && shift.HiredWorkerID != nil && *shift.HiredWorkerID == reviewer.ID
	if !asEmployer && !asWorker {
		return nil, ErrNotInvolved
	}

	review := models.Review{
		ID:           generateID("rev"),
		ShiftID:      req.ShiftID,
		ReviewerID:   reviewer.ID,
		ReviewerRole: reviewer.Role,
		RevieweeID:   req.RevieweeID,
		Rating:       int(req.Rating),
		Comment:      strings.TrimSpace(req.Comment),
		CreatedAt:    time.Now().UTC(),
	}

	err = s.stores.Reviews.Update(func(reviews []models.Review) ([]models.Review, error) {
		for _, r := range reviews {
			if r.ShiftID == req.ShiftID && r.ReviewerID == reviewer.ID {
				return nil, ErrAlreadyReviewed
			}
		}
		return append(reviews, review), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("review_id", review.ID).Str("shift_id", review.ShiftID).Str("reviewer_id", review.ReviewerID).Msg("Review submitted")
	return &review, nil
}

// ForUser projects all reviews naming the user as reviewee, with the raw
// arithmetic mean.
func (s *ReviewService) ForUser(userID string) (*models.UserReviewsResponse, error) {
	reviews, err := s.stores.Reviews.Load()
	if err != nil {
		return nil, err
	}

	userReviews := []models.Review{}
	total := 0
	for _, r := range reviews {
		if r.RevieweeID == userID {
			userReviews = append(userReviews, r)
			total += r.Rating
		}
	}

	avg := 0.0
	if len(userReviews) > 0 {
		avg = float64(total) / float64(len(userReviews))
	}

	return &models.UserReviewsResponse{
		Reviews:   userReviews,
		AvgRating: avg,
		Count:     len(userReviews),
	}, nil
}

func (s *ReviewService) ForShift(shiftID string) ([]models.Review, error) {
	reviews, err := s.stores.Reviews.Load()
	if err != nil {
		return nil, err
	}

	shiftReviews := []models.Review{}
	for _, r := range reviews {
		if r.ShiftID == shiftID {
			shiftReviews = append(shiftReviews, r)
		}
	}
	return shiftReviews, nil
}

// RatingSummary is the public-profile projection: average rounded to one
// decimal place.
func (s *ReviewService) RatingSummary(userID string) (*models.RatingSummary, error) {
	result, err := s.ForUser(userID)
	if err != nil {
		return nil, err
	}

	return &models.RatingSummary{
		Average: math.Round(result.AvgRating*10) / 10,
		Count:   result.Count,
	}, nil
}
