package services

import (
	"math"
	"time"

	"timin-server/internal/models"
	"timin-server/internal/store"

	"github.com/rs/zerolog"
)

// ShiftService is the lifecycle engine for a shift: created by its employer,
// applied to by workers, then hire, check-in and check-out. A shift is never
// deleted and stays mutable after checkout (re-checkin is allowed).
type ShiftService struct {
	stores *store.Stores
	logger zerolog.Logger
}

func NewShiftService(stores *store.Stores, logger zerolog.Logger) *ShiftService {
	return &ShiftService{
		stores: stores,
		logger: logger,
	}
}

func (s *ShiftService) Create(employer *models.User, req *models.CreateShiftRequest) (*models.Shift, error) {
	if employer.Role != string(models.RoleEmployer) {
		return nil, ErrForbidden
	}
	if req.Title == "" || req.HourlyRateAUD == 0 || req.Location == nil || req.Start == "" || req.End == "" {
		return nil, ErrMissingFields
	}

	start, errStart := time.Parse(time.RFC3339, req.Start)
	end, errEnd := time.Parse(time.RFC3339, req.End)
	if errStart != nil || errEnd != nil || !end.After(start) {
		return nil, ErrInvalidTime
	}

	// Bounds-check before the int conversion: out-of-range float-to-int
	// conversion is implementation-defined in Go.
	rateCents := math.Round(req.HourlyRateAUD * 100)
	if math.IsNaN(rateCents) || rateCents <= 0 || rateCents >= math.MaxInt64 {
		return nil, ErrInvalidRate
	}

	category := req.Category
	if category == "" {
		category = "general"
	}
	requiredSkills := req.RequiredSkills
	if requiredSkills == nil {
		requiredSkills = []string{}
	}
	state := req.Location.State
	if state == "" {
		state = "NSW"
	}

	shift := models.Shift{
		ID:              generateID("sft"),
		EmployerID:      employer.ID,
		Title:           req.Title,
		Description:     req.Description,
		HourlyRateCents: int(rateCents),
		Category:        category,
		RequiredSkills:  requiredSkills,
		Dresscode:       req.Dresscode,
		Requirements:    req.Requirements,
		Location: models.Location{
			State:    state,
			Postcode: req.Location.Postcode,
			Suburb:   req.Location.Suburb,
		},
		Start:      start,
		End:        end,
		Applicants: []string{},
		CheckIns:   []models.CheckIn{},
	}

	err := s.stores.Shifts.Update(func(shifts []models.Shift) ([]models.Shift, error) {
		return append(shifts, shift), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("shift_id", shift.ID).Str("employer_id", employer.ID).Msg("Shift created")
	return &shift, nil
}

// Apply is idempotent: a worker already in the applicant set is a no-op.
func (s *ShiftService) Apply(shiftID string, worker *models.User) error {
	if worker.Role != string(models.RoleWorker) {
		return ErrForbidden
	}

	return s.stores.Shifts.Update(func(shifts []models.Shift) ([]models.Shift, error) {
		shift := findShift(shifts, shiftID)
		if shift == nil {
			return nil, ErrShiftNotFound
		}
		for _, id := range shift.Applicants {
			if id == worker.ID {
				return shifts, nil
			}
		}
		shift.Applicants = append(shift.Applicants, worker.ID)
		return shifts, nil
	})
}

// Hire sets the hired worker. There is no un-hire: once set, the only
// accepted repeat is the same worker (idempotent success).
func (s *ShiftService) Hire(shiftID string, employer *models.User, workerID string) error {
	if employer.Role != string(models.RoleEmployer) {
		return ErrForbidden
	}

	return s.stores.Shifts.Update(func(shifts []models.Shift) ([]models.Shift, error) {
		shift := findShift(shifts, shiftID)
		if shift == nil {
			return nil, ErrShiftNotFound
		}
		if shift.EmployerID != employer.ID {
			return nil, ErrForbidden
		}
		applied := false
		for _, id := range shift.Applicants {
			if id == workerID {
				applied = true
				break
			}
		}
		if !applied {
			return nil, ErrNotApplied
		}
		if shift.HiredWorkerID != nil && *shift.HiredWorkerID != workerID {
			return nil, ErrAlreadyHired
		}
		shift.HiredWorkerID = &workerID
		return shifts, nil
	})
}

func (s *ShiftService) CheckIn(shiftID string, worker *models.User) error {
	if worker.Role != string(models.RoleWorker) {
		return ErrForbidden
	}

	return s.stores.Shifts.Update(func(shifts []models.Shift) ([]models.Shift, error) {
		shift := findShift(shifts, shiftID)
		if shift == nil {
			return nil, ErrShiftNotFound
		}
		if shift.HiredWorkerID == nil || *shift.HiredWorkerID != worker.ID {
			return nil, ErrForbidden
		}
		if openCheckIn(shift, worker.ID) != nil {
			return nil, ErrAlreadyCheckedIn
		}
		shift.CheckIns = append(shift.CheckIns, models.CheckIn{
			UserID:    worker.ID,
			CheckinAt: time.Now().UTC(),
		})
		return shifts, nil
	})
}

func (s *ShiftService) CheckOut(shiftID string, worker *models.User) error {
	if worker.Role != string(models.RoleWorker) {
		return ErrForbidden
	}

	return s.stores.Shifts.Update(func(shifts []models.Shift) ([]models.Shift, error) {
		shift := findShift(shifts, shiftID)
		if shift == nil {
			return nil, ErrShiftNotFound
		}
		if shift.HiredWorkerID == nil || *shift.HiredWorkerID != worker.ID {
			return nil, ErrForbidden
		}
		record := openCheckIn(shift, worker.ID)
		if record == nil {
			return nil, ErrNotCheckedIn
		}
		now := time.Now().UTC()
		record.CheckoutAt = &now
		return shifts, nil
	})
}

// List returns every shift; mine narrows to owned shifts for employers only
// (workers always see the full collection).
func (s *ShiftService) List(caller *models.User, mine bool) ([]models.Shift, error) {
	shifts, err := s.stores.Shifts.Load()
	if err != nil {
		return nil, err
	}

	if mine && caller.Role == string(models.RoleEmployer) {
		owned := []models.Shift{}
		for _, shift := range shifts {
			if shift.EmployerID == caller.ID {
				owned = append(owned, shift)
			}
		}
		return owned, nil
	}

	return shifts, nil
}

func findShift(shifts []models.Shift, shiftID string) *models.Shift {
	for i := range shifts {
		if shifts[i].ID == shiftID {
			return &shifts[i]
		}
	}
	return nil
}

func openCheckIn(shift *models.Shift, workerID string) *models.CheckIn {
	for i := range shift.CheckIns {
		if shift.CheckIns[i].UserID == workerID && shift.CheckIns[i].CheckoutAt == nil {
			return &shift.CheckIns[i]
		}
	}
	return nil
}
