package services

import (
	"time"

	"timin-server/internal/models"
	"timin-server/internal/store"

	"github.com/rs/zerolog"
)

// Seed populates empty collections with a demo employer, worker and shift so
// a fresh install is immediately usable. Existing data is left untouched.
func Seed(stores *store.Stores, logger zerolog.Logger) error {
	users, err := stores.Users.Load()
	if err != nil {
		return err
	}

	if len(users) == 0 {
		employerHash, err := hashPassword("password123", "")
		if err != nil {
			return err
		}
		workerHash, err := hashPassword("password123", "")
		if err != nil {
			return err
		}

		users = []models.User{
			{
				ID:           generateID("usr"),
				Email:        "employer@example.com",
				Role:         string(models.RoleEmployer),
				PasswordHash: employerHash,
				ABN:          "51824753556",
			},
			{
				ID:           generateID("usr"),
				Email:        "worker@example.com",
				Role:         string(models.RoleWorker),
				PasswordHash: workerHash,
			},
		}
		if err := stores.Users.Save(users); err != nil {
			return err
		}
		logger.Info().Msg("Seeded demo users")
	}

	shifts, err := stores.Shifts.Load()
	if err != nil {
		return err
	}
	if len(shifts) != 0 {
		return nil
	}

	var employer *models.User
	for i := range users {
		if users[i].Role == string(models.RoleEmployer) {
			employer = &users[i]
			break
		}
	}
	if employer == nil {
		return nil
	}

	start := time.Now().UTC().Add(24 * time.Hour)
	shifts = []models.Shift{
		{
			ID:              generateID("sft"),
			EmployerID:      employer.ID,
			Title:           "Cafe Barista (Casual)",
			Description:     "Help morning rush. Basic coffee making. Friendly attitude.",
			HourlyRateCents: 2850,
			Category:        "general",
			RequiredSkills:  []string{},
			Location:        models.Location{State: "NSW", Postcode: "2000", Suburb: "Sydney"},
			Start:           start,
			End:             start.Add(4 * time.Hour),
			Applicants:      []string{},
			CheckIns:        []models.CheckIn{},
		},
	}
	if err := stores.Shifts.Save(shifts); err != nil {
		return err
	}
	logger.Info().Msg("Seeded demo shift")

	return nil
}
