package models

import "time"

type Shift struct {
	ID              string    `json:"id"`
	EmployerID      string    `json:"employerId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	HourlyRateCents int       `json:"hourlyRateCents"`
	Category        string    `json:"category"`
	RequiredSkills  []string  `json:"requiredSkills"`
	Dresscode       string    `json:"dresscode"`
	Requirements    string    `json:"requirements"`
	Location        Location  `json:"location"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Applicants      []string  `json:"applicants"`
	HiredWorkerID   *string   `json:"hiredWorkerId"`
	CheckIns        []CheckIn `json:"checkins"`
}

type Location struct {
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Suburb   string `json:"suburb"`
}

// CheckIn pairs a check-in with its eventual check-out; CheckoutAt stays nil
// while the record is open.
type CheckIn struct {
	UserID     string     `json:"userId"`
	CheckinAt  time.Time  `json:"checkinAt"`
	CheckoutAt *time.Time `json:"checkoutAt"`
}

type CreateShiftRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	HourlyRateAUD  float64   `json:"hourlyRateAUD"`
	Category       string    `json:"category"`
	RequiredSkills []string  `json:"requiredSkills"`
	Dresscode      string    `json:"dresscode"`
	Requirements   string    `json:"requirements"`
	Location       *Location `json:"location"`
	Start          string    `json:"start"`
	End            string    `json:"end"`
}

type HireRequest struct {
	WorkerID string `json:"workerId"`
}
