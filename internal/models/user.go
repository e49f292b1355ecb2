package models

import "encoding/json"

type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	PasswordHash string  `json:"passwordHash"`
	ABN          string  `json:"abn,omitempty"`
	Profile      Profile `json:"profile"`
}

type UserRole string

const (
	RoleWorker   UserRole = "worker"
	RoleEmployer UserRole = "employer"
)

// Profile is a role-shaped bag: the common fields apply to both roles,
// companyName/businessType are employer-only, englishLevel/skills worker-only.
type Profile struct {
	FirstName    string   `json:"firstName,omitempty"`
	LastName     string   `json:"lastName,omitempty"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	CompanyName  string   `json:"companyName,omitempty"`
	BusinessType string   `json:"businessType,omitempty"`
	EnglishLevel string   `json:"englishLevel,omitempty"`
	Skills       []string `json:"skills,omitempty"`
}

// FlexString decodes from either a JSON string or a JSON number. Clients
// send the ABN both quoted and unquoted.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = FlexString(num.String())
	return nil
}

type RegisterRequest struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     string     `json:"role"`
	ABN      FlexString `json:"abn"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate uses pointers so an absent field is distinguishable from an
// explicitly empty one; only present fields are merged.
type ProfileUpdate struct {
	FirstName    *string   `json:"firstName"`
	LastName     *string   `json:"lastName"`
	PhoneNumber  *string   `json:"phoneNumber"`
	Bio          *string   `json:"bio"`
	CompanyName  *string   `json:"companyName"`
	BusinessType *string   `json:"businessType"`
	EnglishLevel *string   `json:"englishLevel"`
	Skills       *[]string `json:"skills"`
}

type SessionResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type MeResponse struct {
	ID      string  `json:"id"`
	Email   string  `json:"email"`
	Role    string  `json:"role"`
	Profile Profile `json:"profile"`
}

type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type PublicProfileResponse struct {
	ID      string        `json:"id"`
	Email   string        `json:"email"`
	Role    string        `json:"role"`
	Profile Profile       `json:"profile"`
	Rating  RatingSummary `json:"rating"`
}
