package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"timin-server/internal/models"
	"timin-server/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/scrypt"
)

// scrypt parameters; the stored encoding is "scrypt:<salt>:<derivedHex>".
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
)

type UserService struct {
	stores *store.Stores
	logger zerolog.Logger
}

func NewUserService(stores *store.Stores, logger zerolog.Logger) *UserService {
	return &UserService{
		stores: stores,
		logger: logger,
	}
}

func generateID(prefix string) string {
	id := uuid.New()
	return prefix + "_" + hex.EncodeToString(id[:])
}

func hashPassword(password, salt string) (string, error) {
	if salt == "" {
		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		salt = hex.EncodeToString(buf)
	}
	derived, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("scrypt:%s:%s", salt, hex.EncodeToString(derived)), nil
}

func verifyPassword(password, stored string) bool {
	parts := strings.Split(stored, ":")
	if len(parts) != 3 || parts[0] != "scrypt" || parts[1] == "" || parts[2] == "" {
		return false
	}
	derived, err := scrypt.Key([]byte(password), []byte(parts[1]), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(derived, expected) == 1
}

// ABNIsValid checks the 11-digit weighted mod-89 checksum. Non-digit
// characters are stripped before validation.
func ABNIsValid(abn string) bool {
	var digits []int
	for _, r := range abn {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) != 11 {
		return false
	}

	weights := []int{10, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	digits[0]--
	total := 0
	for i, d := range digits {
		total += d * weights[i]
	}
	return total%89 == 0
}

func (s *UserService) Register(req *models.RegisterRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, ErrMissingFields
	}
	if req.Role != string(models.RoleWorker) && req.Role != string(models.RoleEmployer) {
		return nil, ErrInvalidRole
	}
	if req.Role == string(models.RoleEmployer) && !ABNIsValid(string(req.ABN)) {
		return nil, ErrInvalidABN
	}

	passwordHash, err := hashPassword(req.Password, "")
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           generateID("usr"),
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: passwordHash,
	}
	if req.Role == string(models.RoleEmployer) {
		user.ABN = string(req.ABN)
	}

	err = s.stores.Users.Update(func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Email == req.Email {
				return nil, ErrDuplicateEmail
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Str("role", user.Role).Msg("User registered")
	return &user, nil
}

func (s *UserService) Authenticate(req *models.LoginRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	users, err := s.stores.Users.Load()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == req.Email {
			if !verifyPassword(req.Password, users[i].PasswordHash) {
				s.logger.Warn().Str("email", req.Email).Msg("Failed authentication attempt")
				return nil, ErrInvalidCredentials
			}
			return &users[i], nil
		}
	}

	return nil, ErrInvalidCredentials
}

func (s *UserService) GetByID(userID string) (*models.User, error) {
	users, err := s.stores.Users.Load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == userID {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// UpdateProfile merges only the fields allowed for the caller's role; fields
// outside the role's allow-list are silently ignored, not rejected.
func (s *UserService) UpdateProfile(userID, role string, update *models.ProfileUpdate) (*models.Profile, error) {
	var profile models.Profile

	err := s.stores.Users.Update(func(users []models.User) ([]models.User, error) {
		idx := -1
		for i := range users {
			if users[i].ID == userID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, ErrUserNotFound
		}

		p := &users[idx].Profile
		if update.FirstName != nil {
			p.FirstName = strings.TrimSpace(*update.FirstName)
		}
		if update.LastName != nil {
			p.LastName = strings.TrimSpace(*update.LastName)
		}
		if update.PhoneNumber != nil {
			p.PhoneNumber = strings.TrimSpace(*update.PhoneNumber)
		}
		if update.Bio != nil {
			p.Bio = strings.TrimSpace(*update.Bio)
		}

		if role == string(models.RoleEmployer) {
			if update.CompanyName != nil {
				p.CompanyName = strings.TrimSpace(*update.CompanyName)
			}
			if update.BusinessType != nil {
				p.BusinessType = strings.TrimSpace(*update.BusinessType)
			}
		}

		if role == string(models.RoleWorker) {
			if update.EnglishLevel != nil {
				p.EnglishLevel = strings.TrimSpace(*update.EnglishLevel)
			}
			if update.Skills != nil {
				skills := make([]string, 0, len(*update.Skills))
				for _, skill := range *update.Skills {
					if trimmed := strings.TrimSpace(skill); trimmed != "" {
						skills = append(skills, trimmed)
					}
				}
				p.Skills = skills
			}
		}

		profile = *p
		return users, nil
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
