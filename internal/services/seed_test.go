package services

import (
	"testing"

	"timin-server/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	stores := newTestStores(t)

	require.NoError(t, Seed(stores, zerolog.Nop()))

	users, err := stores.Users.Load()
	require.NoError(t, err)
	require.Len(t, users, 2)

	shifts, err := stores.Shifts.Load()
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, 2850, shifts[0].HourlyRateCents)

	// The demo employer owns the demo shift and can log in.
	svc := NewUserService(stores, zerolog.Nop())
	employer, err := svc.Authenticate(&models.LoginRequest{Email: "employer@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, employer.ID, shifts[0].EmployerID)
	assert.Equal(t, "51824753556", employer.ABN)

	// Running again leaves existing data alone.
	require.NoError(t, Seed(stores, zerolog.Nop()))
	users, err = stores.Users.Load()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
