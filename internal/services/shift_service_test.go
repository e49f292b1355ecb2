package services

import (
	"math"
	"testing"
	"time"

	"timin-server/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testEmployer = &models.User{ID: "usr_employer", Email: "e@example.com", Role: "employer"}
	testWorker   = &models.User{ID: "usr_worker", Email: "w@example.com", Role: "worker"}
	otherWorker  = &models.User{ID: "usr_other", Email: "o@example.com", Role: "worker"}
)

func validShiftRequest() *models.CreateShiftRequest {
	start := time.Now().Add(24 * time.Hour).UTC()
	return &models.CreateShiftRequest{
		Title:         "Cafe Barista",
		HourlyRateAUD: 28.50,
		Location:      &models.Location{State: "NSW", Postcode: "2000", Suburb: "Sydney"},
		Start:         start.Format(time.RFC3339),
		End:           start.Add(4 * time.Hour).Format(time.RFC3339),
	}
}

func TestShiftService_Create(t *testing.T) {
	t.Run("success with rate conversion and defaults", func(t *testing.T) {
		svc := NewShiftService(newTestStores(t), zerolog.Nop())

		shift, err := svc.Create(testEmployer, validShiftRequest())
		require.NoError(t, err)

		assert.Equal(t, 2850, shift.HourlyRateCents)
		assert.Equal(t, "general", shift.Category)
		assert.Equal(t, testEmployer.ID, shift.EmployerID)
		assert.Empty(t, shift.Applicants)
		assert.Nil(t, shift.HiredWorkerID)
		assert.Empty(t, shift.CheckIns)

		shifts, err := svc.List(testEmployer, false)
		require.NoError(t, err)
		assert.Len(t, shifts, 1)
	})

	t.Run("worker may not create", func(t *testing.T) {
		svc := NewShiftService(newTestStores(t), zerolog.Nop())
		_, err := svc.Create(testWorker, validShiftRequest())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewShiftService(newTestStores(t), zerolog.Nop())
		req := validShiftRequest()
		req.Title = ""
		_, err := svc.Create(testEmployer, req)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("end before start", func(t *testing.T) {
		svc := NewShiftService(newTestStores(t), zerolog.Nop())
		req := validShiftRequest()
		req.Start, req.End = req.End, req.Start
		_, err := svc.Create(testEmployer, req)
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("unparseable time", func(t *testing.T) {
		svc := NewShiftService(newTestStores(t), zerolog.Nop())
		req := validShiftRequest()
		req.Start = "next tuesday"
		_, err := svc.Create(testEmployer, req)
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("negative rate", func(t *testing.T) {
		svc := NewShiftService(newTestStores(t), zerolog.Nop())
		req := validShiftRequest()
		req.HourlyRateAUD = -5
		_, err := svc.Create(testEmployer, req)
		assert.ErrorIs(t, err, ErrInvalidRate)
	})

	t.Run("rate beyond integer range", func(t *testing.T) {
		svc := NewShiftService(newTestStores(t), zerolog.Nop())

		for _, rate := range []float64{1e300, float64(math.MaxInt64), math.Inf(1)} {
			req := validShiftRequest()
			req.HourlyRateAUD = rate
			_, err := svc.Create(testEmployer, req)
			assert.ErrorIs(t, err, ErrInvalidRate, "rate %g accepted", rate)
		}

		// Nothing was persisted by the rejected creates.
		shifts, err := svc.List(testEmployer, false)
		require.NoError(t, err)
		assert.Empty(t, shifts)
	})
}

func TestShiftService_Apply(t *testing.T) {
	svc := NewShiftService(newTestStores(t), zerolog.Nop())
	shift, err := svc.Create(testEmployer, validShiftRequest())
	require.NoError(t, err)

	t.Run("employer may not apply", func(t *testing.T) {
		assert.ErrorIs(t, svc.Apply(shift.ID, testEmployer), ErrForbidden)
	})

	t.Run("unknown shift", func(t *testing.T) {
		assert.ErrorIs(t, svc.Apply("sft_missing", testWorker), ErrShiftNotFound)
	})

	t.Run("idempotent", func(t *testing.T) {
		require.NoError(t, svc.Apply(shift.ID, testWorker))
		require.NoError(t, svc.Apply(shift.ID, testWorker))

		shifts, err := svc.List(testWorker, false)
		require.NoError(t, err)
		assert.Equal(t, []string{testWorker.ID}, shifts[0].Applicants)
	})
}

func TestShiftService_Hire(t *testing.T) {
	newShift := func(t *testing.T) (*ShiftService, *models.Shift) {
		t.Helper()
		svc := NewShiftService(newTestStores(t), zerolog.Nop())
		shift, err := svc.Create(testEmployer, validShiftRequest())
		require.NoError(t, err)
		require.NoError(t, svc.Apply(shift.ID, testWorker))
		return svc, shift
	}

	t.Run("worker must have applied", func(t *testing.T) {
		svc, shift := newShift(t)
		assert.ErrorIs(t, svc.Hire(shift.ID, testEmployer, otherWorker.ID), ErrNotApplied)
	})

	t.Run("only the owning employer", func(t *testing.T) {
		svc, shift := newShift(t)
		stranger := &models.User{ID: "usr_stranger", Role: "employer"}
		assert.ErrorIs(t, svc.Hire(shift.ID, stranger, testWorker.ID), ErrForbidden)
	})

	t.Run("idempotent for the same worker", func(t *testing.T) {
		svc, shift := newShift(t)
		require.NoError(t, svc.Hire(shift.ID, testEmployer, testWorker.ID))
		require.NoError(t, svc.Hire(shift.ID, testEmployer, testWorker.ID))

		shifts, err := svc.List(testEmployer, false)
		require.NoError(t, err)
		require.NotNil(t, shifts[0].HiredWorkerID)
		assert.Equal(t, testWorker.ID, *shifts[0].HiredWorkerID)
	})

	t.Run("no re-hire of a different applicant", func(t *testing.T) {
		svc, shift := newShift(t)
		require.NoError(t, svc.Apply(shift.ID, otherWorker))
		require.NoError(t, svc.Hire(shift.ID, testEmployer, testWorker.ID))
		assert.ErrorIs(t, svc.Hire(shift.ID, testEmployer, otherWorker.ID), ErrAlreadyHired)
	})
}

func TestShiftService_CheckInOut(t *testing.T) {
	newHiredShift := func(t *testing.T) (*ShiftService, *models.Shift) {
		t.Helper()
		svc := NewShiftService(newTestStores(t), zerolog.Nop())
		shift, err := svc.Create(testEmployer, validShiftRequest())
		require.NoError(t, err)
		require.NoError(t, svc.Apply(shift.ID, testWorker))
		require.NoError(t, svc.Hire(shift.ID, testEmployer, testWorker.ID))
		return svc, shift
	}

	t.Run("only the hired worker may check in", func(t *testing.T) {
		svc, shift := newHiredShift(t)
		assert.ErrorIs(t, svc.CheckIn(shift.ID, otherWorker), ErrForbidden)
	})

	t.Run("double check-in fails", func(t *testing.T) {
		svc, shift := newHiredShift(t)
		require.NoError(t, svc.CheckIn(shift.ID, testWorker))
		assert.ErrorIs(t, svc.CheckIn(shift.ID, testWorker), ErrAlreadyCheckedIn)
	})

	t.Run("checkout without check-in fails", func(t *testing.T) {
		svc, shift := newHiredShift(t)
		assert.ErrorIs(t, svc.CheckOut(shift.ID, testWorker), ErrNotCheckedIn)
	})

	t.Run("checkout closes the open record and allows re-checkin", func(t *testing.T) {
		svc, shift := newHiredShift(t)
		require.NoError(t, svc.CheckIn(shift.ID, testWorker))
		require.NoError(t, svc.CheckOut(shift.ID, testWorker))

		shifts, err := svc.List(testWorker, false)
		require.NoError(t, err)
		require.Len(t, shifts[0].CheckIns, 1)
		assert.NotNil(t, shifts[0].CheckIns[0].CheckoutAt)

		// A closed record does not block a new check-in.
		require.NoError(t, svc.CheckIn(shift.ID, testWorker))
		assert.ErrorIs(t, svc.CheckOut(shift.ID, otherWorker), ErrForbidden)
	})
}

func TestShiftService_List(t *testing.T) {
	svc := NewShiftService(newTestStores(t), zerolog.Nop())
	otherEmployer := &models.User{ID: "usr_boss2", Role: "employer"}

	_, err := svc.Create(testEmployer, validShiftRequest())
	require.NoError(t, err)
	_, err = svc.Create(otherEmployer, validShiftRequest())
	require.NoError(t, err)

	t.Run("mine filters for employers", func(t *testing.T) {
		shifts, err := svc.List(testEmployer, true)
		require.NoError(t, err)
		require.Len(t, shifts, 1)
		assert.Equal(t, testEmployer.ID, shifts[0].EmployerID)
	})

	t.Run("mine is ignored for workers", func(t *testing.T) {
		shifts, err := svc.List(testWorker, true)
		require.NoError(t, err)
		assert.Len(t, shifts, 2)
	})

	t.Run("full listing", func(t *testing.T) {
		shifts, err := svc.List(testWorker, false)
		require.NoError(t, err)
		assert.Len(t, shifts, 2)
	})
}
