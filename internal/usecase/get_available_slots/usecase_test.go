package get_available_slots

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeSlotRepo struct {
	getFn    func(ctx context.Context, ownerID string, date time.Time) ([]*domain.BookedInterval, error)
	getCalls int
}

func (f *fakeSlotRepo) GetByOwnerAndDate(ctx context.Context, ownerID string, date time.Time) ([]*domain.BookedInterval, error) {
	f.getCalls++
	if f.getFn == nil {
		panic("GetByOwnerAndDate not configured")
	}
	return f.getFn(ctx, ownerID, date)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func defaultHours() domain.BusinessHours {
	return domain.BusinessHours{
		OpeningTime:            "09:00",
		ClosingTime:            "17:00",
		SlotGranularityMinutes: 30,
	}
}

func booked(t *testing.T, pairs ...string) []*domain.BookedInterval {
	t.Helper()
	require.Zero(t, len(pairs)%2)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	intervals := make([]*domain.BookedInterval, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		interval, err := domain.NewBookedInterval("owner-1", date, types.TimeString(pairs[i]), types.TimeString(pairs[i+1]))
		require.NoError(t, err)
		intervals = append(intervals, interval)
	}
	return intervals
}

func TestGenerateFreeSlots_EmptyDayFullGrid(t *testing.T) {
	slots, err := generateFreeSlots(defaultHours(), 60, nil)
	require.NoError(t, err)

	// 09:00..16:00 с шагом 30 минут: последний слот заканчивается ровно
	// во время закрытия
	want := []types.TimeString{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
		"15:00", "15:30", "16:00",
	}
	assert.Equal(t, want, slots)
}

func TestGenerateFreeSlots_BookedIntervalBlocksOverlappingCandidates(t *testing.T) {
	// Занято 10:00-10:30, услуга 60 минут: кандидаты 09:30 и 10:00
	// пересекаются с бронью, 10:30 начинается ровно в её конец и свободен
	slots, err := generateFreeSlots(defaultHours(), 60, booked(t, "10:00", "10:30"))
	require.NoError(t, err)

	assert.NotContains(t, slots, types.TimeString("09:30"))
	assert.NotContains(t, slots, types.TimeString("10:00"))
	assert.Contains(t, slots, types.TimeString("09:00"))
	assert.Contains(t, slots, types.TimeString("10:30"))
}

func TestGenerateFreeSlots_SlotEndingAtClosingIncluded(t *testing.T) {
	slots, err := generateFreeSlots(defaultHours(), 60, nil)
	require.NoError(t, err)
	assert.Contains(t, slots, types.TimeString("16:00"))
	assert.NotContains(t, slots, types.TimeString("16:30"))
}

func TestGenerateFreeSlots_ServiceLongerThanDay(t *testing.T) {
	slots, err := generateFreeSlots(defaultHours(), 9*60, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateFreeSlots_InvalidDuration(t *testing.T) {
	_, err := generateFreeSlots(defaultHours(), 0, nil)
	require.ErrorIs(t, err, domain.ErrInvalidDuration)

	_, err = generateFreeSlots(defaultHours(), -30, nil)
	require.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestGenerateFreeSlots_FullyBookedDay(t *testing.T) {
	slots, err := generateFreeSlots(defaultHours(), 30, booked(t, "09:00", "17:00"))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateFreeSlots_Deterministic(t *testing.T) {
	intervals := booked(t, "10:00", "11:00", "13:30", "14:00")

	first, err := generateFreeSlots(defaultHours(), 30, intervals)
	require.NoError(t, err)
	second, err := generateFreeSlots(defaultHours(), 30, intervals)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Перекрестная проверка против наивной поминутной реализации на случайных
// наборах занятых интервалов.
func TestGenerateFreeSlots_MatchesNaiveReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	const (
		openMin  = 9 * 60
		closeMin = 17 * 60
	)

	for iter := 0; iter < 200; iter++ {
		hours := defaultHours()
		duration := (1 + rng.Intn(8)) * 15

		n := rng.Intn(6)
		intervals := make([]*domain.BookedInterval, 0, n)
		type span struct{ start, end int }
		spans := make([]span, 0, n)
		for i := 0; i < n; i++ {
			start := openMin + rng.Intn(closeMin-openMin-15)
			end := start + 15 + rng.Intn(90)
			if end > closeMin {
				end = closeMin
			}
			startTS, err := types.NewTimeStringFromMinutes(start)
			require.NoError(t, err)
			endTS, err := types.NewTimeStringFromMinutes(end)
			require.NoError(t, err)
			interval, err := domain.NewBookedInterval("owner-1", date, startTS, endTS)
			require.NoError(t, err)
			intervals = append(intervals, interval)
			spans = append(spans, span{start, end})
		}

		got, err := generateFreeSlots(hours, duration, intervals)
		require.NoError(t, err)

		want := make([]types.TimeString, 0)
		for start := openMin; start+duration <= closeMin; start += hours.SlotGranularityMinutes {
			end := start + duration
			free := true
			for _, s := range spans {
				if start < s.end && s.start < end {
					free = false
					break
				}
			}
			if free {
				ts, err := types.NewTimeStringFromMinutes(start)
				require.NoError(t, err)
				want = append(want, ts)
			}
		}

		require.Equal(t, want, got, "iter=%d duration=%d intervals=%v", iter, duration, spans)
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeSlotRepo{
		getFn: func(ctx context.Context, ownerID string, date time.Time) ([]*domain.BookedInterval, error) {
			assert.Equal(t, "owner-1", ownerID)
			return booked(t, "10:00", "10:30"), nil
		},
	}
	uc := NewUseCase(repo, defaultHours(), noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		OwnerID:                "owner-1",
		Date:                   time.Date(2030, 9, 1, 0, 0, 0, 0, time.UTC),
		ServiceDurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)
	assert.Equal(t, "owner-1", resp.OwnerID)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.Contains(t, resp.Slots, types.TimeString("10:30"))
}

func TestExecute_ValidationRejectsBeforeStoreAccess(t *testing.T) {
	repo := &fakeSlotRepo{}
	uc := NewUseCase(repo, defaultHours(), noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:                "",
		Date:                   time.Date(2030, 9, 1, 0, 0, 0, 0, time.UTC),
		ServiceDurationMinutes: 60,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		OwnerID:                "owner-1",
		Date:                   time.Date(2030, 9, 1, 0, 0, 0, 0, time.UTC),
		ServiceDurationMinutes: 0,
	})
	require.ErrorIs(t, err, ErrInvalidDuration)

	assert.Zero(t, repo.getCalls)
}

func TestExecute_PastDateRejected(t *testing.T) {
	repo := &fakeSlotRepo{}
	uc := NewUseCase(repo, defaultHours(), noopLogger{})
	uc.timeProvider = fixedClock{now: time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:                "owner-1",
		Date:                   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ServiceDurationMinutes: 60,
	})
	require.ErrorIs(t, err, ErrInvalidDate)
	assert.Zero(t, repo.getCalls)

	// Сегодняшняя дата допустима
	repo.getFn = func(ctx context.Context, ownerID string, date time.Time) ([]*domain.BookedInterval, error) {
		return nil, nil
	}
	_, err = uc.Execute(context.Background(), &Request{
		OwnerID:                "owner-1",
		Date:                   time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		ServiceDurationMinutes: 60,
	})
	require.NoError(t, err)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeSlotRepo{
		getFn: func(ctx context.Context, ownerID string, date time.Time) ([]*domain.BookedInterval, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := NewUseCase(repo, defaultHours(), noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:                "owner-1",
		Date:                   time.Date(2030, 9, 1, 0, 0, 0, 0, time.UTC),
		ServiceDurationMinutes: 60,
	})
	require.ErrorIs(t, err, ErrInternal)
}
