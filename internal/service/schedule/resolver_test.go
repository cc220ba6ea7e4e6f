package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/pkg/logger"
	"github.com/m04kA/PetCare-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	gotEmployee string
	gotExclude  string
}

func (f *fakeBookingRepo) GetActiveByEmployeeAndDate(_ context.Context, employeeID string, date time.Time, excludeID string) ([]*domain.Booking, error) {
	f.gotEmployee = employeeID
	f.gotExclude = excludeID
	if f.err != nil {
		return nil, f.err
	}

	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.EmployeeID == nil || *b.EmployeeID != employeeID || b.ID == excludeID {
			continue
		}
		if !b.BookingDate.Equal(date) || !b.Status.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

var day = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func booking(id, employee, start string, duration int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		EmployeeID:      &employee,
		BookingDate:     day,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		Status:          status,
	}
}

func interval(t *testing.T, start string, duration int) domain.Interval {
	t.Helper()
	i, err := domain.NewInterval(types.TimeString(start), duration)
	require.NoError(t, err)
	return i
}

func TestResolver_HasConflict(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("b1", "e1", "10:00", 60, domain.StatusConfirmed),
		booking("b2", "e1", "14:00", 30, domain.StatusInProgress),
		booking("b3", "e1", "16:00", 60, domain.StatusPending),
		booking("b4", "e1", "18:00", 60, domain.StatusCancelled),
		booking("b5", "e2", "12:00", 60, domain.StatusConfirmed),
	}}
	r := NewResolver(repo, logger.NewNop())

	tests := []struct {
		name     string
		start    string
		duration int
		exclude  string
		want     bool
	}{
		{name: "overlaps confirmed", start: "10:30", duration: 60, want: true},
		{name: "touching end is free", start: "11:00", duration: 60, want: false},
		{name: "touching start is free", start: "09:00", duration: 60, want: false},
		{name: "contains in_progress", start: "13:00", duration: 120, want: true},
		{name: "pending does not block", start: "16:00", duration: 60, want: false},
		{name: "cancelled does not block", start: "18:30", duration: 30, want: false},
		{name: "other employee does not block", start: "12:00", duration: 60, want: false},
		{name: "excluded booking does not block", start: "10:00", duration: 60, exclude: "b1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.HasConflict(context.Background(), "e1", day, interval(t, tt.start, tt.duration), tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.exclude, repo.gotExclude)
		})
	}
}

func TestResolver_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection reset")
	r := NewResolver(&fakeBookingRepo{err: repoErr}, logger.NewNop())

	_, err := r.HasConflict(context.Background(), "e1", day, domain.Interval{Start: 600, End: 660}, "")
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, repoErr)
}
