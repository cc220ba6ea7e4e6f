package assign_employee

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/PetCare-BookingService/internal/service/schedule"
	"github.com/m04kA/PetCare-BookingService/pkg/logger"
	"github.com/m04kA/PetCare-BookingService/pkg/ptr"
	"github.com/m04kA/PetCare-BookingService/pkg/types"
)

var day = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

// store хранилище в памяти; чтения возвращают копии, чтобы откат транзакции не требовался
type store struct {
	mu        sync.Mutex
	bookings  map[string]domain.Booking
	services  map[string]domain.Service
	employees map[string]domain.Employee
	updateErr error
}

func newStore() *store {
	return &store{
		bookings:  map[string]domain.Booking{},
		services:  map[string]domain.Service{},
		employees: map[string]domain.Employee{},
	}
}

func (s *store) GetForCompany(_ context.Context, id, companyID string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok || b.CompanyID != companyID {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &b, nil
}

func (s *store) GetDetailsForCompany(ctx context.Context, id, companyID string) (*domain.BookingDetails, error) {
	b, err := s.GetForCompany(ctx, id, companyID)
	if err != nil {
		return nil, err
	}
	d := &domain.BookingDetails{Booking: *b}
	if b.EmployeeID != nil {
		s.mu.Lock()
		d.EmployeeName = ptr.Ptr(s.employees[*b.EmployeeID].Name)
		s.mu.Unlock()
	}
	return d, nil
}

func (s *store) UpdateAssignment(_ context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	stored, ok := s.bookings[booking.ID]
	if !ok || stored.CompanyID != booking.CompanyID {
		return bookingRepo.ErrBookingNotFound
	}
	stored.EmployeeID = booking.EmployeeID
	stored.DurationMinutes = booking.DurationMinutes
	stored.UpdatedAt = booking.UpdatedAt
	s.bookings[booking.ID] = stored
	return nil
}

func (s *store) GetActiveByEmployeeAndDate(_ context.Context, employeeID string, date time.Time, excludeID string) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*domain.Booking, 0)
	for id, b := range s.bookings {
		if id == excludeID || b.EmployeeID == nil || *b.EmployeeID != employeeID {
			continue
		}
		if !b.BookingDate.Equal(date) || !b.Status.IsActive() {
			continue
		}
		b := b
		result = append(result, &b)
	}
	return result, nil
}

func (s *store) GetService(_ context.Context, id, companyID string) (*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.services[id]
	if !ok || svc.CompanyID != companyID {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return &svc, nil
}

func (s *store) GetEmployee(_ context.Context, id, companyID string) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok || e.CompanyID != companyID {
		return nil, catalogRepo.ErrEmployeeNotFound
	}
	return &e, nil
}

// lockingTxManager выполняет транзакции по очереди, как при блокировке строки сотрудника
type lockingTxManager struct {
	mu    sync.Mutex
	calls int
}

func (m *lockingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return fn(ctx)
}

type fakeMetrics struct {
	mu      sync.Mutex
	results []string
}

func (m *fakeMetrics) IncAssignment(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
}

type fakeStats struct {
	invalidated []string
}

func (f *fakeStats) Invalidate(_ context.Context, companyID string) error {
	f.invalidated = append(f.invalidated, companyID)
	return nil
}

type fixture struct {
	store   *store
	tx      *lockingTxManager
	metrics *fakeMetrics
	stats   *fakeStats
	uc      *UseCase
}

func newFixture() *fixture {
	s := newStore()
	s.services["svc60"] = domain.Service{ID: "svc60", CompanyID: "c1", DurationMinutes: ptr.Ptr(60), Active: true}
	s.services["svcNoDuration"] = domain.Service{ID: "svcNoDuration", CompanyID: "c1", Active: true}
	s.employees["e1"] = domain.Employee{ID: "e1", CompanyID: "c1", Name: "Anna", Active: true}
	s.employees["inactive"] = domain.Employee{ID: "inactive", CompanyID: "c1", Active: false}
	s.employees["foreign"] = domain.Employee{ID: "foreign", CompanyID: "c2", Active: true}

	f := &fixture{
		store:   s,
		tx:      &lockingTxManager{},
		metrics: &fakeMetrics{},
		stats:   &fakeStats{},
	}
	f.uc = NewUseCase(s, s, schedule.NewResolver(s, logger.NewNop()), f.tx, f.stats, f.metrics, logger.NewNop())
	f.uc.now = func() time.Time { return time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) addBooking(id, start string, status domain.BookingStatus, employeeID *string) {
	f.store.bookings[id] = domain.Booking{
		ID:              id,
		CompanyID:       "c1",
		ServiceID:       "svc60",
		BookingDate:     day,
		StartTime:       types.TimeString(start),
		DurationMinutes: 60,
		Status:          status,
		EmployeeID:      employeeID,
	}
}

func TestExecute_ConflictScenarios(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		wantErr error
	}{
		{name: "overlapping start is rejected", start: "10:30", wantErr: ErrScheduleConflict},
		{name: "start at previous end is accepted", start: "11:00"},
		{name: "end at previous start is accepted", start: "09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.addBooking("A", "10:00", domain.StatusConfirmed, ptr.Ptr("e1"))
			f.addBooking("B", tt.start, domain.StatusPending, nil)

			got, err := f.uc.Execute(context.Background(), &Request{CompanyID: "c1", BookingID: "B", EmployeeID: ptr.Ptr("e1")})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, f.store.bookings["B"].EmployeeID)
				assert.Equal(t, []string{resultConflict}, f.metrics.results)
				assert.Empty(t, f.stats.invalidated)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got.EmployeeID)
			assert.Equal(t, "e1", *got.EmployeeID)
			assert.Equal(t, "Anna", *got.EmployeeName)
			assert.Equal(t, []string{resultAssigned}, f.metrics.results)
			assert.Equal(t, []string{"c1"}, f.stats.invalidated)
		})
	}
}

func TestExecute_InactiveBookingsDoNotBlock(t *testing.T) {
	f := newFixture()
	f.addBooking("A", "10:00", domain.StatusPending, ptr.Ptr("e1"))
	f.addBooking("C", "10:00", domain.StatusCancelled, ptr.Ptr("e1"))
	f.addBooking("D", "10:00", domain.StatusCompleted, ptr.Ptr("e1"))
	f.addBooking("B", "10:15", domain.StatusConfirmed, nil)

	_, err := f.uc.Execute(context.Background(), &Request{CompanyID: "c1", BookingID: "B", EmployeeID: ptr.Ptr("e1")})
	require.NoError(t, err)
}

func TestExecute_ReassignSameEmployeeExcludesItself(t *testing.T) {
	f := newFixture()
	f.addBooking("A", "10:00", domain.StatusConfirmed, ptr.Ptr("e1"))

	_, err := f.uc.Execute(context.Background(), &Request{CompanyID: "c1", BookingID: "A", EmployeeID: ptr.Ptr("e1")})
	require.NoError(t, err)
}

func TestExecute_InvalidEmployee(t *testing.T) {
	for _, employeeID := range []string{"missing", "inactive", "foreign"} {
		t.Run(employeeID, func(t *testing.T) {
			f := newFixture()
			f.addBooking("B", "10:00", domain.StatusPending, nil)

			_, err := f.uc.Execute(context.Background(), &Request{CompanyID: "c1", BookingID: "B", EmployeeID: ptr.Ptr(employeeID)})
			assert.ErrorIs(t, err, ErrInvalidEmployee)
			assert.Nil(t, f.store.bookings["B"].EmployeeID)
			assert.Equal(t, []string{resultInvalid}, f.metrics.results)
		})
	}
}

func TestExecute_BookingOfOtherCompanyIsNotFound(t *testing.T) {
	f := newFixture()
	f.addBooking("B", "10:00", domain.StatusPending, nil)

	_, err := f.uc.Execute(context.Background(), &Request{CompanyID: "c2", BookingID: "B", EmployeeID: ptr.Ptr("e1")})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.uc.Execute(context.Background(), &Request{CompanyID: "c1", BookingID: "missing"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_UnassignNeverConflicts(t *testing.T) {
	for name, employeeID := range map[string]*string{"nil": nil, "empty": ptr.Ptr("")} {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			f.addBooking("A", "10:00", domain.StatusConfirmed, ptr.Ptr("e1"))
			f.addBooking("B", "10:00", domain.StatusConfirmed, ptr.Ptr("e1"))

			got, err := f.uc.Execute(context.Background(), &Request{CompanyID: "c1", BookingID: "B", EmployeeID: employeeID})
			require.NoError(t, err)
			assert.Nil(t, got.EmployeeID)
			assert.Nil(t, f.store.bookings["B"].EmployeeID)
			assert.Equal(t, []string{resultUnassigned}, f.metrics.results)
		})
	}
}

func TestExecute_DurationFromService(t *testing.T) {
	f := newFixture()
	f.addBooking("B", "10:00", domain.StatusPending, nil)
	b := f.store.bookings["B"]
	b.ServiceID = "svcNoDuration"
	b.DurationMinutes = 15
	f.store.bookings["B"] = b

	_, err := f.uc.Execute(context.Background(), &Request{CompanyID: "c1", BookingID: "B", EmployeeID: ptr.Ptr("e1")})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDurationMinutes, f.store.bookings["B"].DurationMinutes)
	assert.Equal(t, f.uc.now(), f.store.bookings["B"].UpdatedAt)
}

func TestExecute_ServiceDurationWidensConflictWindow(t *testing.T) {
	f := newFixture()
	f.store.services["svc120"] = domain.Service{ID: "svc120", CompanyID: "c1", DurationMinutes: ptr.Ptr(120), Active: true}
	f.addBooking("A", "11:30", domain.StatusConfirmed, ptr.Ptr("e1"))
	f.addBooking("B", "10:00", domain.StatusPending, nil)
	b := f.store.bookings["B"]
	b.ServiceID = "svc120"
	f.store.bookings["B"] = b

	_, err := f.uc.Execute(context.Background(), &Request{CompanyID: "c1", BookingID: "B", EmployeeID: ptr.Ptr("e1")})
	assert.ErrorIs(t, err, ErrScheduleConflict)
}

func TestExecute_InfrastructureError(t *testing.T) {
	f := newFixture()
	f.addBooking("B", "10:00", domain.StatusPending, nil)
	f.store.updateErr = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), &Request{CompanyID: "c1", BookingID: "B", EmployeeID: ptr.Ptr("e1")})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []string{resultError}, f.metrics.results)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{CompanyID: "c1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, f.tx.calls)
}

func TestExecute_ConcurrentAssignmentsKeepNoOverlap(t *testing.T) {
	f := newFixture()
	f.addBooking("A", "10:00", domain.StatusConfirmed, nil)
	f.addBooking("B", "10:30", domain.StatusConfirmed, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{"A", "B"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), &Request{CompanyID: "c1", BookingID: id, EmployeeID: ptr.Ptr("e1")})
		}(i, id)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrScheduleConflict)
	}
	assert.Equal(t, 1, succeeded)
}
