package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PetCare-BookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований: списки, карточка, статистика
type Service struct {
	bookingRepo BookingRepository
	statsCache  StatsCache
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, statsCache StatsCache, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		statsCache:  statsCache,
		logger:      logger,
		now:         time.Now,
	}
}

// GetByID получает бронирование компании с данными связанных сущностей
func (s *Service) GetByID(ctx context.Context, companyID, id string) (*models.BookingResponse, error) {
	details, err := s.bookingRepo.GetDetailsForCompany(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found for company=%s", id, companyID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingDetails(details), nil
}

// ListCompanyBookings получает страницу бронирований компании с фильтрами по статусу и дате
func (s *Service) ListCompanyBookings(ctx context.Context, req *models.ListCompanyBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListCompanyBookings: invalid filter for company=%s: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	items, total, err := s.bookingRepo.ListByCompany(ctx, filter)
	if err != nil {
		s.logger.Error("ListCompanyBookings: repository error for company=%s: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: ListCompanyBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCompanyBookings: fetched %d of %d bookings for company=%s", len(items), total, req.CompanyID)
	return models.FromDomainBookingList(items, total, filter.Page), nil
}

// ListOwnerBookings получает страницу бронирований владельца питомца
func (s *Service) ListOwnerBookings(ctx context.Context, req *models.ListOwnerBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListOwnerBookings: invalid filter for owner=%s: %v", req.PetOwnerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	items, total, err := s.bookingRepo.ListByOwner(ctx, filter)
	if err != nil {
		s.logger.Error("ListOwnerBookings: repository error for owner=%s: %v", req.PetOwnerID, err)
		return nil, fmt.Errorf("%w: ListOwnerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListOwnerBookings: fetched %d of %d bookings for owner=%s", len(items), total, req.PetOwnerID)
	return models.FromDomainBookingList(items, total, filter.Page), nil
}

// GetStats возвращает сводную статистику компании
// Сначала читает кэш; ошибки кэша не прерывают запрос
func (s *Service) GetStats(ctx context.Context, companyID string) (*models.StatsResponse, error) {
	period := domain.NewStatsPeriod(s.now())

	if s.statsCache != nil {
		cached, err := s.statsCache.Get(ctx, companyID, period.Today)
		if err == nil {
			return models.FromDomainStats(cached), nil
		}
		if !isCacheMiss(err) {
			s.logger.Warn("GetStats: cache read failed for company=%s: %v", companyID, err)
		}
	}

	stats, err := s.bookingRepo.GetStats(ctx, companyID, period)
	if err != nil {
		s.logger.Error("GetStats: repository error for company=%s: %v", companyID, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	if s.statsCache != nil {
		if err := s.statsCache.Set(ctx, companyID, period.Today, stats); err != nil {
			s.logger.Warn("GetStats: cache write failed for company=%s: %v", companyID, err)
		}
	}

	return models.FromDomainStats(stats), nil
}
