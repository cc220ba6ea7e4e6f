package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// Request модели

// ListCompanyBookingsRequest запрос списка бронирований компании
type ListCompanyBookingsRequest struct {
	CompanyID string
	Status    *string // Фильтр по статусу (опционально)
	Date      *string // Фильтр по дате YYYY-MM-DD (опционально)
	Page      domain.Page
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListCompanyBookingsRequest) ToDomainFilter() (domain.CompanyBookingsFilter, error) {
	filter := domain.CompanyBookingsFilter{
		CompanyID: r.CompanyID,
		Page:      r.Page,
	}

	status, err := parseStatus(r.Status)
	if err != nil {
		return filter, err
	}
	filter.Status = status

	if r.Date != nil && *r.Date != "" {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *r.Date)
		}
		filter.Date = &date
	}

	return filter, nil
}

// ListOwnerBookingsRequest запрос списка бронирований владельца питомца
type ListOwnerBookingsRequest struct {
	PetOwnerID string
	Status     *string
	Page       domain.Page
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListOwnerBookingsRequest) ToDomainFilter() (domain.OwnerBookingsFilter, error) {
	filter := domain.OwnerBookingsFilter{
		PetOwnerID: r.PetOwnerID,
		Page:       r.Page,
	}

	status, err := parseStatus(r.Status)
	if err != nil {
		return filter, err
	}
	filter.Status = status

	return filter, nil
}

func parseStatus(s *string) (*domain.BookingStatus, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	status, err := domain.ParseBookingStatus(*s)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Response модели

// BookingResponse бронирование с данными связанных сущностей
type BookingResponse struct {
	ID              string      `json:"id"`
	CompanyID       string      `json:"companyId"`
	CompanyName     string      `json:"companyName,omitempty"`
	CompanyPhone    string      `json:"companyPhone,omitempty"`
	CompanyAddress  string      `json:"companyAddress,omitempty"`
	ServiceID       string      `json:"serviceId"`
	ServiceName     string      `json:"serviceName"`
	ServicePrice    json.Number `json:"servicePrice"`
	PetOwnerID      string      `json:"petOwnerId"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	PetID           string      `json:"petId"`
	PetName         string      `json:"petName"`
	PetType         string      `json:"petType"`
	EmployeeID      *string     `json:"employeeId"`
	EmployeeName    *string     `json:"employeeName"`
	Date            string      `json:"date"` // "2024-01-15"
	Time            string      `json:"time"` // "10:00"
	DurationMinutes int         `json:"durationMinutes"`
	Status          string      `json:"status"`
	Notes           string      `json:"notes"`
	TotalAmount     json.Number `json:"totalAmount"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// Pagination параметры страницы в ответе
type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalBookings int64 `json:"totalBookings"`
	Limit         int   `json:"limit"`
}

// BookingListResponse страница бронирований
type BookingListResponse struct {
	Bookings   []*BookingResponse
	Pagination Pagination
}

// StatsResponse сводная статистика бронирований компании
type StatsResponse struct {
	TotalBookings      int64       `json:"totalBookings"`
	PendingBookings    int64       `json:"pendingBookings"`
	ConfirmedBookings  int64       `json:"confirmedBookings"`
	InProgressBookings int64       `json:"inProgressBookings"`
	CompletedBookings  int64       `json:"completedBookings"`
	CancelledBookings  int64       `json:"cancelledBookings"`
	TodayBookings      int64       `json:"todayBookings"`
	ThisWeekBookings   int64       `json:"thisWeekBookings"`
	ThisMonthBookings  int64       `json:"thisMonthBookings"`
	TotalRevenue       json.Number `json:"totalRevenue"`
	PendingRevenue     json.Number `json:"pendingRevenue"`
}

// Money сумма с двумя знаками после запятой, в JSON выводится числом
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

// FromDomainBookingDetails конвертирует domain.BookingDetails в BookingResponse
func FromDomainBookingDetails(d *domain.BookingDetails) *BookingResponse {
	return &BookingResponse{
		ID:              d.ID,
		CompanyID:       d.CompanyID,
		CompanyName:     d.CompanyName,
		CompanyPhone:    d.CompanyPhone,
		CompanyAddress:  d.CompanyAddress,
		ServiceID:       d.ServiceID,
		ServiceName:     d.ServiceName,
		ServicePrice:    Money(d.ServicePrice),
		PetOwnerID:      d.PetOwnerID,
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		CustomerPhone:   d.CustomerPhone,
		PetID:           d.PetID,
		PetName:         d.PetName,
		PetType:         d.PetType,
		EmployeeID:      d.EmployeeID,
		EmployeeName:    d.EmployeeName,
		Date:            d.BookingDate.Format(domain.DateFormat),
		Time:            d.StartTime.String(),
		DurationMinutes: d.DurationMinutes,
		Status:          string(d.Status),
		Notes:           d.Notes,
		TotalAmount:     Money(d.TotalAmount),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует страницу бронирований и считает пагинацию
func FromDomainBookingList(items []*domain.BookingDetails, total int64, page domain.Page) *BookingListResponse {
	bookings := make([]*BookingResponse, 0, len(items))
	for _, item := range items {
		bookings = append(bookings, FromDomainBookingDetails(item))
	}

	return &BookingListResponse{
		Bookings: bookings,
		Pagination: Pagination{
			CurrentPage:   page.Number,
			TotalPages:    page.TotalPages(total),
			TotalBookings: total,
			Limit:         page.Limit,
		},
	}
}

// FromDomainStats конвертирует domain.BookingStats в StatsResponse
func FromDomainStats(s *domain.BookingStats) *StatsResponse {
	return &StatsResponse{
		TotalBookings:      s.TotalBookings,
		PendingBookings:    s.PendingBookings,
		ConfirmedBookings:  s.ConfirmedBookings,
		InProgressBookings: s.InProgressBookings,
		CompletedBookings:  s.CompletedBookings,
		CancelledBookings:  s.CancelledBookings,
		TodayBookings:      s.TodayBookings,
		ThisWeekBookings:   s.ThisWeekBookings,
		ThisMonthBookings:  s.ThisMonthBookings,
		TotalRevenue:       Money(s.TotalRevenue),
		PendingRevenue:     Money(s.PendingRevenue),
	}
}
