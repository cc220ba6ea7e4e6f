package booking

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/pkg/ptr"
)

const moneyPlaces = 2

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"b.id",
	"b.company_id",
	"b.pet_owner_id",
	"b.service_id",
	"b.pet_id",
	"b.employee_id",
	"b.booking_date",
	"b.start_time",
	"b.duration_minutes",
	"b.status",
	"b.notes",
	"b.total_amount",
	"b.created_at",
	"b.updated_at",
}

// detailsColumns связанные поля для отображения
var detailsColumns = []string{
	"s.name",
	"s.price",
	"po.name",
	"po.email",
	"po.phone",
	"p.name",
	"p.type",
	"e.name",
	"c.name",
	"c.phone",
	"c.address",
}

// bookingScan буфер для сканирования строки bookings
type bookingScan struct {
	employeeID sql.NullString
	notes      sql.NullString
	createdAt  sql.NullTime
	updatedAt  sql.NullTime
	b          domain.Booking
}

func (s *bookingScan) dest() []interface{} {
	return []interface{}{
		&s.b.ID,
		&s.b.CompanyID,
		&s.b.PetOwnerID,
		&s.b.ServiceID,
		&s.b.PetID,
		&s.employeeID,
		&s.b.BookingDate,
		&s.b.StartTime,
		&s.b.DurationMinutes,
		&s.b.Status,
		&s.notes,
		&s.b.TotalAmount,
		&s.createdAt,
		&s.updatedAt,
	}
}

func (s *bookingScan) booking() domain.Booking {
	b := s.b
	if s.employeeID.Valid {
		b.EmployeeID = ptr.Ptr(s.employeeID.String)
	}
	b.Notes = s.notes.String
	b.TotalAmount = b.TotalAmount.Round(moneyPlaces)
	b.CreatedAt = s.createdAt.Time
	b.UpdatedAt = s.updatedAt.Time
	return b
}

// detailsScan буфер для сканирования строки bookings с JOIN
type detailsScan struct {
	bookingScan

	serviceName    sql.NullString
	servicePrice   decimal.NullDecimal
	customerName   sql.NullString
	customerEmail  sql.NullString
	customerPhone  sql.NullString
	petName        sql.NullString
	petType        sql.NullString
	employeeName   sql.NullString
	companyName    sql.NullString
	companyPhone   sql.NullString
	companyAddress sql.NullString
}

func (s *detailsScan) dest() []interface{} {
	return append(s.bookingScan.dest(),
		&s.serviceName,
		&s.servicePrice,
		&s.customerName,
		&s.customerEmail,
		&s.customerPhone,
		&s.petName,
		&s.petType,
		&s.employeeName,
		&s.companyName,
		&s.companyPhone,
		&s.companyAddress,
	)
}

func (s *detailsScan) details() *domain.BookingDetails {
	d := &domain.BookingDetails{
		Booking:        s.booking(),
		ServiceName:    s.serviceName.String,
		CustomerName:   s.customerName.String,
		CustomerEmail:  s.customerEmail.String,
		CustomerPhone:  s.customerPhone.String,
		PetName:        s.petName.String,
		PetType:        s.petType.String,
		CompanyName:    s.companyName.String,
		CompanyPhone:   s.companyPhone.String,
		CompanyAddress: s.companyAddress.String,
	}
	if s.servicePrice.Valid {
		d.ServicePrice = s.servicePrice.Decimal.Round(moneyPlaces)
	}
	if s.employeeName.Valid {
		d.EmployeeName = ptr.Ptr(s.employeeName.String)
	}
	return d
}
