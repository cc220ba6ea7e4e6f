package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PetCare-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
// Все чтения и записи ограничены company_id или pet_owner_id
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// ID генерируется вызывающей стороной, created_at и updated_at проставляет БД
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"company_id",
			"pet_owner_id",
			"service_id",
			"pet_id",
			"employee_id",
			"booking_date",
			"start_time",
			"duration_minutes",
			"status",
			"notes",
			"total_amount",
		).
		Values(
			booking.ID,
			booking.CompanyID,
			booking.PetOwnerID,
			booking.ServiceID,
			booking.PetID,
			booking.EmployeeID,
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.DurationMinutes,
			booking.Status,
			booking.Notes,
			booking.TotalAmount.Round(moneyPlaces),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetForCompany получает бронирование компании по ID
// В транзакции строка блокируется FOR UPDATE
func (r *Repository) GetForCompany(ctx context.Context, id, companyID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id, "b.company_id": companyID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForCompany - build select query: %v", ErrBuildQuery, err)
	}

	var row bookingScan
	err = executor.QueryRowContext(ctx, query, args...).Scan(row.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForCompany - scan booking: %w", ErrScanRow, err)
	}

	b := row.booking()
	return &b, nil
}

// GetDetailsForCompany получает бронирование компании вместе с данными услуги, клиента, питомца и сотрудника
func (r *Repository) GetDetailsForCompany(ctx context.Context, id, companyID string) (*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect().
		Where(squirrel.Eq{"b.id": id, "b.company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsForCompany - build select query: %v", ErrBuildQuery, err)
	}

	var row detailsScan
	err = executor.QueryRowContext(ctx, query, args...).Scan(row.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsForCompany - scan booking: %w", ErrScanRow, err)
	}

	return row.details(), nil
}

// ListByCompany возвращает страницу бронирований компании и общее количество по фильтру
// Сортировка: сначала новые (booking_date DESC, start_time DESC)
func (r *Repository) ListByCompany(ctx context.Context, filter domain.CompanyBookingsFilter) ([]*domain.BookingDetails, int64, error) {
	where := squirrel.And{squirrel.Eq{"b.company_id": filter.CompanyID}}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"b.status": string(*filter.Status)})
	}
	if filter.Date != nil {
		where = append(where, squirrel.Eq{"b.booking_date": filter.Date.Format(domain.DateFormat)})
	}

	return r.list(ctx, "ListByCompany", where, filter.Page)
}

// ListByOwner возвращает страницу бронирований владельца питомца и общее количество
func (r *Repository) ListByOwner(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.BookingDetails, int64, error) {
	where := squirrel.And{squirrel.Eq{"b.pet_owner_id": filter.PetOwnerID}}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"b.status": string(*filter.Status)})
	}

	return r.list(ctx, "ListByOwner", where, filter.Page)
}

func (r *Repository) list(ctx context.Context, method string, where squirrel.Sqlizer, page domain.Page) ([]*domain.BookingDetails, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("bookings b").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s - build count query: %v", ErrBuildQuery, method, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: %s - count bookings: %w", ErrExecQuery, method, err)
	}

	query, args, err := detailsSelect().
		Where(where).
		OrderBy("b.booking_date DESC", "b.start_time DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, method, err)
	}
	defer rows.Close()

	items := make([]*domain.BookingDetails, 0, page.Limit)
	for rows.Next() {
		var row detailsScan
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, 0, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, method, err)
		}
		items = append(items, row.details())
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, method, err)
	}

	return items, total, nil
}

// UpdateStatus сохраняет статус, заметки и updated_at бронирования
func (r *Repository) UpdateStatus(ctx context.Context, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(booking.Status)).
		Set("notes", booking.Notes).
		Set("updated_at", booking.UpdatedAt).
		Where(squirrel.Eq{"id": booking.ID, "company_id": booking.CompanyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execUpdate(ctx, "UpdateStatus", query, args)
}

// UpdateAssignment сохраняет сотрудника, длительность и updated_at бронирования
// EmployeeID == nil снимает назначение
func (r *Repository) UpdateAssignment(ctx context.Context, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("employee_id", booking.EmployeeID).
		Set("duration_minutes", booking.DurationMinutes).
		Set("updated_at", booking.UpdatedAt).
		Where(squirrel.Eq{"id": booking.ID, "company_id": booking.CompanyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateAssignment - build update query: %v", ErrBuildQuery, err)
	}

	return r.execUpdate(ctx, "UpdateAssignment", query, args)
}

func (r *Repository) execUpdate(ctx context.Context, method, query string, args []interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// GetActiveByEmployeeAndDate возвращает бронирования сотрудника на дату в статусах confirmed и in_progress
// excludeID исключает бронирование из выборки (пустая строка = не исключать)
// В транзакции строки блокируются FOR UPDATE
func (r *Repository) GetActiveByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, excludeID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{
			"b.employee_id":  employeeID,
			"b.booking_date": date.Format(domain.DateFormat),
			"b.status":       activeStatuses,
		}).
		OrderBy("b.start_time ASC")

	if excludeID != "" {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.id": excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByEmployeeAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByEmployeeAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var row bookingScan
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("%w: GetActiveByEmployeeAndDate - scan row: %w", ErrScanRow, err)
		}
		b := row.booking()
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByEmployeeAndDate - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// GetStats считает сводную статистику бронирований компании одним запросом
func (r *Repository) GetStats(ctx context.Context, companyID string, period domain.StatsPeriod) (*domain.BookingStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countByStatus := func(status domain.BookingStatus) squirrel.Sqlizer {
		return squirrel.Expr("COUNT(*) FILTER (WHERE b.status = ?)", string(status))
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		Column(countByStatus(domain.StatusPending)).
		Column(countByStatus(domain.StatusConfirmed)).
		Column(countByStatus(domain.StatusInProgress)).
		Column(countByStatus(domain.StatusCompleted)).
		Column(countByStatus(domain.StatusCancelled)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE b.booking_date = ?)", period.Today.Format(domain.DateFormat))).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE b.booking_date >= ?)", period.WeekStart.Format(domain.DateFormat))).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE b.booking_date >= ?)", period.MonthStart.Format(domain.DateFormat))).
		Column(squirrel.Expr("COALESCE(SUM(b.total_amount) FILTER (WHERE b.status = ?), 0)", string(domain.StatusCompleted))).
		Column(squirrel.Expr("COALESCE(SUM(b.total_amount) FILTER (WHERE b.status = ?), 0)", string(domain.StatusConfirmed))).
		From("bookings b").
		Where(squirrel.Eq{"b.company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.BookingStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalBookings,
		&stats.PendingBookings,
		&stats.ConfirmedBookings,
		&stats.InProgressBookings,
		&stats.CompletedBookings,
		&stats.CancelledBookings,
		&stats.TodayBookings,
		&stats.ThisWeekBookings,
		&stats.ThisMonthBookings,
		&stats.TotalRevenue,
		&stats.PendingRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStats - scan stats: %w", ErrScanRow, err)
	}

	stats.TotalRevenue = stats.TotalRevenue.Round(moneyPlaces)
	stats.PendingRevenue = stats.PendingRevenue.Round(moneyPlaces)

	return &stats, nil
}

// detailsSelect SELECT бронирований с JOIN связанных сущностей
func detailsSelect() squirrel.SelectBuilder {
	columns := make([]string, 0, len(bookingColumns)+len(detailsColumns))
	columns = append(columns, bookingColumns...)
	columns = append(columns, detailsColumns...)

	return psqlbuilder.Select(columns...).
		From("bookings b").
		LeftJoin("services s ON s.id = b.service_id").
		LeftJoin("pet_owners po ON po.id = b.pet_owner_id").
		LeftJoin("pets p ON p.id = b.pet_id").
		LeftJoin("employees e ON e.id = b.employee_id").
		LeftJoin("companies c ON c.id = b.company_id")
}
