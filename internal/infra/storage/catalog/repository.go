package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PetCare-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/PetCare-BookingService/pkg/ptr"
)

// Repository читает справочные данные компаний: услуги, сотрудников, питомцев
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetService получает услугу компании
func (r *Repository) GetService(ctx context.Context, id, companyID string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "company_id", "name", "duration", "price", "is_active").
		From("services").
		Where(squirrel.Eq{"id": id, "company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var (
		service  domain.Service
		duration sql.NullInt64
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.CompanyID,
		&service.Name,
		&duration,
		&service.Price,
		&service.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %w", ErrScanRow, err)
	}

	if duration.Valid {
		service.DurationMinutes = ptr.Ptr(int(duration.Int64))
	}
	service.Price = service.Price.Round(2)

	return &service, nil
}

// GetEmployee получает сотрудника компании
// В транзакции строка блокируется FOR UPDATE: параллельные назначения одного сотрудника выполняются по очереди
func (r *Repository) GetEmployee(ctx context.Context, id, companyID string) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "company_id", "name", "is_active").
		From("employees").
		Where(squirrel.Eq{"id": id, "company_id": companyID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployee - build select query: %v", ErrBuildQuery, err)
	}

	var employee domain.Employee
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&employee.ID,
		&employee.CompanyID,
		&employee.Name,
		&employee.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployee - scan employee: %w", ErrScanRow, err)
	}

	return &employee, nil
}

// GetPet получает питомца владельца
func (r *Repository) GetPet(ctx context.Context, id, ownerID string) (*domain.Pet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "owner_id", "name", "type").
		From("pets").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPet - build select query: %v", ErrBuildQuery, err)
	}

	var (
		pet     domain.Pet
		petType sql.NullString
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&pet.ID, &pet.OwnerID, &pet.Name, &petType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPet - scan pet: %w", ErrScanRow, err)
	}
	pet.Type = petType.String

	return &pet, nil
}
