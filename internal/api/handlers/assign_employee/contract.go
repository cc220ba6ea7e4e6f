package assign_employee

import (
	"context"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	assignEmployee "github.com/m04kA/PetCare-BookingService/internal/usecase/assign_employee"
)

type AssignEmployeeUseCase interface {
	Execute(ctx context.Context, req *assignEmployee.Request) (*domain.BookingDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
