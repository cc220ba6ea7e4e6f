package update_booking_status

import (
	"context"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	changeStatus "github.com/m04kA/PetCare-BookingService/internal/usecase/change_status"
)

type ChangeStatusUseCase interface {
	Execute(ctx context.Context, req *changeStatus.Request) (*domain.BookingDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
