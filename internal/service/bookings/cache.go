package bookings

import (
	"errors"

	statsCache "github.com/m04kA/PetCare-BookingService/internal/infra/cache/stats"
)

func isCacheMiss(err error) bool {
	return errors.Is(err, statsCache.ErrCacheMiss)
}
