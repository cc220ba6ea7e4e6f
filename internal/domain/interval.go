package domain

import (
	"fmt"

	"github.com/m04kA/PetCare-BookingService/pkg/types"
)

// Interval полуоткрытый интервал [Start, End) в минутах от начала суток
// End может превышать 24*60, если бронирование заканчивается после полуночи
type Interval struct {
	Start int
	End   int
}

// NewInterval строит интервал из времени начала и длительности
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	if durationMinutes <= 0 {
		return Interval{}, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidInterval, durationMinutes)
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	return Interval{Start: startMinutes, End: startMinutes + durationMinutes}, nil
}

// Overlaps проверяет пересечение полуоткрытых интервалов
// Интервалы, которые только касаются границами (10:00-11:00 и 11:00-12:00), не пересекаются
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// FindOverlap возвращает первое бронирование из списка, пересекающееся с интервалом
// Бронирования с некорректным временем пропускаются
func FindOverlap(candidate Interval, bookings []*Booking) *Booking {
	for _, b := range bookings {
		existing, err := b.Interval()
		if err != nil {
			continue
		}
		if candidate.Overlaps(existing) {
			return b
		}
	}
	return nil
}
