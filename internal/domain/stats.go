package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStats сводная статистика бронирований компании
type BookingStats struct {
	TotalBookings      int64
	PendingBookings    int64
	ConfirmedBookings  int64
	InProgressBookings int64
	CompletedBookings  int64
	CancelledBookings  int64
	TodayBookings      int64
	ThisWeekBookings   int64
	ThisMonthBookings  int64
	TotalRevenue       decimal.Decimal // сумма завершённых бронирований
	PendingRevenue     decimal.Decimal // сумма подтверждённых, но не завершённых
}

// StatsPeriod границы периодов для статистики (даты без времени)
type StatsPeriod struct {
	Today      time.Time
	WeekStart  time.Time // воскресенье текущей недели
	MonthStart time.Time
}

// NewStatsPeriod вычисляет границы периодов относительно now в UTC
func NewStatsPeriod(now time.Time) StatsPeriod {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return StatsPeriod{
		Today:      today,
		WeekStart:  today.AddDate(0, 0, -int(today.Weekday())),
		MonthStart: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
}
