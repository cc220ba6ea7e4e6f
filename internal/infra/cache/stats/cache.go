package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

const keyPrefix = "booking:stats:"

var (
	// ErrCacheMiss возвращается, когда статистики компании нет в кэше
	ErrCacheMiss = errors.New("stats.cache: miss")

	// ErrCache возвращается при ошибках Redis или сериализации
	ErrCache = errors.New("stats.cache: redis error")
)

// entry запись кэша; Day фиксирует день, для которого посчитаны счётчики today/week/month
type entry struct {
	Day   string               `json:"day"`
	Stats *domain.BookingStats `json:"stats"`
}

// Cache кэш сводной статистики бронирований компании в Redis
// Запись другого дня считается промахом
// Cache без клиента отключён: Get всегда промахивается, Set и Invalidate ничего не делают
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш статистики; client == nil отключает кэширование
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Enabled возвращает true, если кэш подключен к Redis
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get возвращает статистику компании, посчитанную за день day
func (c *Cache) Get(ctx context.Context, companyID string, day time.Time) (*domain.BookingStats, error) {
	if !c.Enabled() {
		return nil, ErrCacheMiss
	}

	data, err := c.client.Get(ctx, key(companyID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %w", ErrCache, err)
	}

	var cached entry
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal: %v", ErrCache, err)
	}

	if cached.Stats == nil || cached.Day != day.Format(domain.DateFormat) {
		return nil, ErrCacheMiss
	}

	return cached.Stats, nil
}

// Set сохраняет статистику компании за день day на ttl
func (c *Cache) Set(ctx context.Context, companyID string, day time.Time, stats *domain.BookingStats) error {
	if !c.Enabled() {
		return nil
	}

	data, err := json.Marshal(entry{Day: day.Format(domain.DateFormat), Stats: stats})
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, key(companyID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %w", ErrCache, err)
	}

	return nil
}

// Invalidate удаляет статистику компании после изменения её бронирований
func (c *Cache) Invalidate(ctx context.Context, companyID string) error {
	if !c.Enabled() {
		return nil
	}

	if err := c.client.Del(ctx, key(companyID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - %w", ErrCache, err)
	}

	return nil
}

func key(companyID string) string {
	return keyPrefix + companyID
}
