package booking_stats

import (
	"context"
	"fmt"
	"time"

	"shipease/pkg/logger"
)

// BookingStats периодически пересчитывает количество посылок по статусам.
type BookingStats struct {
	log      handlerLogger
	service  Service
	publish  func(map[string]int64)
	interval time.Duration
}

// NewBookingStats publish получает свежие счетчики, в сервисе это metrics.SetBookingsByStatus.
func NewBookingStats(log handlerLogger, service Service, publish func(map[string]int64), interval time.Duration) *BookingStats {
	return &BookingStats{
		log:      log.With(),
		service:  service,
		publish:  publish,
		interval: interval,
	}
}

func (b *BookingStats) TTL() time.Duration {
	return b.interval
}

func (b *BookingStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	counts, err := b.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("booking stats: %w", err)
	}

	b.publish(counts)

	var total int64
	for _, c := range counts {
		total += c
	}
	b.log.With(
		logger.NewField("statuses", len(counts)),
		logger.NewField("bookings", total),
	).Info("booking stats refreshed")

	return nil
}

func (b *BookingStats) Info() string {
	return "booking stats"
}
