package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var BookingsByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "bookings_by_status",
		Help: "Number of bookings per status, bookings without status are counted as \"none\"",
	},
	[]string{"status"},
)

// SetBookingsByStatus заменяет все значения gauge, статусы без посылок исчезают из выдачи.
func SetBookingsByStatus(counts map[string]int64) {
	BookingsByStatus.Reset()
	for status, count := range counts {
		BookingsByStatus.WithLabelValues(status).Set(float64(count))
	}
}
