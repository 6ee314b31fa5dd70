package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SlotsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tutorbooker_slots_created_total",
		Help: "Total number of slots published.",
	})
	SlotsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tutorbooker_slots_deleted_total",
		Help: "Total number of slots deleted.",
	})
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tutorbooker_bookings_created_total",
		Help: "Total number of bookings created.",
	})
	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tutorbooker_bookings_cancelled_total",
		Help: "Total number of bookings cancelled.",
	})
	SeatsExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tutorbooker_seats_exhausted_total",
		Help: "Total number of booking attempts rejected because the slot was full.",
	})
	BookingTxConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tutorbooker_booking_tx_conflicts_total",
		Help: "Total number of booking transaction conflicts that were retried.",
	})
)

// Handler exposes the default registry, which is where promauto registers
// the counters above.
func Handler() http.Handler {
	return promhttp.Handler()
}
