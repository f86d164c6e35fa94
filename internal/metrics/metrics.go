package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	InitiationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mpesa_initiations_total",
			Help: "STK push initiations by result",
		},
		[]string{"result"},
	)

	TransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mpesa_attempt_transitions_total",
			Help: "Payment attempt state transitions by target state",
		},
		[]string{"state"},
	)

	PollTicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mpesa_poll_ticks_total",
			Help: "Status queries issued by the poller by result",
		},
		[]string{"result"},
	)

	ConflictWarningsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mpesa_conflict_warnings_total",
			Help: "Completed payments whose booking slot was claimed by another attempt",
		},
	)

	TimeToTerminal = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mpesa_attempt_duration_seconds",
			Help:    "Time from gateway acknowledgment to terminal state",
			Buckets: prometheus.LinearBuckets(0, 5, 13),
		},
		[]string{"state"},
	)

	PaymentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mpesa_payment_amounts",
			Help:    "Distribution of amounts per terminal state",
			Buckets: prometheus.ExponentialBuckets(100, 2, 12),
		},
		[]string{"state"},
	)
)

func RegisterMetrics(registerer prometheus.Registerer) {
	registerer.MustRegister(
		InitiationsTotal,
		TransitionsTotal,
		PollTicksTotal,
		ConflictWarningsTotal,
		TimeToTerminal,
		PaymentAmounts,
	)
}
