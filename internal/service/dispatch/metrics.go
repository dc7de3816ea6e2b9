package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DispatchAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_attempts_total",
			Help: "Total number of dispatch attempts",
		},
	)

	DispatchAssignmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_assignments_total",
			Help: "Total number of successful courier assignments by search radius",
		},
		[]string{"radius_km"},
	)

	DispatchNoCourierTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_no_courier_total",
			Help: "Total number of dispatch attempts that exhausted all radii",
		},
	)
)
