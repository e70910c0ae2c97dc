package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for OperationsTotal.
const (
	OutcomeOK       = "ok"
	OutcomeAbsent   = "absent"
	OutcomeOverflow = "overflow"
	OutcomeError    = "error"
)

var (
	// OperationsTotal counts evaluated operations by name and outcome
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bitwise_operations_total",
			Help: "Total number of evaluated bit operations",
		},
		[]string{"op", "outcome"},
	)

	// BatchRowsTotal counts rows processed by columnar evaluation
	BatchRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bitwise_batch_rows_total",
			Help: "Total number of column rows processed by batch evaluation",
		},
		[]string{"op", "outcome"},
	)

	// BatchDurationSeconds measures batch evaluation latency
	BatchDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bitwise_batch_duration_seconds",
			Help:    "Duration of batch column evaluation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	// VerifyChecksTotal counts inputs checked by the variant cross-checker
	VerifyChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bitwise_verify_checks_total",
			Help: "Total number of inputs checked per variant family",
		},
		[]string{"family"},
	)

	// VerifyMismatchesTotal counts inputs on which variants disagreed
	VerifyMismatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bitwise_verify_mismatches_total",
			Help: "Total number of variant disagreements found",
		},
		[]string{"family"},
	)

	// VerifyRunsTotal counts cross-check runs by result
	VerifyRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bitwise_verify_runs_total",
			Help: "Total number of verify runs",
		},
		[]string{"status"},
	)
)
