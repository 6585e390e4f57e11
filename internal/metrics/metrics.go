package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hr_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hr_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	TimesheetHours = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hr_timesheet_working_hours",
		Help:    "Working hours derived for saved timesheets.",
		Buckets: []float64{1, 2, 4, 6, 8, 9, 10, 12, 16, 24},
	})

	TimesheetRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hr_timesheet_rejected_total",
		Help: "Timesheet writes rejected by working-hours validation.",
	}, []string{"reason"})

	PayrollsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hr_payrolls_generated_total",
		Help: "Draft payrolls created or refreshed.",
	})

	PayslipsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hr_payslips_sent_total",
		Help: "Payslip deliveries by result.",
	}, []string{"result"})
)
