package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"volunteer-portal-backend/internal/domain"
)

// Observer captures telemetry for onboarding evaluations.
type Observer interface {
	RecordEvaluation(duration time.Duration, progress domain.Progress)
	RecordDirectoryError(operation string)
}

// PrometheusObserver exports onboarding metrics to Prometheus.
type PrometheusObserver struct {
	evaluationDuration prometheus.Histogram
	evaluations        *prometheus.CounterVec
	steps              *prometheus.CounterVec
	directoryErrors    *prometheus.CounterVec
}

// NewPrometheusObserver registers the onboarding metrics with reg, or the
// default registerer when reg is nil.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = "volunteer_onboarding"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &PrometheusObserver{
		evaluationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Time to fetch and evaluate one person's onboarding.",
			Buckets:   prometheus.DefBuckets,
		}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Onboarding evaluations by overall status.",
		}, []string{"overall"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Evaluated steps by category and status.",
		}, []string{"category", "status"}),
		directoryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "directory_errors_total",
			Help:      "Failed calls to the people directory.",
		}, []string{"operation"}),
	}

	if err := register(reg, &o.evaluationDuration); err != nil {
		return nil, err
	}
	if err := register(reg, &o.evaluations); err != nil {
		return nil, err
	}
	if err := register(reg, &o.steps); err != nil {
		return nil, err
	}
	if err := register(reg, &o.directoryErrors); err != nil {
		return nil, err
	}
	return o, nil
}

// register adds c to reg, reusing an already registered collector of the
// same type when one exists.
func register[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				*c = existing
				return nil
			}
		}
		return fmt.Errorf("register onboarding metric: %w", err)
	}
	return nil
}

func (o *PrometheusObserver) RecordEvaluation(duration time.Duration, progress domain.Progress) {
	if o == nil {
		return
	}
	o.evaluationDuration.Observe(duration.Seconds())
	o.evaluations.WithLabelValues(string(progress.Overall())).Inc()
	for _, s := range progress.Steps {
		o.steps.WithLabelValues(string(s.Category), string(s.Status)).Inc()
	}
}

func (o *PrometheusObserver) RecordDirectoryError(operation string) {
	if o == nil {
		return
	}
	o.directoryErrors.WithLabelValues(operation).Inc()
}

// NopObserver discards all telemetry.
type NopObserver struct{}

func (NopObserver) RecordEvaluation(time.Duration, domain.Progress) {}
func (NopObserver) RecordDirectoryError(string)                     {}
