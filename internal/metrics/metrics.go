// Package metrics records run statistics for the node-exporter textfile
// collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	registry *prometheus.Registry

	PeopleEvaluated      prometheus.Counter
	MilestonesGenerated  prometheus.Counter
	NotificationsTotal   prometheus.Counter
	RunDuration          prometheus.Gauge
	LastSuccessTimestamp prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PeopleEvaluated: factory.NewCounter(prometheus.CounterOpts{
			Name: "milestones_people_evaluated_total",
			Help: "Number of people whose milestones were checked",
		}),
		MilestonesGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "milestones_generated_total",
			Help: "Number of milestone dates computed",
		}),
		NotificationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "milestones_notifications_total",
			Help: "Number of milestones found for tomorrow",
		}),
		RunDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "milestones_run_duration_seconds",
			Help: "Duration of the last milestone run",
		}),
		LastSuccessTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "milestones_last_success_timestamp_seconds",
			Help: "Unix time of the last successful run",
		}),
	}
}

func (m *Metrics) ObserveRun(people, milestones, notifications int, start time.Time) {
	m.PeopleEvaluated.Add(float64(people))
	m.MilestonesGenerated.Add(float64(milestones))
	m.NotificationsTotal.Add(float64(notifications))
	m.RunDuration.Set(time.Since(start).Seconds())
	m.LastSuccessTimestamp.SetToCurrentTime()
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
