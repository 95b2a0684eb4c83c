package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics содержит счетчики и gauge приложения для Prometheus.
type Metrics struct {
	PostsIngested   prometheus.Counter
	PostsClassified *prometheus.CounterVec // label: label={disaster,not_disaster}
	AlertsCreated   prometheus.Counter
	AlertsConfirmed prometheus.Counter
	AlertsDismissed prometheus.Counter
	Notifications   *prometheus.CounterVec // label: outcome={success,failure}
	IngestRunning   prometheus.Gauge
}

// NewMetrics создает и регистрирует метрики в дефолтном реестре Prometheus.
func NewMetrics() *Metrics {
	m := &Metrics{
		PostsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crisis_alert",
			Name:      "posts_ingested_total",
			Help:      "Total candidate posts consumed from the ingest queue.",
		}),
		PostsClassified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crisis_alert",
			Name:      "posts_classified_total",
			Help:      "Classifier verdicts by label.",
		}, []string{"label"}),
		AlertsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crisis_alert",
			Name:      "alerts_created_total",
			Help:      "Total pending alerts created.",
		}),
		AlertsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crisis_alert",
			Name:      "alerts_confirmed_total",
			Help:      "Total alerts confirmed by an operator.",
		}),
		AlertsDismissed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crisis_alert",
			Name:      "alerts_dismissed_total",
			Help:      "Total alerts dismissed by an operator.",
		}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crisis_alert",
			Name:      "notifications_total",
			Help:      "SMS delivery attempts by outcome.",
		}, []string{"outcome"}),
		IngestRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crisis_alert",
			Name:      "ingest_worker_running",
			Help:      "1 when the ingest worker is active, 0 when stopped.",
		}),
	}

	prometheus.MustRegister(
		m.PostsIngested,
		m.PostsClassified,
		m.AlertsCreated,
		m.AlertsConfirmed,
		m.AlertsDismissed,
		m.Notifications,
		m.IngestRunning,
	)

	return m
}

// NewMetricsForTesting создает метрики без регистрации в глобальном реестре,
// чтобы избежать паник "already registered" при вызове из нескольких тестов.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		PostsIngested:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crisis_alert", Name: "posts_ingested_total"}),
		PostsClassified: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "crisis_alert", Name: "posts_classified_total"}, []string{"label"}),
		AlertsCreated:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crisis_alert", Name: "alerts_created_total"}),
		AlertsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crisis_alert", Name: "alerts_confirmed_total"}),
		AlertsDismissed: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crisis_alert", Name: "alerts_dismissed_total"}),
		Notifications:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "crisis_alert", Name: "notifications_total"}, []string{"outcome"}),
		IngestRunning:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "crisis_alert", Name: "ingest_worker_running"}),
	}
}
