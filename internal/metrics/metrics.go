package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Economy Metrics
var (
	DropsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropsTotal,
			Help: HelpTextDropsTotal,
		},
		[]string{LabelRarity},
	)

	TheftsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTheftsTotal,
			Help: HelpTextTheftsTotal,
		},
		[]string{LabelOutcome},
	)

	VictimSearchAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameVictimSearchAttempts,
			Help:    HelpTextVictimSearchAttempts,
			Buckets: VictimSearchBuckets,
		},
	)

	ForgesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameForgesTotal,
			Help: HelpTextForgesTotal,
		},
		[]string{LabelRarity},
	)

	ForgeCardsConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameForgeCardsConsumed,
			Help: HelpTextForgeCardsConsumed,
		},
	)

	VaultOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVaultOperationsTotal,
			Help: HelpTextVaultOperationsTotal,
		},
		[]string{LabelOperation},
	)

	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRegistrationsTotal,
			Help: HelpTextRegistrationsTotal,
		},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsTotal,
			Help: HelpTextNotificationsTotal,
		},
		[]string{LabelOutcome},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)
)
