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

// Battle Metrics
var (
	BattlesStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesStarted,
			Help: HelpTextBattlesStarted,
		},
		[]string{LabelRegion},
	)

	BattlesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesCompleted,
			Help: HelpTextBattlesCompleted,
		},
		[]string{LabelRegion, LabelOutcome},
	)

	BattlesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBattlesActive,
			Help: HelpTextBattlesActive,
		},
	)

	BattleTurns = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBattleTurns,
			Help:    HelpTextBattleTurns,
			Buckets: BattleTurnBuckets,
		},
	)

	BattleIntruders = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBattleIntruders,
			Help: HelpTextBattleIntruders,
		},
	)

	InputTimeouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInputTimeouts,
			Help: HelpTextInputTimeouts,
		},
	)
)

// Encounter and world event Metrics
var (
	EncountersOffered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEncountersOffered,
			Help: HelpTextEncountersOffered,
		},
		[]string{LabelRegion},
	)

	EncountersAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEncountersAccepted,
			Help: HelpTextEncountersAccepted,
		},
		[]string{LabelRegion},
	)

	WorldEventsFired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorldEventsFired,
			Help: HelpTextWorldEventsFired,
		},
		[]string{LabelRegion, LabelEvent},
	)
)
