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

// Business Metrics
var (
	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	ItemsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsCreated,
			Help: HelpTextItemsCreated,
		},
	)

	CurrencySpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCurrencySpent,
			Help: HelpTextCurrencySpent,
		},
		[]string{LabelCurrency},
	)

	CurrencyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyEarned,
			Help: HelpTextCurrencyEarned,
		},
		[]string{LabelCurrency},
	)

	GrindsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGrindsTotal,
			Help: HelpTextGrindsTotal,
		},
	)

	ExchangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExchangesTotal,
			Help: HelpTextExchangesTotal,
		},
		[]string{LabelDirection},
	)

	LedgerRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLedgerRejections,
			Help: HelpTextLedgerRejections,
		},
		[]string{LabelOperation, LabelReason},
	)

	RateFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRateFetches,
			Help: HelpTextRateFetches,
		},
		[]string{LabelResult},
	)

	GemPriceInGold = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameGemPriceInGold,
			Help: HelpTextGemPriceInGold,
		},
	)
)
