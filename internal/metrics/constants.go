package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameItemsBought      = "items_bought_total"
	MetricNameItemsSold        = "items_sold_total"
	MetricNameItemsCreated     = "items_created_total"
	MetricNameCurrencySpent    = "currency_spent_total"
	MetricNameCurrencyEarned   = "currency_earned_total"
	MetricNameGrindsTotal      = "grinds_total"
	MetricNameExchangesTotal   = "exchanges_total"
	MetricNameLedgerRejections = "ledger_rejections_total"
	MetricNameRateFetches      = "rate_fetches_total"
	MetricNameGemPriceInGold   = "gem_price_in_gold"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextItemsBought      = "Total number of items bought"
	HelpTextItemsSold        = "Total number of items sold"
	HelpTextItemsCreated     = "Total number of catalog items created"
	HelpTextCurrencySpent    = "Total currency debited by purchases and exchanges"
	HelpTextCurrencyEarned   = "Total currency credited by sales, grinds and exchanges"
	HelpTextGrindsTotal      = "Total number of grind rewards processed"
	HelpTextExchangesTotal   = "Total number of gem exchanges"
	HelpTextLedgerRejections = "Ledger operations rejected by a business rule"
	HelpTextRateFetches      = "Exchange rate fetch attempts by result"
	HelpTextGemPriceInGold   = "Current gem price in gold used for exchanges"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelItem      = "item"
	LabelCurrency  = "currency"
	LabelDirection = "direction"
	LabelOperation = "operation"
	LabelReason    = "reason"
	LabelResult    = "result"
)

// Label values
const (
	DirectionBuy  = "buy"
	DirectionSell = "sell"

	ResultOK       = "ok"
	ResultFallback = "fallback"

	// PathUnmatched labels requests no route handled
	PathUnmatched = "unmatched"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
