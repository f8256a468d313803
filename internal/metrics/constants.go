package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Economy metric names
const (
	MetricNameDropsTotal           = "card_drops_total"
	MetricNameTheftsTotal          = "card_thefts_total"
	MetricNameVictimSearchAttempts = "theft_victim_search_attempts"
	MetricNameForgesTotal          = "forge_executions_total"
	MetricNameForgeCardsConsumed   = "forge_cards_consumed_total"
	MetricNameVaultOperationsTotal = "vault_operations_total"
	MetricNameRegistrationsTotal   = "user_registrations_total"
	MetricNameNotificationsTotal   = "theft_notifications_total"
	MetricNameSSEClients           = "sse_clients"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Economy metric help text
const (
	HelpTextDropsTotal           = "Total number of cards granted by drops, by rarity"
	HelpTextTheftsTotal          = "Total number of theft attempts, by outcome"
	HelpTextVictimSearchAttempts = "Random draws needed to find an eligible theft victim"
	HelpTextForgesTotal          = "Total number of forge executions, by output rarity"
	HelpTextForgeCardsConsumed   = "Total number of committed cards consumed by the forge"
	HelpTextVaultOperationsTotal = "Total number of vault operations, by operation"
	HelpTextRegistrationsTotal   = "Total number of registered users"
	HelpTextNotificationsTotal   = "Theft notification deliveries, by outcome"
	HelpTextSSEClients           = "Currently connected event stream clients"
)

// Metric label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelRarity    = "rarity"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
)

// Label values
const (
	OutcomeSuccess    = "success"
	OutcomeCooldown   = "cooldown"
	OutcomeNoVictim   = "no_victim"
	OutcomeError      = "error"
	OutcomeDelivered  = "delivered"
	OutcomeNoListener = "no_listener"
	OutcomeDropped    = "dropped"

	OperationStore   = "store"
	OperationEvict   = "evict"
	OperationRelease = "release"

	// UnmatchedRoute labels requests that matched no chi route
	UnmatchedRoute = "unmatched"
)

// HTTPLatencyBuckets are the histogram buckets for request latency (seconds)
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// VictimSearchBuckets span one draw up to the theft search bound
var VictimSearchBuckets = []float64{1, 2, 3, 5, 10, 25, 50, 100}
