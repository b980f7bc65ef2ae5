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

// Battle metric names
const (
	MetricNameBattlesStarted   = "battles_started_total"
	MetricNameBattlesCompleted = "battles_completed_total"
	MetricNameBattlesActive    = "battles_active"
	MetricNameBattleTurns      = "battle_turns"
	MetricNameBattleIntruders  = "battle_intruders_total"
	MetricNameInputTimeouts    = "battle_input_timeouts_total"
)

// Encounter and event metric names
const (
	MetricNameEncountersOffered  = "encounters_offered_total"
	MetricNameEncountersAccepted = "encounters_accepted_total"
	MetricNameWorldEventsFired   = "world_events_fired_total"
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

// Battle metric help text
const (
	HelpTextBattlesStarted   = "Total number of battles started"
	HelpTextBattlesCompleted = "Total number of battles completed"
	HelpTextBattlesActive    = "Current number of running battles"
	HelpTextBattleTurns      = "Number of turns per completed battle"
	HelpTextBattleIntruders  = "Total number of fighters that joined running battles"
	HelpTextInputTimeouts    = "Total number of action prompts that timed out"
)

// Encounter and event metric help text
const (
	HelpTextEncountersOffered  = "Total number of encounter prompts shown"
	HelpTextEncountersAccepted = "Total number of encounter prompts accepted"
	HelpTextWorldEventsFired   = "Total number of world events executed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelRegion  = "region"
	LabelOutcome = "outcome"
	LabelEvent   = "event"
)

// Battle outcome label values
const (
	OutcomeVictory = "victory"
	OutcomeDefeat  = "defeat"
	OutcomeDraw    = "draw"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// BattleTurnBuckets covers everything from a two-turn stomp to a drawn-out
// hundred-turn slugfest.
var BattleTurnBuckets = []float64{2, 5, 10, 20, 35, 50, 75, 100, 150}
