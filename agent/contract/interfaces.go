package contract

import "context"

// Agent is the contract every specialist in the network implements. The
// orchestrator depends only on this interface; agents own their domain data
// and keyword rules.
type Agent interface {
	// Name returns the stable identifier the agent is registered under.
	Name() string
	// ProcessQuery produces the agent's domain insights for a query.
	ProcessQuery(ctx context.Context, query string) (AgentResponse, error)
	// Capabilities describes what the agent can do. Descriptive only; the
	// router never consults it.
	Capabilities() []string
	// HealthCheck reports the agent's self-assessed health.
	HealthCheck() AgentHealth
}

// Classifier decides which agent identifiers should handle a query.
// The default implementation is keyword matching; a real relevance model can
// replace it without touching the orchestrator.
type Classifier interface {
	// Select returns the relevant subset of available identifiers, without
	// duplicates, in first-match order. An empty match must fall back to the
	// full available set in the given order.
	Select(query string, available []string) []string
}
