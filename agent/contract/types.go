package contract

// AgentResponse is what a single agent returns for one query. Insights and
// recommendations keep the agent's own ordering. Alerts and Details carry
// domain-specific payloads the core passes through untouched.
type AgentResponse struct {
	Insights        []string       `json:"insights"`
	Recommendations []string       `json:"recommendations"`
	Alerts          []string       `json:"alerts,omitempty"`
	Confidence      float64        `json:"confidence"`
	Details         map[string]any `json:"details,omitempty"`
}

// AgentResult pairs an agent identifier with its response. Results are kept
// as an ordered slice rather than a map so that synthesis order stays a
// deterministic function of selection order.
type AgentResult struct {
	Agent    string
	Response AgentResponse
}

// SourcedItem is one insight or recommendation attributed to the agent that
// produced it.
type SourcedItem struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// AgentFailure records an agent that was selected but contributed nothing,
// together with the reason. Failed agents are excluded from AgentsConsulted.
type AgentFailure struct {
	Agent  string `json:"agent"`
	Reason string `json:"reason"`
}

// SynthesizedResponse is the unified answer assembled from every consulted
// agent. It is owned by the caller once returned.
type SynthesizedResponse struct {
	RequestID       string         `json:"request_id"`
	Query           string         `json:"query"`
	AgentsConsulted []string       `json:"agents_consulted"`
	Insights        []SourcedItem  `json:"insights"`
	Recommendations []SourcedItem  `json:"recommendations"`
	Confidence      float64        `json:"confidence"`
	Diagnostics     []AgentFailure `json:"diagnostics,omitempty"`
}

// AgentHealth is an agent's self-reported health.
type AgentHealth struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// OrchestratorHealth describes the orchestrator itself.
type OrchestratorHealth struct {
	Status     string `json:"status"`
	AgentCount int    `json:"agent_count"`
}

// HealthReport aggregates orchestrator and per-agent health.
type HealthReport struct {
	Orchestrator OrchestratorHealth     `json:"orchestrator"`
	Agents       map[string]AgentHealth `json:"agents"`
}

const StatusHealthy = "healthy"
