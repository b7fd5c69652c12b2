// Package orchestrator owns the agent registry and coordinates routing and
// synthesis for the FinChain intelligence network.
package orchestrator

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	contractx "github.com/finchain/fin/agent/contract"
	routerx "github.com/finchain/fin/agent/router"
)

// Config tunes orchestration behavior. The zero value reproduces the
// reference design: sequential consults, no response cache, breaker off.
type Config struct {
	// Parallelism bounds concurrent agent consults. Values <= 1 consult
	// sequentially in selection order.
	Parallelism int
	// CacheTTL enables an in-memory cache of synthesized responses when > 0.
	CacheTTL time.Duration
	// Breaker isolates repeatedly failing agents behind a circuit breaker.
	Breaker BreakerConfig
}

// Orchestrator routes queries to registered agents and synthesizes their
// responses. Its only mutable state is the registry, which grows or
// overwrites but never shrinks.
type Orchestrator struct {
	classifier contractx.Classifier

	mu     sync.RWMutex
	order  []string
	agents map[string]contractx.Agent

	graphRunner compose.Runnable[graphInput, contractx.SynthesizedResponse]

	parallelism int
	breakerCfg  BreakerConfig
	cache       *responseCache

	logger zerolog.Logger
}

// New builds an Orchestrator. A nil classifier falls back to the default
// keyword router.
func New(classifier contractx.Classifier, cfg Config) (*Orchestrator, error) {
	if classifier == nil {
		classifier = routerx.New()
	}

	o := &Orchestrator{
		classifier:  classifier,
		agents:      make(map[string]contractx.Agent),
		parallelism: cfg.Parallelism,
		breakerCfg:  cfg.Breaker,
		logger:      log.With().Str("component", "orchestrator").Logger(),
	}
	if cfg.CacheTTL > 0 {
		o.cache = newResponseCache(cfg.CacheTTL)
	}

	runner, err := o.compileProcessQueryGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = runner

	o.logger.Info().Msg("orchestrator initialized")
	return o, nil
}

// RegisterAgent inserts or overwrites the registry entry for agent.Name().
// Re-registering an identifier swaps the instance but keeps its original
// position in iteration order. It never fails; a nil or unnamed agent is
// logged and ignored.
func (o *Orchestrator) RegisterAgent(agent contractx.Agent) {
	if agent == nil || strings.TrimSpace(agent.Name()) == "" {
		o.logger.Warn().Msg("ignoring agent with empty identifier")
		return
	}

	name := agent.Name()
	if o.breakerCfg.Enabled {
		agent = newGuardedAgent(agent, o.breakerCfg, o.logger)
	}

	o.mu.Lock()
	if _, exists := o.agents[name]; !exists {
		o.order = append(o.order, name)
	}
	o.agents[name] = agent
	o.mu.Unlock()

	o.logger.Info().Str("agent", name).Msg("registered agent")
}

// RegisteredAgents returns a snapshot of registered identifiers in
// registration order.
func (o *Orchestrator) RegisteredAgents() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]string(nil), o.order...)
}

func (o *Orchestrator) lookupAgent(name string) (contractx.Agent, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	agent, ok := o.agents[name]
	return agent, ok
}

// ProcessQuery routes the query, consults each selected registered agent and
// merges their responses. Per-agent failures never abort the call; they are
// recorded in the response diagnostics instead.
func (o *Orchestrator) ProcessQuery(ctx context.Context, query string) (contractx.SynthesizedResponse, error) {
	if cached, ok := o.cachedResponse(query); ok {
		o.logger.Debug().Str("query", query).Msg("serving cached response")
		return cached, nil
	}

	requestID := uuid.NewString()
	o.logger.Info().Str("request_id", requestID).Str("query", query).Msg("processing query")

	resp, err := o.graphRunner.Invoke(ctx, graphInput{
		RequestID: requestID,
		Query:     query,
	})
	if err != nil {
		return contractx.SynthesizedResponse{}, err
	}

	o.storeResponse(query, resp)
	return resp, nil
}

func (o *Orchestrator) cachedResponse(query string) (contractx.SynthesizedResponse, bool) {
	if o.cache == nil {
		return contractx.SynthesizedResponse{}, false
	}
	return o.cache.get(query)
}

func (o *Orchestrator) storeResponse(query string, resp contractx.SynthesizedResponse) {
	if o.cache == nil {
		return
	}
	o.cache.put(query, resp)
}

// HealthCheck reports the orchestrator's own status plus each registered
// agent's self-reported health. The orchestrator performs no liveness
// probing of its own.
func (o *Orchestrator) HealthCheck() contractx.HealthReport {
	o.mu.RLock()
	names := append([]string(nil), o.order...)
	agents := make(map[string]contractx.Agent, len(o.agents))
	for name, agent := range o.agents {
		agents[name] = agent
	}
	o.mu.RUnlock()

	report := contractx.HealthReport{
		Orchestrator: contractx.OrchestratorHealth{
			Status:     contractx.StatusHealthy,
			AgentCount: len(names),
		},
		Agents: make(map[string]contractx.AgentHealth, len(names)),
	}
	for _, name := range names {
		report.Agents[name] = agents[name].HealthCheck()
	}
	return report
}
