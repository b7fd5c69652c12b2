package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/rs/zerolog"

	contractx "github.com/finchain/fin/agent/contract"
)

const (
	defaultBreakerMaxFailures uint32        = 3
	defaultBreakerTimeout     time.Duration = 30 * time.Second
	defaultBreakerInterval    time.Duration = 60 * time.Second
)

// BreakerConfig configures per-agent circuit breaking. When an agent fails
// MaxFailures times in a row its circuit opens and consults fail fast until
// Timeout elapses, at which point one probe call is allowed through.
type BreakerConfig struct {
	Enabled     bool
	MaxFailures uint32
	Timeout     time.Duration
	Interval    time.Duration
}

// guardedAgent wraps a registered agent with a circuit breaker. Everything
// except ProcessQuery passes through to the inner agent.
type guardedAgent struct {
	contractx.Agent
	breaker *gobreaker.CircuitBreaker[contractx.AgentResponse]
}

func newGuardedAgent(inner contractx.Agent, cfg BreakerConfig, logger zerolog.Logger) *guardedAgent {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = defaultBreakerMaxFailures
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultBreakerTimeout
	}
	interval := cfg.Interval
	if interval == 0 {
		interval = defaultBreakerInterval
	}

	cb := gobreaker.NewCircuitBreaker[contractx.AgentResponse](gobreaker.Settings{
		Name:        "agent:" + inner.Name(),
		MaxRequests: 1,
		Interval:    interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	})

	return &guardedAgent{Agent: inner, breaker: cb}
}

func (g *guardedAgent) ProcessQuery(ctx context.Context, query string) (contractx.AgentResponse, error) {
	resp, err := g.breaker.Execute(func() (contractx.AgentResponse, error) {
		return g.Agent.ProcessQuery(ctx, query)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return contractx.AgentResponse{}, fmt.Errorf("%w: agent=%s circuit open", contractx.ErrAgentUnavailable, g.Name())
		}
		return contractx.AgentResponse{}, err
	}
	return resp, nil
}
