package orchestrator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	contractx "github.com/finchain/fin/agent/contract"
)

func TestGuardedAgentPassesThrough(t *testing.T) {
	t.Parallel()

	inner := &fakeAgent{
		name:     "guarded",
		response: contractx.AgentResponse{Insights: []string{"ok"}, Confidence: 0.5},
	}
	g := newGuardedAgent(inner, BreakerConfig{Enabled: true}, zerolog.Nop())

	if g.Name() != "guarded" {
		t.Fatalf("Name() = %q", g.Name())
	}
	if got := g.HealthCheck(); got.Name != "guarded" {
		t.Fatalf("HealthCheck() = %+v", got)
	}

	resp, err := g.ProcessQuery(context.Background(), "q")
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}
	if len(resp.Insights) != 1 || resp.Insights[0] != "ok" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGuardedAgentOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	inner := &fakeAgent{name: "flaky", err: errors.New("backend down")}
	g := newGuardedAgent(inner, BreakerConfig{
		Enabled:     true,
		MaxFailures: 2,
		Timeout:     time.Hour,
	}, zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := g.ProcessQuery(context.Background(), "q"); err == nil {
			t.Fatalf("expected failure on call %d", i+1)
		}
	}

	// Circuit is open now; the inner agent must not be called again.
	before := inner.calls.Load()
	_, err := g.ProcessQuery(context.Background(), "q")
	if !errors.Is(err, contractx.ErrAgentUnavailable) {
		t.Fatalf("expected ErrAgentUnavailable, got %v", err)
	}
	if inner.calls.Load() != before {
		t.Fatalf("open circuit still consulted the agent")
	}
}

func TestGuardedAgentRecoversAfterTimeout(t *testing.T) {
	t.Parallel()

	inner := &fakeAgent{name: "recovering", err: errors.New("backend down")}
	g := newGuardedAgent(inner, BreakerConfig{
		Enabled:     true,
		MaxFailures: 1,
		Timeout:     20 * time.Millisecond,
	}, zerolog.Nop())

	if _, err := g.ProcessQuery(context.Background(), "q"); err == nil {
		t.Fatalf("expected failure to trip the breaker")
	}
	if _, err := g.ProcessQuery(context.Background(), "q"); !errors.Is(err, contractx.ErrAgentUnavailable) {
		t.Fatalf("expected open circuit, got %v", err)
	}

	// After the timeout a half-open probe goes through; a success closes the
	// circuit again.
	inner.err = nil
	inner.response = contractx.AgentResponse{Confidence: 0.5}
	time.Sleep(50 * time.Millisecond)

	resp, err := g.ProcessQuery(context.Background(), "q")
	if err != nil {
		t.Fatalf("expected half-open probe to succeed, got %v", err)
	}
	if resp.Confidence != 0.5 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if _, err := g.ProcessQuery(context.Background(), "q"); err != nil {
		t.Fatalf("expected closed circuit, got %v", err)
	}
}

func TestOrchestratorSurfacesOpenCircuitInDiagnostics(t *testing.T) {
	t.Parallel()

	classifier := &fakeClassifier{selected: []string{"flaky", "steady"}}
	flaky := &fakeAgent{name: "flaky", err: errors.New("backend down")}
	steady := &fakeAgent{name: "steady", response: contractx.AgentResponse{Confidence: 0.7}}

	o := newTestOrchestrator(t, classifier, Config{
		Breaker: BreakerConfig{Enabled: true, MaxFailures: 1, Timeout: time.Hour},
	}, flaky, steady)

	// First query trips the breaker, second hits the open circuit.
	for i := 0; i < 2; i++ {
		resp, err := o.ProcessQuery(context.Background(), "anything")
		if err != nil {
			t.Fatalf("ProcessQuery() error = %v", err)
		}
		if len(resp.Diagnostics) != 1 || resp.Diagnostics[0].Agent != "flaky" {
			t.Fatalf("Diagnostics = %v", resp.Diagnostics)
		}
		if len(resp.AgentsConsulted) != 1 || resp.AgentsConsulted[0] != "steady" {
			t.Fatalf("AgentsConsulted = %v", resp.AgentsConsulted)
		}
	}
	if flaky.calls.Load() != 1 {
		t.Fatalf("expected one consult before the circuit opened, got %d", flaky.calls.Load())
	}
}
