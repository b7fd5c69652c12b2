package synthesizer

import (
	"math"
	"reflect"
	"testing"

	contractx "github.com/finchain/fin/agent/contract"
)

func TestMergeNoResults(t *testing.T) {
	t.Parallel()

	resp := Merge("anything", nil)

	if resp.Query != "anything" {
		t.Fatalf("unexpected query: %q", resp.Query)
	}
	if resp.Confidence != 0.0 {
		t.Fatalf("expected zero confidence, got %v", resp.Confidence)
	}
	if resp.Insights == nil || len(resp.Insights) != 0 {
		t.Fatalf("expected empty non-nil insights, got %#v", resp.Insights)
	}
	if resp.Recommendations == nil || len(resp.Recommendations) != 0 {
		t.Fatalf("expected empty non-nil recommendations, got %#v", resp.Recommendations)
	}
}

func TestMergeOrderingAndAttribution(t *testing.T) {
	t.Parallel()

	results := []contractx.AgentResult{
		{
			Agent: "agent_b",
			Response: contractx.AgentResponse{
				Insights:        []string{"b1", "b2"},
				Recommendations: []string{"br"},
				Confidence:      0.8,
			},
		},
		{
			Agent: "agent_a",
			Response: contractx.AgentResponse{
				Insights:   []string{"a1"},
				Confidence: 0.4,
			},
		},
	}

	resp := Merge("q", results)

	wantAgents := []string{"agent_b", "agent_a"}
	if !reflect.DeepEqual(resp.AgentsConsulted, wantAgents) {
		t.Fatalf("AgentsConsulted = %v, want %v", resp.AgentsConsulted, wantAgents)
	}

	wantInsights := []contractx.SourcedItem{
		{Content: "b1", Source: "agent_b"},
		{Content: "b2", Source: "agent_b"},
		{Content: "a1", Source: "agent_a"},
	}
	if !reflect.DeepEqual(resp.Insights, wantInsights) {
		t.Fatalf("Insights = %v, want %v", resp.Insights, wantInsights)
	}

	wantRecs := []contractx.SourcedItem{
		{Content: "br", Source: "agent_b"},
	}
	if !reflect.DeepEqual(resp.Recommendations, wantRecs) {
		t.Fatalf("Recommendations = %v, want %v", resp.Recommendations, wantRecs)
	}

	if diff := math.Abs(resp.Confidence - 0.6); diff > 1e-9 {
		t.Fatalf("Confidence = %v, want 0.6", resp.Confidence)
	}
}

func TestMergeConfidenceCountsSilentAgents(t *testing.T) {
	t.Parallel()

	// An agent that reports no confidence still counts in the denominator.
	results := []contractx.AgentResult{
		{Agent: "loud", Response: contractx.AgentResponse{Confidence: 0.9}},
		{Agent: "silent", Response: contractx.AgentResponse{}},
	}

	resp := Merge("q", results)
	if diff := math.Abs(resp.Confidence - 0.45); diff > 1e-9 {
		t.Fatalf("Confidence = %v, want 0.45", resp.Confidence)
	}
}
