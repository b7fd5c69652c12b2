package cmd

import (
	"strings"
	"testing"

	contractx "github.com/finchain/fin/agent/contract"
)

func TestFormatResponse(t *testing.T) {
	t.Parallel()

	resp := contractx.SynthesizedResponse{
		RequestID:       "req-1",
		Query:           "What is DeFi?",
		AgentsConsulted: []string{"crypto_economics", "fintech_navigator"},
		Insights: []contractx.SourcedItem{
			{Content: "DeFi TVL is rising", Source: "crypto_economics"},
		},
		Recommendations: []contractx.SourcedItem{
			{Content: "Diversify across protocols", Source: "crypto_economics"},
		},
		Confidence: 0.72,
	}

	out := formatResponse(resp)

	for _, want := range []string{
		"Query: What is DeFi?",
		"Agents consulted: crypto_economics, fintech_navigator",
		"Confidence: 0.72",
		"1. DeFi TVL is rising (Source: crypto_economics)",
		"1. Diversify across protocols (Source: crypto_economics)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("formatResponse() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Diagnostics") {
		t.Fatalf("unexpected diagnostics section:\n%s", out)
	}
}

func TestFormatResponseWithDiagnostics(t *testing.T) {
	t.Parallel()

	resp := contractx.SynthesizedResponse{
		Query: "q",
		Diagnostics: []contractx.AgentFailure{
			{Agent: "blockchain_analyst", Reason: "circuit open"},
		},
	}

	out := formatResponse(resp)
	if !strings.Contains(out, "- blockchain_analyst: circuit open") {
		t.Fatalf("formatResponse() missing diagnostics in:\n%s", out)
	}
}
