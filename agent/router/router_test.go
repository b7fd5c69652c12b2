package router

import (
	"reflect"
	"testing"
)

func defaultAvailable() []string {
	return []string{
		"blockchain_analyst",
		"fintech_navigator",
		"ml_investment_strategist",
		"crypto_economics",
		"regulatory_compliance",
	}
}

func TestSelectSingleDomain(t *testing.T) {
	t.Parallel()

	r := New(DefaultRules()...)

	got := r.Select("Analyze this smart contract for vulnerabilities", defaultAvailable())
	want := []string{"blockchain_analyst"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Select() = %v, want %v", got, want)
	}
}

func TestSelectMultipleDomains(t *testing.T) {
	t.Parallel()

	r := New(DefaultRules()...)

	got := r.Select("How do payment regulations affect my investment portfolio?", defaultAvailable())
	want := []string{"fintech_navigator", "ml_investment_strategist", "regulatory_compliance"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Select() = %v, want %v", got, want)
	}
}

func TestSelectKeepsRuleOrder(t *testing.T) {
	t.Parallel()

	r := New(DefaultRules()...)

	// Regulatory keywords appear first in the query text but the blockchain
	// rule is declared first.
	got := r.Select("compliance rules for crypto transactions", defaultAvailable())
	want := []string{"blockchain_analyst", "regulatory_compliance"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Select() = %v, want %v", got, want)
	}
}

func TestSelectDeduplicatesAgents(t *testing.T) {
	t.Parallel()

	r := New(
		Rule{Domain: "a", Agent: "agent_one", Keywords: []string{"alpha"}},
		Rule{Domain: "b", Agent: "agent_one", Keywords: []string{"beta"}},
		Rule{Domain: "c", Agent: "agent_two", Keywords: []string{"beta"}},
	)

	got := r.Select("alpha beta", []string{"agent_one", "agent_two"})
	want := []string{"agent_one", "agent_two"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Select() = %v, want %v", got, want)
	}
}

func TestSelectFallbackToAllAvailable(t *testing.T) {
	t.Parallel()

	r := New(DefaultRules()...)
	available := []string{"agent_b", "agent_a"}

	got := r.Select("hello there", available)
	if !reflect.DeepEqual(got, available) {
		t.Fatalf("Select() = %v, want %v", got, available)
	}

	// Fallback must be a copy, not an alias of the caller's slice.
	got[0] = "mutated"
	if available[0] != "agent_b" {
		t.Fatalf("fallback aliased the available slice")
	}
}

func TestSelectCaseInsensitive(t *testing.T) {
	t.Parallel()

	r := New(DefaultRules()...)

	got := r.Select("TOKENOMICS of new DeFi projects", defaultAvailable())
	want := []string{"crypto_economics"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Select() = %v, want %v", got, want)
	}
}

func TestSelectEmptyAvailable(t *testing.T) {
	t.Parallel()

	r := New(DefaultRules()...)

	if got := r.Select("anything", nil); len(got) != 0 {
		t.Fatalf("Select() with no available agents = %v, want empty", got)
	}
}
