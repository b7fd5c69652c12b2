package router

import (
	"strings"

	contractx "github.com/finchain/fin/agent/contract"
)

// Rule maps one domain to the agent identifier that serves it. A rule matches
// when any keyword occurs as a substring of the lowercased query.
type Rule struct {
	Domain   string
	Agent    string
	Keywords []string
}

// DefaultRules is the deployment's fixed domain table, evaluated in order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Domain:   "blockchain",
			Agent:    "blockchain_analyst",
			Keywords: []string{"blockchain", "transaction", "smart contract", "crypto"},
		},
		{
			Domain:   "fintech",
			Agent:    "fintech_navigator",
			Keywords: []string{"fintech", "payment", "banking", "financial news"},
		},
		{
			Domain:   "ml_investment",
			Agent:    "ml_investment_strategist",
			Keywords: []string{"investment", "predict", "portfolio", "strategy"},
		},
		{
			Domain:   "crypto_economics",
			Agent:    "crypto_economics",
			Keywords: []string{"token", "defi", "yield", "tokenomics"},
		},
		{
			Domain:   "regulatory",
			Agent:    "regulatory_compliance",
			Keywords: []string{"regulation", "compliance", "legal", "jurisdiction"},
		},
	}
}

// KeywordRouter selects agents by substring keyword matching. Routing is a
// set membership decision, not a relevance score.
type KeywordRouter struct {
	rules []Rule
}

var _ contractx.Classifier = (*KeywordRouter)(nil)

// New builds a KeywordRouter over the given rules. With no rules it uses
// DefaultRules.
func New(rules ...Rule) *KeywordRouter {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &KeywordRouter{rules: rules}
}

// Select returns the identifiers of matched domains in first-match order,
// without duplicates. When no domain matches it returns every available
// identifier in the given order: when unsure, ask everyone.
func (r *KeywordRouter) Select(query string, available []string) []string {
	lowered := strings.ToLower(query)

	selected := make([]string, 0, len(r.rules))
	seen := make(map[string]struct{}, len(r.rules))
	for _, rule := range r.rules {
		if !matchAny(lowered, rule.Keywords) {
			continue
		}
		if _, dup := seen[rule.Agent]; dup {
			continue
		}
		seen[rule.Agent] = struct{}{}
		selected = append(selected, rule.Agent)
	}

	if len(selected) == 0 {
		return append([]string(nil), available...)
	}
	return selected
}

func matchAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
