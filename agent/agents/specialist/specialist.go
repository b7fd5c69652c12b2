// Package specialist implements the concrete domain agents of the FinChain
// intelligence network. Each agent answers from static domain knowledge,
// triggered by keywords in the query.
package specialist

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	contractx "github.com/finchain/fin/agent/contract"
)

type base struct {
	name         string
	description  string
	version      string
	capabilities []string
	logger       zerolog.Logger
}

func newBase(name, description, version string, capabilities []string) base {
	return base{
		name:         name,
		description:  description,
		version:      version,
		capabilities: capabilities,
		logger:       log.With().Str("agent", name).Logger(),
	}
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Description() string {
	return b.description
}

func (b *base) Capabilities() []string {
	return append([]string(nil), b.capabilities...)
}

func (b *base) HealthCheck() contractx.AgentHealth {
	return contractx.AgentHealth{
		Status:  contractx.StatusHealthy,
		Name:    b.name,
		Version: b.version,
	}
}

// newResponse allocates a response with empty, non-nil lists.
func newResponse() contractx.AgentResponse {
	return contractx.AgentResponse{
		Insights:        []string{},
		Recommendations: []string{},
	}
}

// confidence scores how well the agent could answer: a base of 0.3 plus 0.2
// per insight and 0.1 per recommendation, capped at 0.9.
func confidence(insights, recommendations int) float64 {
	score := 0.3 + 0.2*float64(insights) + 0.1*float64(recommendations)
	if score > 0.9 {
		return 0.9
	}
	return score
}

func containsAny(lowered string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

// titleKey turns a snake_case dataset key into a display name, e.g.
// "embedded_finance" into "Embedded Finance".
func titleKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
