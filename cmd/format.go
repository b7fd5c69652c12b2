package cmd

import (
	"fmt"
	"strings"

	contractx "github.com/finchain/fin/agent/contract"
)

// formatResponse renders a synthesized response for terminal display.
func formatResponse(resp contractx.SynthesizedResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Query: %s\n", resp.Query)
	fmt.Fprintf(&b, "Agents consulted: %s\n", strings.Join(resp.AgentsConsulted, ", "))
	fmt.Fprintf(&b, "Confidence: %.2f\n", resp.Confidence)

	b.WriteString("\nInsights:\n")
	for i, insight := range resp.Insights {
		fmt.Fprintf(&b, "  %d. %s (Source: %s)\n", i+1, insight.Content, insight.Source)
	}

	b.WriteString("\nRecommendations:\n")
	for i, rec := range resp.Recommendations {
		fmt.Fprintf(&b, "  %d. %s (Source: %s)\n", i+1, rec.Content, rec.Source)
	}

	if len(resp.Diagnostics) > 0 {
		b.WriteString("\nDiagnostics:\n")
		for _, d := range resp.Diagnostics {
			fmt.Fprintf(&b, "  - %s: %s\n", d.Agent, d.Reason)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
