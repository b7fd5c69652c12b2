// Package synthesizer merges per-agent responses into one unified,
// source-attributed response.
package synthesizer

import (
	contractx "github.com/finchain/fin/agent/contract"
)

// Merge combines ordered agent results into a SynthesizedResponse.
//
// Per-agent insight and recommendation ordering is preserved, concatenated
// across agents in result order. Confidence is the sum of per-agent
// confidences divided by the total result count: an agent reporting no
// confidence contributes zero to the sum but still counts in the
// denominator. Zero results yield confidence 0.0 and empty lists.
func Merge(query string, results []contractx.AgentResult) contractx.SynthesizedResponse {
	resp := contractx.SynthesizedResponse{
		Query:           query,
		AgentsConsulted: make([]string, 0, len(results)),
		Insights:        []contractx.SourcedItem{},
		Recommendations: []contractx.SourcedItem{},
		Confidence:      0.0,
	}

	for _, res := range results {
		resp.AgentsConsulted = append(resp.AgentsConsulted, res.Agent)

		for _, insight := range res.Response.Insights {
			resp.Insights = append(resp.Insights, contractx.SourcedItem{
				Content: insight,
				Source:  res.Agent,
			})
		}
		for _, rec := range res.Response.Recommendations {
			resp.Recommendations = append(resp.Recommendations, contractx.SourcedItem{
				Content: rec,
				Source:  res.Agent,
			})
		}
	}

	if len(results) > 0 {
		for _, res := range results {
			resp.Confidence += res.Response.Confidence / float64(len(results))
		}
	}

	return resp
}
