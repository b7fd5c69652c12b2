package specialist

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/finchain/fin/agent/contract"
	knowledgex "github.com/finchain/fin/agent/knowledge"
)

// FinTechNavigator tracks fintech trends, regulations, payment systems and
// financial API ecosystems.
type FinTechNavigator struct {
	base
	kb knowledgex.Set
}

var _ contractx.Agent = (*FinTechNavigator)(nil)

func NewFinTechNavigator(kb knowledgex.Set) *FinTechNavigator {
	a := &FinTechNavigator{
		base: newBase(
			"fintech_navigator",
			"Tracks fintech trends, regulations, and market movements",
			"fin.agents.fintech_navigator",
			[]string{
				"Track fintech trends, regulations, and market movements",
				"Monitor financial news and interpret impact on investments",
				"Assist with payment systems integration and selection",
				"Guide financial API orchestration and implementation",
				"Analyze regulatory implications of financial products",
				"Compare technology stacks across financial service providers",
			},
		),
		kb: kb,
	}
	a.logger.Info().Msg("initializing fintech data sources")
	return a
}

func (a *FinTechNavigator) ProcessQuery(ctx context.Context, query string) (contractx.AgentResponse, error) {
	a.logger.Debug().Str("query", query).Msg("processing fintech query")

	lowered := strings.ToLower(query)
	resp := newResponse()

	if containsAny(lowered, "trend", "market", "growth", "emerging", "technology", "innovation") {
		a.analyzeTrends(lowered, &resp)
	}
	if containsAny(lowered, "regulation", "compliance", "legal", "law", "framework", "policy") {
		a.analyzeRegulations(lowered, &resp)
	}
	if containsAny(lowered, "payment", "transaction", "transfer", "wallet", "banking") {
		a.analyzePaymentSystems(lowered, &resp)
	}
	if containsAny(lowered, "api", "integration", "data", "connect", "platform", "open banking") {
		a.analyzeFinancialAPIs(lowered, &resp)
	}

	resp.Confidence = confidence(len(resp.Insights), len(resp.Recommendations))
	return resp, nil
}

// mentionedKeys returns the dataset keys whose spaced form appears in the
// lowered query, in lexical order.
func mentionedKeys[V any](lowered string, m map[string]V) []string {
	var hits []string
	for _, key := range knowledgex.SortedKeys(m) {
		if strings.Contains(lowered, strings.ReplaceAll(key, "_", " ")) {
			hits = append(hits, key)
		}
	}
	return hits
}

func (a *FinTechNavigator) analyzeTrends(lowered string, resp *contractx.AgentResponse) {
	specific := mentionedKeys(lowered, a.kb.FintechTrends)

	if len(specific) == 0 {
		resp.Insights = append(resp.Insights,
			"Embedded finance continues to be the fastest-growing fintech sector with a 26% annual growth rate",
			"Regulatory technology (RegTech) is gaining importance as financial regulations become more complex",
			"Traditional banks are increasingly partnering with fintech startups rather than competing directly",
		)
		resp.Recommendations = append(resp.Recommendations,
			"Focus on open banking and API-first solutions for maximum market connectivity",
			"Monitor the impact of BNPL regulations which may constrain growth in that sector",
		)
		return
	}

	for _, key := range specific {
		trend := a.kb.FintechTrends[key]
		name := titleKey(key)
		resp.Insights = append(resp.Insights,
			fmt.Sprintf("%s market is growing at %.0f%% annually with an estimated market size of $%.1fB",
				name, trend.GrowthRate*100, trend.MarketSize/1e9),
			fmt.Sprintf("Key players in %s: %s", name, strings.Join(trend.KeyPlayers, ", ")),
		)

		switch trend.Maturity {
		case "emerging":
			resp.Recommendations = append(resp.Recommendations,
				fmt.Sprintf("Consider early strategic investments in %s for long-term positioning", name))
		case "growing":
			resp.Recommendations = append(resp.Recommendations,
				fmt.Sprintf("Build partnerships with established %s providers to enhance your offerings", name))
		case "maturing":
			resp.Recommendations = append(resp.Recommendations,
				fmt.Sprintf("Focus on differentiation and value-add features in the competitive %s space", name))
		}
	}
}

func (a *FinTechNavigator) analyzeRegulations(lowered string, resp *contractx.AgentResponse) {
	specific := mentionedKeys(lowered, a.kb.RegulatoryUpdates)

	regionKeywords := [][2]string{
		{"europe", "Europe"}, {"eu", "Europe"}, {"european", "Europe"},
		{"us", "United States"}, {"usa", "United States"}, {"america", "United States"},
		{"uk", "United Kingdom"}, {"britain", "United Kingdom"},
	}
	var regions []string
	seen := map[string]bool{}
	for _, pair := range regionKeywords {
		if strings.Contains(lowered, pair[0]) && !seen[pair[1]] {
			seen[pair[1]] = true
			regions = append(regions, pair[1])
		}
	}

	if len(specific) == 0 && len(regions) == 0 {
		resp.Insights = append(resp.Insights,
			"Global financial regulations are becoming increasingly harmonized for digital assets and payments",
			"Regulatory focus on consumer protection and data privacy is intensifying across major markets",
			"Compliance requirements for fintech firms are growing more complex, creating barriers to entry",
		)
		resp.Recommendations = append(resp.Recommendations,
			"Invest in flexible compliance infrastructure that can adapt to evolving regulations",
			"Consider regulatory requirements in product design from the earliest stages",
		)
		return
	}

	for _, key := range specific {
		reg := a.kb.RegulatoryUpdates[key]
		name := titleKey(key)
		resp.Insights = append(resp.Insights,
			fmt.Sprintf("%s in %s is currently %s with %s impact", name, reg.Region, reg.Status, reg.Impact),
			fmt.Sprintf("Summary: %s", reg.Summary),
		)

		switch reg.Status {
		case "proposed":
			resp.Recommendations = append(resp.Recommendations,
				fmt.Sprintf("Monitor developments in %s and prepare contingency plans", name))
		case "implemented":
			resp.Recommendations = append(resp.Recommendations,
				fmt.Sprintf("Ensure compliance with %s requirements immediately", name))
		}
	}

	for _, region := range regions {
		var regionRegs, highImpact []string
		for _, key := range knowledgex.SortedKeys(a.kb.RegulatoryUpdates) {
			reg := a.kb.RegulatoryUpdates[key]
			if reg.Region != region {
				continue
			}
			regionRegs = append(regionRegs, key)
			if reg.Impact == "high" {
				highImpact = append(highImpact, titleKey(key))
			}
		}
		if len(regionRegs) == 0 {
			continue
		}
		resp.Insights = append(resp.Insights,
			fmt.Sprintf("%s has %d major regulatory frameworks affecting fintech operations", region, len(regionRegs)))
		if len(highImpact) > 0 {
			resp.Insights = append(resp.Insights,
				fmt.Sprintf("High-impact regulations in %s: %s", region, strings.Join(highImpact, ", ")))
		}
		resp.Recommendations = append(resp.Recommendations,
			fmt.Sprintf("Consider regulatory expertise specific to %s for expansion plans", region))
	}
}

func (a *FinTechNavigator) analyzePaymentSystems(lowered string, resp *contractx.AgentResponse) {
	specific := mentionedKeys(lowered, a.kb.PaymentSystems)

	if len(specific) == 0 {
		resp.Insights = append(resp.Insights,
			"Real-time payment systems are becoming the global standard with 65% adoption in major economies",
			"Mobile wallets have reached 78% adoption in developed markets, led by contactless payments",
			"Cryptocurrency payment acceptance is growing but remains niche at 12% global adoption",
		)
		resp.Recommendations = append(resp.Recommendations,
			"Implement real-time payment capabilities to meet growing consumer expectations",
			"Ensure mobile wallet compatibility across your payment stack",
		)
		return
	}

	for _, key := range specific {
		system := a.kb.PaymentSystems[key]
		name := titleKey(key)
		resp.Insights = append(resp.Insights,
			fmt.Sprintf("%s have %.0f%% adoption across %s", name, system.AdoptionRate*100, strings.Join(system.Regions, ", ")),
			fmt.Sprintf("Key technologies for %s: %s", name, strings.Join(system.KeyTechnologies, ", ")),
		)

		switch system.IntegrationComplexity {
		case "low":
			resp.Recommendations = append(resp.Recommendations,
				fmt.Sprintf("Implement %s as a priority due to high ROI and low integration complexity", name))
		case "medium":
			resp.Recommendations = append(resp.Recommendations,
				fmt.Sprintf("Plan a phased approach to %s integration, focusing on high-value use cases first", name))
		case "high":
			resp.Recommendations = append(resp.Recommendations,
				fmt.Sprintf("Consider partnership with specialized providers for %s integration to reduce complexity", name))
		}
	}
}

func (a *FinTechNavigator) analyzeFinancialAPIs(lowered string, resp *contractx.AgentResponse) {
	specific := mentionedKeys(lowered, a.kb.FinancialAPIs)

	if len(specific) == 0 {
		resp.Insights = append(resp.Insights,
			"API-first infrastructure is becoming the standard for financial services delivery",
			"Open Banking APIs have seen rapid adoption with PSD2 in Europe and similar initiatives globally",
			"Financial data APIs are consolidating through major acquisitions (e.g., Visa-Plaid, Mastercard-Finicity)",
		)
		resp.Recommendations = append(resp.Recommendations,
			"Design with API-first architecture to maximize flexibility and partnership opportunities",
			"Standardize API security using OAuth 2.0 and MTLS for industry best practices",
		)
		return
	}

	for _, key := range specific {
		api := a.kb.FinancialAPIs[key]
		name := titleKey(key)
		resp.Insights = append(resp.Insights,
			fmt.Sprintf("%s APIs use standards including: %s", name, strings.Join(api.Standards, ", ")),
			fmt.Sprintf("%s APIs provide access to: %s", name, strings.Join(api.DataAccess, ", ")),
			fmt.Sprintf("Market penetration: %s, Security: %s", api.MarketPenetration, api.Security),
		)

		if api.MarketPenetration == "high" {
			resp.Recommendations = append(resp.Recommendations,
				fmt.Sprintf("Prioritize %s API integration as part of core infrastructure", name))
		} else {
			resp.Recommendations = append(resp.Recommendations,
				fmt.Sprintf("Evaluate %s API providers based on data quality and reliability metrics", name))
		}
	}
}

// TrendAnalysis is the detailed report for a single fintech trend.
type TrendAnalysis struct {
	Trend           string   `json:"trend"`
	GrowthRate      float64  `json:"growth_rate"`
	MarketSize      float64  `json:"market_size"`
	Maturity        string   `json:"maturity"`
	KeyPlayers      []string `json:"key_players"`
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
}

// AnalyzeMarketTrend reports on one tracked trend by display name or key.
func (a *FinTechNavigator) AnalyzeMarketTrend(trendName string) (TrendAnalysis, error) {
	key := strings.ReplaceAll(strings.ToLower(trendName), " ", "_")
	trend, ok := a.kb.FintechTrends[key]
	if !ok {
		return TrendAnalysis{}, fmt.Errorf("%w: trend %q not tracked", contractx.ErrValidation, trendName)
	}

	var positioning string
	switch trend.Maturity {
	case "emerging":
		positioning = "Consider early investment for long-term positioning"
	case "growing":
		positioning = "Build strategic partnerships with established players"
	default:
		positioning = "Focus on differentiation in this maturing market"
	}

	return TrendAnalysis{
		Trend:      trendName,
		GrowthRate: trend.GrowthRate,
		MarketSize: trend.MarketSize,
		Maturity:   trend.Maturity,
		KeyPlayers: append([]string(nil), trend.KeyPlayers...),
		Analysis: fmt.Sprintf("The %s market is %s with a %.0f%% annual growth rate",
			trendName, trend.Maturity, trend.GrowthRate*100),
		Recommendations: []string{
			positioning,
			fmt.Sprintf("Identify specific niches within %s that align with your core competencies", trendName),
			fmt.Sprintf("Monitor regulatory developments around %s as they may impact growth trajectory", trendName),
		},
	}, nil
}

// RegulatoryImpact summarizes the regulatory landscape for one region.
type RegulatoryImpact struct {
	Region           string   `json:"region"`
	TotalRegulations int      `json:"total_regulations"`
	HighImpactCount  int      `json:"high_impact_count"`
	ImplementedCount int      `json:"implemented_count"`
	ProposedCount    int      `json:"proposed_count"`
	KeyRegulations   []string `json:"key_regulations"`
	Analysis         string   `json:"analysis"`
	Recommendations  []string `json:"recommendations"`
}

// GetRegulatoryImpact summarizes tracked regulatory updates for a region.
func (a *FinTechNavigator) GetRegulatoryImpact(region string) (RegulatoryImpact, error) {
	impact := RegulatoryImpact{Region: region}

	for _, key := range knowledgex.SortedKeys(a.kb.RegulatoryUpdates) {
		reg := a.kb.RegulatoryUpdates[key]
		if !strings.EqualFold(reg.Region, region) {
			continue
		}
		impact.TotalRegulations++
		impact.KeyRegulations = append(impact.KeyRegulations, titleKey(key))
		if reg.Impact == "high" {
			impact.HighImpactCount++
		}
		switch reg.Status {
		case "implemented":
			impact.ImplementedCount++
		case "proposed":
			impact.ProposedCount++
		}
	}

	if impact.TotalRegulations == 0 {
		return RegulatoryImpact{}, fmt.Errorf("%w: no regulations tracked for region %q", contractx.ErrValidation, region)
	}

	impact.Analysis = fmt.Sprintf("%s has %d high-impact regulations affecting financial services",
		region, impact.HighImpactCount)
	impact.Recommendations = []string{
		"Ensure compliance with implemented regulations immediately",
		"Monitor proposed regulations and prepare contingency plans",
		fmt.Sprintf("Consider specialized legal counsel for %s operations", region),
	}
	return impact, nil
}
