package specialist

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	contractx "github.com/finchain/fin/agent/contract"
	knowledgex "github.com/finchain/fin/agent/knowledge"
)

func testKB(t *testing.T) knowledgex.Set {
	t.Helper()
	kb, err := knowledgex.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return kb
}

func TestConfidenceFormula(t *testing.T) {
	t.Parallel()

	cases := []struct {
		insights        int
		recommendations int
		want            float64
	}{
		{0, 0, 0.3},
		{1, 0, 0.5},
		{0, 1, 0.4},
		{2, 2, 0.9},
		{5, 5, 0.9},
	}
	for _, tc := range cases {
		got := confidence(tc.insights, tc.recommendations)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("confidence(%d, %d) = %v, want %v", tc.insights, tc.recommendations, got, tc.want)
		}
	}
}

func TestTitleKey(t *testing.T) {
	t.Parallel()

	if got := titleKey("embedded_finance"); got != "Embedded Finance" {
		t.Fatalf("titleKey() = %q", got)
	}
	if got := titleKey("gdpr"); got != "Gdpr" {
		t.Fatalf("titleKey() = %q", got)
	}
}

func TestNewDefaultAgents(t *testing.T) {
	t.Parallel()

	agents := NewDefaultAgents()
	want := []string{
		"blockchain_analyst",
		"fintech_navigator",
		"ml_investment_strategist",
		"crypto_economics",
		"regulatory_compliance",
	}
	if len(agents) != len(want) {
		t.Fatalf("NewDefaultAgents() returned %d agents, want %d", len(agents), len(want))
	}
	for i, agent := range agents {
		if agent.Name() != want[i] {
			t.Fatalf("agent[%d].Name() = %q, want %q", i, agent.Name(), want[i])
		}
		if len(agent.Capabilities()) == 0 {
			t.Fatalf("agent %q reports no capabilities", agent.Name())
		}
		health := agent.HealthCheck()
		if health.Status != contractx.StatusHealthy {
			t.Fatalf("agent %q health = %+v", agent.Name(), health)
		}
	}
}

func TestBlockchainAnalystProcessQuery(t *testing.T) {
	t.Parallel()

	a := NewBlockchainAnalyst()
	resp, err := a.ProcessQuery(context.Background(), "Audit this smart contract for suspicious activity")
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}
	if len(resp.Insights) == 0 || len(resp.Recommendations) == 0 {
		t.Fatalf("expected insights and recommendations, got %+v", resp)
	}
	if len(resp.Alerts) == 0 {
		t.Fatalf("smart contract analysis should raise an alert")
	}
	if resp.Confidence != 0.9 {
		t.Fatalf("Confidence = %v, want capped at 0.9", resp.Confidence)
	}
}

func TestBlockchainAnalystUnmatchedQuery(t *testing.T) {
	t.Parallel()

	a := NewBlockchainAnalyst()
	resp, err := a.ProcessQuery(context.Background(), "tell me a joke")
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}
	if len(resp.Insights) != 0 {
		t.Fatalf("expected no insights, got %v", resp.Insights)
	}
	if math.Abs(resp.Confidence-0.3) > 1e-9 {
		t.Fatalf("Confidence = %v, want base 0.3", resp.Confidence)
	}
}

func TestBlockchainAnalystNetworkValidation(t *testing.T) {
	t.Parallel()

	a := NewBlockchainAnalyst()

	if _, err := a.MonitorAddress("0xabc", "dogecoin"); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	monitor, err := a.MonitorAddress("0xabc", "ethereum")
	if err != nil {
		t.Fatalf("MonitorAddress() error = %v", err)
	}
	if monitor.Status != "monitoring" || monitor.Network != "ethereum" {
		t.Fatalf("unexpected monitor: %+v", monitor)
	}

	if _, err := a.AnalyzeContract("0xdef", "bitcoin"); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestFinTechNavigatorSpecificTrend(t *testing.T) {
	t.Parallel()

	a := NewFinTechNavigator(testKB(t))
	resp, err := a.ProcessQuery(context.Background(), "What is the buy now pay later market trend?")
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}

	var found bool
	for _, insight := range resp.Insights {
		if strings.Contains(insight, "Buy Now Pay Later") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected trend-specific insight, got %v", resp.Insights)
	}
}

func TestFinTechNavigatorRegulatoryImpact(t *testing.T) {
	t.Parallel()

	a := NewFinTechNavigator(testKB(t))

	impact, err := a.GetRegulatoryImpact("Europe")
	if err != nil {
		t.Fatalf("GetRegulatoryImpact() error = %v", err)
	}
	if impact.TotalRegulations == 0 || impact.HighImpactCount == 0 {
		t.Fatalf("unexpected impact: %+v", impact)
	}

	if _, err := a.GetRegulatoryImpact("Atlantis"); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestFinTechNavigatorUnknownTrend(t *testing.T) {
	t.Parallel()

	a := NewFinTechNavigator(testKB(t))
	if _, err := a.AnalyzeMarketTrend("quantum banking"); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestMLStrategistRiskProfiles(t *testing.T) {
	t.Parallel()

	a := NewMLInvestmentStrategist()

	resp, err := a.ProcessQuery(context.Background(), "optimize my portfolio, I am an aggressive investor")
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}
	allocation, ok := resp.Details["portfolio_allocation"].(map[string]int)
	if !ok {
		t.Fatalf("missing portfolio allocation in details: %+v", resp.Details)
	}
	if allocation["stocks"] != 60 {
		t.Fatalf("aggressive stocks allocation = %d, want 60", allocation["stocks"])
	}

	resp, err = a.ProcessQuery(context.Background(), "recommend something safe and conservative")
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}
	var conservative bool
	for _, rec := range resp.Recommendations {
		if strings.Contains(rec, "high-quality bonds") {
			conservative = true
		}
	}
	if !conservative {
		t.Fatalf("expected conservative recommendations, got %v", resp.Recommendations)
	}
}

func TestMLStrategistAnalyzeAsset(t *testing.T) {
	t.Parallel()

	a := NewMLInvestmentStrategist()
	analysis := a.AnalyzeAsset("ETH", "short")
	if analysis.TimeHorizon != "1-3 months" {
		t.Fatalf("TimeHorizon = %q", analysis.TimeHorizon)
	}
	switch analysis.Recommendation {
	case "buy", "hold", "sell":
	default:
		t.Fatalf("unexpected recommendation %q", analysis.Recommendation)
	}

	// Unknown horizons fall back to medium.
	if got := a.AnalyzeAsset("ETH", "whenever").TimeHorizon; got != "6-12 months" {
		t.Fatalf("TimeHorizon = %q, want medium fallback", got)
	}
}

func TestCryptoEconomicsProtocolInsights(t *testing.T) {
	t.Parallel()

	a := NewCryptoEconomics(testKB(t))
	resp, err := a.ProcessQuery(context.Background(), "What is the yield on aave lending?")
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}

	var found bool
	for _, insight := range resp.Insights {
		if strings.Contains(insight, "Aave has a utilization rate") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected aave-specific insight, got %v", resp.Insights)
	}
}

func TestCryptoEconomicsTokenModel(t *testing.T) {
	t.Parallel()

	a := NewCryptoEconomics(testKB(t))

	eval := a.EvaluateTokenModel(TokenModel{
		MaxSupply:     1_000_000,
		InitialSupply: 500_000,
		EmissionRate:  50_000,
		UtilityScore:  0.8,
		BurnRate:      0.2,
	})
	if !eval.IsDeflationary {
		t.Fatalf("expected deflationary model: %+v", eval)
	}
	if eval.TimeToMaxSupply != "10.0 years" {
		t.Fatalf("TimeToMaxSupply = %q", eval.TimeToMaxSupply)
	}

	uncapped := a.EvaluateTokenModel(TokenModel{InitialSupply: 100, EmissionRate: 50})
	if uncapped.TimeToMaxSupply != "infinity" {
		t.Fatalf("TimeToMaxSupply = %q, want infinity", uncapped.TimeToMaxSupply)
	}
}

func TestCryptoEconomicsDeFiOpportunity(t *testing.T) {
	t.Parallel()

	a := NewCryptoEconomics(testKB(t))

	opp, err := a.AnalyzeDeFiOpportunity("Uniswap", "farming")
	if err != nil {
		t.Fatalf("AnalyzeDeFiOpportunity() error = %v", err)
	}
	if opp.RiskScore != 0.7 {
		t.Fatalf("RiskScore = %v, want 0.7", opp.RiskScore)
	}
	if len(opp.RiskFactors) != 3 {
		t.Fatalf("RiskFactors = %v", opp.RiskFactors)
	}

	if _, err := a.AnalyzeDeFiOpportunity("unknownswap", "farming"); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRegulatoryComplianceJurisdiction(t *testing.T) {
	t.Parallel()

	a := NewRegulatoryCompliance(testKB(t))
	resp, err := a.ProcessQuery(context.Background(), "What are the compliance requirements in Singapore?")
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}

	var found bool
	for _, insight := range resp.Insights {
		if strings.Contains(insight, "Singapore") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Singapore insights, got %v", resp.Insights)
	}
}

func TestRegulatoryComplianceTransactionAssessment(t *testing.T) {
	t.Parallel()

	a := NewRegulatoryCompliance(testKB(t))

	assessment := a.AssessTransactionCompliance(Transaction{
		OriginJurisdiction:      "us",
		DestinationJurisdiction: "sg",
		AssetType:               "cryptocurrency",
		Amount:                  5000,
		PartyType:               "business",
	})
	if assessment.OverallRisk != "medium" {
		t.Fatalf("OverallRisk = %q, want medium", assessment.OverallRisk)
	}

	var crossBorder, largeTx, beneficial bool
	for _, check := range assessment.RequiredChecks {
		switch check {
		case "Cross-border transfer reporting":
			crossBorder = true
		case "Large transaction reporting":
			largeTx = true
		case "Beneficial ownership verification":
			beneficial = true
		}
	}
	if !crossBorder || !largeTx || !beneficial {
		t.Fatalf("missing required checks: %v", assessment.RequiredChecks)
	}
	if len(assessment.JurisdictionalRequirements) != 2 {
		t.Fatalf("JurisdictionalRequirements = %v", assessment.JurisdictionalRequirements)
	}

	sanctioned := a.AssessTransactionCompliance(Transaction{
		OriginJurisdiction:      "sanctioned",
		DestinationJurisdiction: "us",
		AssetType:               "fiat",
		Amount:                  100,
	})
	if sanctioned.OverallRisk != "high" {
		t.Fatalf("OverallRisk = %q, want high", sanctioned.OverallRisk)
	}
}

func TestRegulatoryComplianceReport(t *testing.T) {
	t.Parallel()

	a := NewRegulatoryCompliance(testKB(t))

	report, err := a.GenerateComplianceReport("pci_dss", ReportScope{Jurisdiction: "eu"})
	if err != nil {
		t.Fatalf("GenerateComplianceReport() error = %v", err)
	}
	if report.FrameworkName == "" || len(report.ComplianceActions) == 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	for _, reg := range report.ApplicableRegulations {
		if reg == "" {
			t.Fatalf("empty regulation name in report")
		}
	}

	if _, err := a.GenerateComplianceReport("sox", ReportScope{}); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
