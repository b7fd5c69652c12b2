package specialist

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/finchain/fin/agent/contract"
	knowledgex "github.com/finchain/fin/agent/knowledge"
)

// RegulatoryCompliance tracks financial and blockchain regulations across
// jurisdictions and assesses compliance risks.
type RegulatoryCompliance struct {
	base
	kb knowledgex.Set
}

var _ contractx.Agent = (*RegulatoryCompliance)(nil)

func NewRegulatoryCompliance(kb knowledgex.Set) *RegulatoryCompliance {
	a := &RegulatoryCompliance{
		base: newBase(
			"regulatory_compliance",
			"Tracks financial and blockchain regulations and assesses compliance risks",
			"fin.agents.regulatory_compliance",
			[]string{
				"Track financial and blockchain regulations across jurisdictions",
				"Flag compliance risks in proposed financial transactions",
				"Generate compliance reports for different regulatory frameworks",
				"Analyze cross-border regulatory implications",
				"Monitor regulatory changes and their impact on operations",
				"Provide guidance on regulatory requirements for new products",
			},
		),
		kb: kb,
	}
	a.logger.Info().Msg("initializing regulatory data sources and compliance frameworks")
	return a
}

func (a *RegulatoryCompliance) ProcessQuery(ctx context.Context, query string) (contractx.AgentResponse, error) {
	a.logger.Debug().Str("query", query).Msg("processing regulatory compliance query")

	lowered := strings.ToLower(query)
	resp := newResponse()

	var jurisdictions []string
	for _, code := range knowledgex.SortedKeys(a.kb.Jurisdictions) {
		data := a.kb.Jurisdictions[code]
		if strings.Contains(lowered, code) || strings.Contains(lowered, strings.ToLower(data.Name)) {
			jurisdictions = append(jurisdictions, code)
		}
	}

	var regulations []string
	for _, code := range knowledgex.SortedKeys(a.kb.Regulations) {
		data := a.kb.Regulations[code]
		if strings.Contains(lowered, code) || strings.Contains(lowered, strings.ToLower(data.Name)) {
			regulations = append(regulations, code)
		}
	}

	if len(jurisdictions) > 0 {
		for _, code := range jurisdictions {
			a.analyzeJurisdiction(code, &resp)
		}
	} else {
		resp.Insights = append(resp.Insights,
			"Regulatory approaches vary significantly across jurisdictions, requiring tailored compliance strategies",
			"The EU has the most comprehensive regulatory framework for crypto-assets with MiCA",
			"Singapore offers a balanced approach with clear regulatory guidance while promoting innovation",
		)
	}

	if len(regulations) > 0 {
		for _, code := range regulations {
			a.analyzeRegulation(code, &resp)
		}
	} else {
		a.analyzeDomains(lowered, &resp)
	}

	resp.Confidence = confidence(len(resp.Insights), len(resp.Recommendations))
	return resp, nil
}

func (a *RegulatoryCompliance) analyzeJurisdiction(code string, resp *contractx.AgentResponse) {
	data, ok := a.kb.Jurisdictions[code]
	if !ok {
		return
	}

	resp.Insights = append(resp.Insights,
		fmt.Sprintf("%s has a %s approach to financial regulation", data.Name, data.RegulatoryApproach),
		fmt.Sprintf("Key regulatory bodies in %s: %s", data.Name, strings.Join(data.KeyRegulators, ", ")),
		fmt.Sprintf("%s's stance on cryptocurrency is %s", data.Name, data.CryptoStance),
	)

	switch data.ComplianceComplexity {
	case "high":
		resp.Recommendations = append(resp.Recommendations,
			fmt.Sprintf("Allocate significant resources to %s compliance due to high complexity", data.Name),
			fmt.Sprintf("Consider specialized legal counsel for %s operations", data.Name),
		)
	case "medium":
		resp.Recommendations = append(resp.Recommendations,
			fmt.Sprintf("Implement structured compliance programs for %s with regular updates", data.Name))
	default:
		resp.Recommendations = append(resp.Recommendations,
			fmt.Sprintf("Standard compliance measures should be sufficient for %s", data.Name))
	}

	var relevant, highPriority []string
	for _, rcode := range knowledgex.SortedKeys(a.kb.Regulations) {
		reg := a.kb.Regulations[rcode]
		if !containsString(reg.Jurisdictions, code) {
			continue
		}
		relevant = append(relevant, reg.Name)
		if reg.CompliancePriority == "critical" || reg.CompliancePriority == "high" {
			highPriority = append(highPriority, reg.Name)
		}
	}
	if len(relevant) > 0 {
		resp.Insights = append(resp.Insights,
			fmt.Sprintf("Key regulations in %s: %s", data.Name, strings.Join(relevant, ", ")))
		if len(highPriority) > 0 {
			resp.Recommendations = append(resp.Recommendations,
				fmt.Sprintf("Prioritize compliance with %s", strings.Join(highPriority, ", ")))
		}
	}
}

func (a *RegulatoryCompliance) analyzeRegulation(code string, resp *contractx.AgentResponse) {
	data, ok := a.kb.Regulations[code]
	if !ok {
		return
	}

	applicable := make([]string, 0, len(data.Jurisdictions))
	for _, j := range data.Jurisdictions {
		if jdata, ok := a.kb.Jurisdictions[j]; ok {
			applicable = append(applicable, jdata.Name)
		} else {
			applicable = append(applicable, j)
		}
	}

	resp.Insights = append(resp.Insights,
		fmt.Sprintf("%s applies in: %s", data.Name, strings.Join(applicable, ", ")),
		fmt.Sprintf("Key requirements: %s", strings.Join(data.KeyRequirements, ", ")),
		fmt.Sprintf("Penalties for non-compliance: %s", data.Penalties),
	)

	resp.Recommendations = append(resp.Recommendations,
		fmt.Sprintf("Implement specific controls for %s based on its requirements", data.Name))
	if data.CompliancePriority == "critical" || data.CompliancePriority == "high" {
		resp.Recommendations = append(resp.Recommendations,
			fmt.Sprintf("Conduct regular audits for %s compliance due to its %s priority",
				data.Name, data.CompliancePriority))
	}
}

func (a *RegulatoryCompliance) analyzeDomains(lowered string, resp *contractx.AgentResponse) {
	if containsAny(lowered, "crypto", "bitcoin", "blockchain", "token", "ico", "defi") {
		resp.Insights = append(resp.Insights,
			"Cryptocurrency regulations vary widely by jurisdiction but are generally becoming more comprehensive",
			"The EU's MiCA provides the most comprehensive framework for crypto-asset regulation",
			"US regulation is evolving with various agencies claiming jurisdiction over different aspects",
		)
		resp.Recommendations = append(resp.Recommendations,
			"Implement robust AML/KYC procedures as they are universally required for crypto operations",
			"Engage with regulators proactively when launching new crypto products or services",
		)
		resp.Alerts = append(resp.Alerts,
			"Uncertain classification of tokens as securities, commodities, or currencies")
	}

	if containsAny(lowered, "data", "privacy", "personal information", "gdpr") {
		resp.Insights = append(resp.Insights,
			"Data privacy regulations are becoming more stringent globally, with GDPR setting the standard",
			"Cross-border data transfers face increasing restrictions, especially from EU to non-adequate jurisdictions",
		)
		resp.Recommendations = append(resp.Recommendations,
			"Implement data minimization and purpose limitation in all systems and processes",
			"Maintain detailed records of processing activities and data protection impact assessments",
		)
		resp.Alerts = append(resp.Alerts,
			"Inadequate user consent mechanisms for data processing")
	}

	if containsAny(lowered, "banking", "payment", "investment", "trading") {
		resp.Insights = append(resp.Insights,
			"Financial services regulations are increasingly focusing on consumer protection and market stability",
			"Digital-only banks and services face evolving regulatory requirements across jurisdictions",
		)
		resp.Recommendations = append(resp.Recommendations,
			"Implement robust governance and risk management frameworks that satisfy regulatory expectations",
			"Ensure clear disclosure of fees, risks, and terms to customers",
		)
		resp.Alerts = append(resp.Alerts,
			"Inadequate segregation of client funds")
	}

	if containsAny(lowered, "money laundering", "terrorism financing", "kyc", "customer due diligence") {
		resp.Insights = append(resp.Insights,
			"AML regulations are universal with increasing emphasis on beneficial ownership identification",
			"Transaction monitoring expectations are becoming more sophisticated, requiring advanced analytics",
		)
		resp.Recommendations = append(resp.Recommendations,
			"Implement risk-based approach to customer due diligence with enhanced measures for high-risk clients",
			"Ensure suspicious activity reporting processes are efficient and meet timing requirements",
		)
		resp.Alerts = append(resp.Alerts,
			"Inadequate screening against sanctions and PEP lists")
	}
}

func containsString(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}

// Transaction describes a proposed transfer for compliance assessment.
type Transaction struct {
	OriginJurisdiction      string
	DestinationJurisdiction string
	AssetType               string
	Amount                  float64
	PartyType               string
}

// ComplianceAssessment is the risk assessment for one transaction.
type ComplianceAssessment struct {
	OverallRisk                string   `json:"overall_risk"`
	RiskFactors                []string `json:"risk_factors"`
	RequiredChecks             []string `json:"required_checks"`
	JurisdictionalRequirements []string `json:"jurisdictional_requirements"`
	Recommendations            []string `json:"recommendations"`
}

// AssessTransactionCompliance flags the compliance risks of a proposed
// transaction. Risk only escalates, never downgrades.
func (a *RegulatoryCompliance) AssessTransactionCompliance(tx Transaction) ComplianceAssessment {
	riskLevel := "low"
	var riskFactors, requiredChecks []string

	highRisk := map[string]bool{"sanctioned": true, "high-risk": true}
	if highRisk[tx.OriginJurisdiction] {
		riskLevel = "high"
		riskFactors = append(riskFactors,
			fmt.Sprintf("Origin jurisdiction (%s) is high-risk", tx.OriginJurisdiction))
	}
	if highRisk[tx.DestinationJurisdiction] {
		riskLevel = "high"
		riskFactors = append(riskFactors,
			fmt.Sprintf("Destination jurisdiction (%s) is high-risk", tx.DestinationJurisdiction))
	}

	if tx.OriginJurisdiction != tx.DestinationJurisdiction {
		requiredChecks = append(requiredChecks, "Cross-border transfer reporting")
		if riskLevel != "high" {
			riskLevel = "medium"
		}
		riskFactors = append(riskFactors, "Cross-border transaction requiring additional scrutiny")
	}

	asset := strings.ToLower(tx.AssetType)
	digital := asset == "cryptocurrency" || asset == "crypto" || asset == "digital asset" || asset == "token"
	if digital {
		if riskLevel != "high" {
			riskLevel = "medium"
		}
		riskFactors = append(riskFactors, "Digital asset transaction with enhanced compliance requirements")
		requiredChecks = append(requiredChecks,
			"Digital asset source of funds verification",
			"Blockchain analytics screening",
		)
	}

	thresholdReporting := (asset == "fiat" && tx.Amount >= 10000) || (digital && tx.Amount >= 3000)
	if thresholdReporting {
		requiredChecks = append(requiredChecks, "Large transaction reporting")
		if riskLevel == "low" {
			riskLevel = "medium"
		}
		riskFactors = append(riskFactors,
			fmt.Sprintf("Transaction amount (%g) exceeds reporting threshold", tx.Amount))
	}

	party := strings.ToLower(tx.PartyType)
	if party == "business" || party == "corporation" || party == "entity" {
		requiredChecks = append(requiredChecks,
			"Beneficial ownership verification",
			"Entity purpose and structure assessment",
		)
	}

	requiredChecks = append(requiredChecks, "AML/KYC verification", "Sanctions screening")

	var jurisdictional []string
	for _, code := range knowledgex.SortedKeys(a.kb.Jurisdictions) {
		if code != tx.OriginJurisdiction && code != tx.DestinationJurisdiction {
			continue
		}
		data := a.kb.Jurisdictions[code]
		jurisdictional = append(jurisdictional,
			fmt.Sprintf("%s: Verify compliance with %s requirements",
				data.Name, strings.Join(data.KeyRegulators, ", ")))
	}

	var recommendations []string
	switch riskLevel {
	case "high":
		recommendations = []string{
			"Conduct enhanced due diligence on all parties",
			"Consider filing suspicious activity report based on risk factors",
			"Obtain senior management approval before proceeding",
		}
	case "medium":
		recommendations = []string{
			"Verify source of funds with appropriate documentation",
			"Conduct standard due diligence on all parties",
		}
	default:
		recommendations = []string{
			"Process according to standard procedures",
			"Maintain appropriate transaction records",
		}
	}

	return ComplianceAssessment{
		OverallRisk:                riskLevel,
		RiskFactors:                riskFactors,
		RequiredChecks:             requiredChecks,
		JurisdictionalRequirements: jurisdictional,
		Recommendations:            recommendations,
	}
}

// ReportScope narrows a compliance report to a jurisdiction and activities.
type ReportScope struct {
	Jurisdiction       string
	BusinessActivities []string
	ProductTypes       []string
}

// ComplianceAction is one control a report asks to implement.
type ComplianceAction struct {
	Regulation  string `json:"regulation"`
	Requirement string `json:"requirement"`
	Priority    string `json:"priority"`
	Action      string `json:"action"`
}

// ComplianceReport is the generated report for one framework and scope.
type ComplianceReport struct {
	Framework             string             `json:"framework"`
	FrameworkName         string             `json:"framework_name"`
	Focus                 string             `json:"focus"`
	Scope                 ReportScope        `json:"scope"`
	ApplicableRegulations []string           `json:"applicable_regulations"`
	KeyControls           []string           `json:"key_controls"`
	ComplianceActions     []ComplianceAction `json:"compliance_actions"`
	Recommendations       []string           `json:"recommendations"`
}

// GenerateComplianceReport builds a report against one of the tracked
// compliance frameworks.
func (a *RegulatoryCompliance) GenerateComplianceReport(framework string, scope ReportScope) (ComplianceReport, error) {
	data, ok := a.kb.Frameworks[framework]
	if !ok {
		return ComplianceReport{}, fmt.Errorf("%w: framework %q not available (supported: %s)",
			contractx.ErrValidation, framework, strings.Join(knowledgex.SortedKeys(a.kb.Frameworks), ", "))
	}

	jurisdiction := scope.Jurisdiction
	if jurisdiction == "" {
		jurisdiction = "global"
	}
	scope.Jurisdiction = jurisdiction

	report := ComplianceReport{
		Framework:     framework,
		FrameworkName: data.Name,
		Focus:         data.Focus,
		Scope:         scope,
		KeyControls:   append([]string(nil), data.KeyControls...),
	}

	for _, rcode := range knowledgex.SortedKeys(a.kb.Regulations) {
		reg := a.kb.Regulations[rcode]
		if !containsString(reg.Jurisdictions, jurisdiction) && !containsString(reg.Jurisdictions, "global") {
			continue
		}
		report.ApplicableRegulations = append(report.ApplicableRegulations, reg.Name)
		for _, req := range reg.KeyRequirements {
			report.ComplianceActions = append(report.ComplianceActions, ComplianceAction{
				Regulation:  reg.Name,
				Requirement: req,
				Priority:    reg.CompliancePriority,
				Action:      fmt.Sprintf("Implement controls to ensure compliance with %s", req),
			})
		}
	}

	for _, control := range data.KeyControls {
		report.ComplianceActions = append(report.ComplianceActions, ComplianceAction{
			Regulation:  data.Name,
			Requirement: control,
			Priority:    "high",
			Action:      fmt.Sprintf("Implement %s controls according to %s standards", control, data.Name),
		})
	}

	report.Recommendations = []string{
		"Prioritize high-priority compliance actions for immediate implementation",
		fmt.Sprintf("Conduct regular audits against %s standards", data.Name),
		"Maintain documentation of all compliance controls and their effectiveness",
	}
	return report, nil
}
