// Package knowledge holds the static domain datasets the specialist agents
// answer from. Data is embedded at compile time; loading is a pure decode.
package knowledge

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

var (
	//go:embed data/defi_protocols.json
	defiRaw []byte

	//go:embed data/fintech.json
	fintechRaw []byte

	//go:embed data/regulatory.json
	regulatoryRaw []byte
)

// DeFiProtocol carries the tracked metrics for one protocol.
type DeFiProtocol struct {
	TVL              float64 `json:"tvl"`
	DailyVolume      float64 `json:"daily_volume"`
	TotalBorrowed    float64 `json:"total_borrowed"`
	UtilizationRate  float64 `json:"utilization_rate"`
	SwapFee          float64 `json:"swap_fee"`
	LPShare          float64 `json:"lp_share"`
	AdminFee         float64 `json:"admin_fee"`
	SustainableScore float64 `json:"sustainable_score"`
}

// FintechTrend describes one tracked fintech sector.
type FintechTrend struct {
	GrowthRate float64  `json:"growth_rate"`
	MarketSize float64  `json:"market_size"`
	KeyPlayers []string `json:"key_players"`
	Maturity   string   `json:"maturity"`
}

// RegulatoryUpdate describes one tracked regulatory development.
type RegulatoryUpdate struct {
	Region  string `json:"region"`
	Status  string `json:"status"`
	Impact  string `json:"impact"`
	Summary string `json:"summary"`
}

// PaymentSystem describes one payment rail and its adoption.
type PaymentSystem struct {
	AdoptionRate          float64  `json:"adoption_rate"`
	Regions               []string `json:"regions"`
	KeyTechnologies       []string `json:"key_technologies"`
	IntegrationComplexity string   `json:"integration_complexity"`
}

// FinancialAPI describes one financial API category.
type FinancialAPI struct {
	Standards         []string `json:"standards"`
	DataAccess        []string `json:"data_access"`
	Security          string   `json:"security"`
	MarketPenetration string   `json:"market_penetration"`
}

// Jurisdiction describes one regulatory jurisdiction.
type Jurisdiction struct {
	Name                 string   `json:"name"`
	KeyRegulators        []string `json:"key_regulators"`
	RegulatoryApproach   string   `json:"regulatory_approach"`
	CryptoStance         string   `json:"crypto_stance"`
	ComplianceComplexity string   `json:"compliance_complexity"`
}

// Regulation describes one regulation and where it applies.
type Regulation struct {
	Name               string   `json:"name"`
	Jurisdictions      []string `json:"jurisdictions"`
	KeyRequirements    []string `json:"key_requirements"`
	Penalties          string   `json:"penalties"`
	CompliancePriority string   `json:"compliance_priority"`
}

// Framework describes one compliance framework.
type Framework struct {
	Name        string   `json:"name"`
	Focus       string   `json:"focus"`
	KeyControls []string `json:"key_controls"`
	Relevance   string   `json:"relevance"`
}

type fintechPayload struct {
	Trends            map[string]FintechTrend     `json:"trends"`
	RegulatoryUpdates map[string]RegulatoryUpdate `json:"regulatory_updates"`
	PaymentSystems    map[string]PaymentSystem    `json:"payment_systems"`
	FinancialAPIs     map[string]FinancialAPI     `json:"financial_apis"`
}

type regulatoryPayload struct {
	Jurisdictions map[string]Jurisdiction `json:"jurisdictions"`
	Regulations   map[string]Regulation   `json:"regulations"`
	Frameworks    map[string]Framework    `json:"frameworks"`
}

// Set is the full decoded knowledge base.
type Set struct {
	DeFiProtocols     map[string]DeFiProtocol
	FintechTrends     map[string]FintechTrend
	RegulatoryUpdates map[string]RegulatoryUpdate
	PaymentSystems    map[string]PaymentSystem
	FinancialAPIs     map[string]FinancialAPI
	Jurisdictions     map[string]Jurisdiction
	Regulations       map[string]Regulation
	Frameworks        map[string]Framework
}

// Load decodes every embedded dataset.
func Load() (Set, error) {
	var set Set

	if err := json.Unmarshal(defiRaw, &set.DeFiProtocols); err != nil {
		return Set{}, fmt.Errorf("decode defi protocols: %w", err)
	}

	var fintech fintechPayload
	if err := json.Unmarshal(fintechRaw, &fintech); err != nil {
		return Set{}, fmt.Errorf("decode fintech data: %w", err)
	}
	set.FintechTrends = fintech.Trends
	set.RegulatoryUpdates = fintech.RegulatoryUpdates
	set.PaymentSystems = fintech.PaymentSystems
	set.FinancialAPIs = fintech.FinancialAPIs

	var regulatory regulatoryPayload
	if err := json.Unmarshal(regulatoryRaw, &regulatory); err != nil {
		return Set{}, fmt.Errorf("decode regulatory data: %w", err)
	}
	set.Jurisdictions = regulatory.Jurisdictions
	set.Regulations = regulatory.Regulations
	set.Frameworks = regulatory.Frameworks

	return set, nil
}

// MustLoad panics on a malformed embedded dataset. Safe for package-level
// initialization; the data is compiled in.
func MustLoad() Set {
	set, err := Load()
	if err != nil {
		panic(err)
	}
	return set
}

// SortedKeys returns map keys in lexical order, for deterministic iteration
// over the datasets.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
