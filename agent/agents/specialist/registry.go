package specialist

import (
	contractx "github.com/finchain/fin/agent/contract"
	knowledgex "github.com/finchain/fin/agent/knowledge"
)

// NewDefaultAgents builds the full specialist roster over one shared
// knowledge base. Registration order is the routing tiebreak order.
func NewDefaultAgents() []contractx.Agent {
	kb := knowledgex.MustLoad()
	return []contractx.Agent{
		NewBlockchainAnalyst(),
		NewFinTechNavigator(kb),
		NewMLInvestmentStrategist(),
		NewCryptoEconomics(kb),
		NewRegulatoryCompliance(kb),
	}
}
