package knowledge

import (
	"reflect"
	"testing"
)

func TestLoadDatasets(t *testing.T) {
	t.Parallel()

	set, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(set.DeFiProtocols) != 3 {
		t.Fatalf("DeFiProtocols = %d entries, want 3", len(set.DeFiProtocols))
	}
	aave, ok := set.DeFiProtocols["aave"]
	if !ok {
		t.Fatalf("missing aave protocol")
	}
	if aave.TVL != 5_600_000_000 || aave.TotalBorrowed != 2_100_000_000 {
		t.Fatalf("unexpected aave metrics: %+v", aave)
	}

	if len(set.FintechTrends) != 3 || len(set.PaymentSystems) != 3 || len(set.FinancialAPIs) != 3 {
		t.Fatalf("unexpected fintech dataset sizes: %d/%d/%d",
			len(set.FintechTrends), len(set.PaymentSystems), len(set.FinancialAPIs))
	}
	bnpl := set.FintechTrends["buy_now_pay_later"]
	if bnpl.Maturity != "maturing" || len(bnpl.KeyPlayers) != 3 {
		t.Fatalf("unexpected bnpl trend: %+v", bnpl)
	}

	if len(set.Jurisdictions) != 5 {
		t.Fatalf("Jurisdictions = %d entries, want 5", len(set.Jurisdictions))
	}
	if len(set.Regulations) != 10 {
		t.Fatalf("Regulations = %d entries, want 10", len(set.Regulations))
	}
	if len(set.Frameworks) != 4 {
		t.Fatalf("Frameworks = %d entries, want 4", len(set.Frameworks))
	}
	if set.Jurisdictions["sg"].Name != "Singapore" {
		t.Fatalf("unexpected sg jurisdiction: %+v", set.Jurisdictions["sg"])
	}
}

func TestSortedKeys(t *testing.T) {
	t.Parallel()

	m := map[string]int{"charlie": 1, "alpha": 2, "bravo": 3}
	want := []string{"alpha", "bravo", "charlie"}
	if got := SortedKeys(m); !reflect.DeepEqual(got, want) {
		t.Fatalf("SortedKeys() = %v, want %v", got, want)
	}
}
