package orchestrator

import (
	"testing"
	"time"

	contractx "github.com/finchain/fin/agent/contract"
)

func TestResponseCacheNormalizesKeys(t *testing.T) {
	t.Parallel()

	c := newResponseCache(time.Minute)
	c.put("  What is DeFi?  ", contractx.SynthesizedResponse{RequestID: "r1"})

	got, ok := c.get("what is defi?")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got.RequestID != "r1" {
		t.Fatalf("RequestID = %q, want r1", got.RequestID)
	}
}

func TestResponseCacheMiss(t *testing.T) {
	t.Parallel()

	c := newResponseCache(time.Minute)
	if _, ok := c.get("never stored"); ok {
		t.Fatalf("unexpected cache hit")
	}
}

func TestResponseCacheExpiry(t *testing.T) {
	t.Parallel()

	c := newResponseCache(10 * time.Millisecond)
	c.put("q", contractx.SynthesizedResponse{RequestID: "r1"})

	time.Sleep(30 * time.Millisecond)
	if _, ok := c.get("q"); ok {
		t.Fatalf("expected entry to expire")
	}
}
