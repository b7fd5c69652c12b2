package orchestrator

import (
	"context"
	"fmt"
	"sync"

	contractx "github.com/finchain/fin/agent/contract"
)

type consultTarget struct {
	name  string
	agent contractx.Agent
}

type consultSlot struct {
	result  contractx.AgentResult
	failure contractx.AgentFailure
	ok      bool
	failed  bool
}

// consultAgents invokes every selected agent that is present in the registry.
// Selected-but-unregistered identifiers are skipped silently. Failures are
// isolated per agent: the slot is marked failed and synthesis continues with
// the remaining contributions. Slot indexing keeps result order equal to
// selection order even under parallel fan-out.
func (o *Orchestrator) consultAgents(ctx context.Context, in *queryState) (*queryState, error) {
	targets := make([]consultTarget, 0, len(in.Selected))
	for _, name := range in.Selected {
		agent, ok := o.lookupAgent(name)
		if !ok {
			o.logger.Debug().
				Str("request_id", in.RequestID).
				Str("agent", name).
				Msg("selected agent not registered, skipping")
			continue
		}
		targets = append(targets, consultTarget{name: name, agent: agent})
	}

	slots := make([]consultSlot, len(targets))
	if o.parallelism > 1 && len(targets) > 1 {
		o.consultParallel(ctx, in.Query, targets, slots)
	} else {
		for i, target := range targets {
			slots[i] = o.consultOne(ctx, in.Query, target)
		}
	}

	for i := range slots {
		switch {
		case slots[i].ok:
			in.Results = append(in.Results, slots[i].result)
		case slots[i].failed:
			in.Failures = append(in.Failures, slots[i].failure)
			o.logger.Warn().
				Str("request_id", in.RequestID).
				Str("agent", slots[i].failure.Agent).
				Str("reason", slots[i].failure.Reason).
				Msg("agent consult failed")
		}
	}
	return in, nil
}

func (o *Orchestrator) consultParallel(ctx context.Context, query string, targets []consultTarget, slots []consultSlot) {
	sem := make(chan struct{}, o.parallelism)
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target consultTarget) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			slots[i] = o.consultOne(ctx, query, target)
		}(i, target)
	}
	wg.Wait()
}

func (o *Orchestrator) consultOne(ctx context.Context, query string, target consultTarget) consultSlot {
	resp, err := invokeAgent(ctx, target.agent, query)
	if err != nil {
		return consultSlot{
			failed: true,
			failure: contractx.AgentFailure{
				Agent:  target.name,
				Reason: err.Error(),
			},
		}
	}
	return consultSlot{
		ok: true,
		result: contractx.AgentResult{
			Agent:    target.name,
			Response: resp,
		},
	}
}

// invokeAgent shields the pipeline from a panicking agent implementation.
func invokeAgent(ctx context.Context, agent contractx.Agent, query string) (resp contractx.AgentResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", contractx.ErrAgentFailure, r)
		}
	}()
	return agent.ProcessQuery(ctx, query)
}
