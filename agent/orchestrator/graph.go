package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/finchain/fin/agent/contract"
	synthx "github.com/finchain/fin/agent/synthesizer"
)

type graphInput struct {
	RequestID string
	Query     string
}

// queryState flows through the pipeline from routing to synthesis.
type queryState struct {
	RequestID string
	Query     string
	Selected  []string
	Results   []contractx.AgentResult
	Failures  []contractx.AgentFailure
}

func (o *Orchestrator) compileProcessQueryGraph(
	ctx context.Context,
) (compose.Runnable[graphInput, contractx.SynthesizedResponse], error) {
	graph := compose.NewGraph[graphInput, contractx.SynthesizedResponse]()

	if err := graph.AddLambdaNode("prepare_query",
		compose.InvokableLambda(func(ctx context.Context, in graphInput) (*queryState, error) {
			return &queryState{
				RequestID: in.RequestID,
				Query:     strings.TrimSpace(in.Query),
			}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node prepare_query: %w", err)
	}

	if err := graph.AddLambdaNode("select_agents",
		compose.InvokableLambda(func(ctx context.Context, in *queryState) (*queryState, error) {
			in.Selected = o.classifier.Select(in.Query, o.RegisteredAgents())
			o.logger.Debug().
				Str("request_id", in.RequestID).
				Strs("selected", in.Selected).
				Msg("selected agents")
			return in, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node select_agents: %w", err)
	}

	if err := graph.AddLambdaNode("consult_agents",
		compose.InvokableLambda(func(ctx context.Context, in *queryState) (*queryState, error) {
			return o.consultAgents(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node consult_agents: %w", err)
	}

	if err := graph.AddLambdaNode("synthesize_response",
		compose.InvokableLambda(func(ctx context.Context, in *queryState) (contractx.SynthesizedResponse, error) {
			resp := synthx.Merge(in.Query, in.Results)
			resp.RequestID = in.RequestID
			resp.Diagnostics = in.Failures
			return resp, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node synthesize_response: %w", err)
	}

	edges := [][2]string{
		{compose.START, "prepare_query"},
		{"prepare_query", "select_agents"},
		{"select_agents", "consult_agents"},
		{"consult_agents", "synthesize_response"},
		{"synthesize_response", compose.END},
	}
	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("orchestrator.process_query"))
	if err != nil {
		return nil, fmt.Errorf("compile orchestrator graph: %w", err)
	}
	return runner, nil
}
