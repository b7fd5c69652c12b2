// Package cmd wires the FinChain intelligence network into a CLI.
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	specialistx "github.com/finchain/fin/agent/agents/specialist"
	orchestratorx "github.com/finchain/fin/agent/orchestrator"
	configx "github.com/finchain/fin/pkg/config"
	_ "github.com/finchain/fin/pkg/logger/autoload"
)

// AppConfig is loaded from FIN_* environment variables.
type AppConfig struct {
	Parallelism        int           `split_words:"true" default:"1"`
	CacheTTL           time.Duration `envconfig:"CACHE_TTL" default:"0"`
	BreakerEnabled     bool          `split_words:"true" default:"false"`
	BreakerMaxFailures uint32        `split_words:"true" default:"3"`
	BreakerTimeout     time.Duration `split_words:"true" default:"30s"`
}

var (
	queryFlag       string
	interactiveFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "fin",
	Short: "FinChain Intelligence Network",
	Long:  "Multi-agent system for financial and blockchain intelligence queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}

		printBanner(orch)

		if queryFlag != "" {
			processQuery(cmd, orch, queryFlag)
		}
		if interactiveFlag || queryFlag == "" {
			runInteractive(cmd, orch)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&queryFlag, "query", "", "query to process")
	rootCmd.Flags().BoolVar(&interactiveFlag, "interactive", false, "run in interactive mode")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildOrchestrator() (*orchestratorx.Orchestrator, error) {
	appCfg, err := configx.New[AppConfig]("FIN")
	if err != nil {
		return nil, fmt.Errorf("load config: %v", err)
	}

	orch, err := orchestratorx.New(nil, orchestratorx.Config{
		Parallelism: appCfg.Parallelism,
		CacheTTL:    appCfg.CacheTTL,
		Breaker: orchestratorx.BreakerConfig{
			Enabled:     appCfg.BreakerEnabled,
			MaxFailures: appCfg.BreakerMaxFailures,
			Timeout:     appCfg.BreakerTimeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build orchestrator: %v", err)
	}

	for _, agent := range specialistx.NewDefaultAgents() {
		orch.RegisterAgent(agent)
	}
	return orch, nil
}

func printBanner(orch *orchestratorx.Orchestrator) {
	fmt.Println()
	fmt.Println("FinChain Intelligence Network (FIN)")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Registered Agents: %s\n", strings.Join(orch.RegisteredAgents(), ", "))
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println()
}

func processQuery(cmd *cobra.Command, orch *orchestratorx.Orchestrator, query string) {
	resp, err := orch.ProcessQuery(cmd.Context(), query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("query failed")
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println(formatResponse(resp))
	fmt.Println(strings.Repeat("=", 80) + "\n")
}

func runInteractive(cmd *cobra.Command, orch *orchestratorx.Orchestrator) {
	fmt.Println("Interactive Mode: Enter queries or 'exit' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter your query: ")
		if !scanner.Scan() {
			return
		}
		query := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(query) {
		case "exit", "quit", "q":
			return
		case "":
			continue
		}
		processQuery(cmd, orch, query)
	}
}
