package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	specialistx "github.com/finchain/fin/agent/agents/specialist"
	contractx "github.com/finchain/fin/agent/contract"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List registered agents and their capabilities",
	Run: func(cmd *cobra.Command, args []string) {
		for _, agent := range specialistx.NewDefaultAgents() {
			fmt.Printf("%s\n", agent.Name())
			if d, ok := agent.(interface{ Description() string }); ok {
				fmt.Printf("  %s\n", d.Description())
			}
			for _, capability := range agent.Capabilities() {
				fmt.Printf("  - %s\n", capability)
			}
			fmt.Println()
		}
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Report orchestrator and agent health",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}

		report := orch.HealthCheck()
		fmt.Printf("Orchestrator: %s (%d agents)\n", report.Orchestrator.Status, report.Orchestrator.AgentCount)
		for _, name := range orch.RegisteredAgents() {
			agent := report.Agents[name]
			marker := "ok"
			if agent.Status != contractx.StatusHealthy {
				marker = agent.Status
			}
			fmt.Printf("  %-30s %s (%s)\n", name, marker, agent.Version)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(agentsCmd, healthCmd)
}
