package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeprep-ai/codeprep/internal/agent"
	"github.com/codeprep-ai/codeprep/internal/app"
	"github.com/codeprep-ai/codeprep/internal/kb"
	"github.com/codeprep-ai/codeprep/internal/planner"
	"github.com/codeprep-ai/codeprep/internal/progress"
	"github.com/codeprep-ai/codeprep/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the interactive terminal app",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	eventRepo, err := st.Events()
	if err != nil {
		return fmt.Errorf("init event repo: %w", err)
	}

	gateway, ids, err := agent.NewGatewayFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Agent gateway not configured:", err)
		fmt.Fprintln(os.Stderr, "Set CODEPREP_AGENT_ENDPOINT or an LLM API key (e.g. CODEPREP_ANTHROPIC_API_KEY).")
		return err
	}

	kv := st.Blobs()

	return app.Run(app.Options{
		KV:       kv,
		Gateway:  gateway,
		AgentIDs: ids,
		Planner:  planner.NewService(kv, gateway, ids.StudyPlan),
		Progress: progress.NewService(kv, gateway, ids.Progress),
		KB:       kb.NewClientFromEnv(),
	})
}
