package cmd

import (
	"github.com/spf13/cobra"
	"github.com/texttuner/texttuner/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Texttuner MCP server",
	Long:  `Launch an MCP server that allows AI agents to analyze and adapt Russian text via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean: it carries the protocol stream in MCP mode.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		defer closeHistoryStore()
		return mcp.StartMCPServer(rootCtx, cfg, historyStore)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
