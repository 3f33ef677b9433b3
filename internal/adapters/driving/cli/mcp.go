package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wppm-cli/internal/adapters/driving/mcp"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can evaluate
strain invariants, Warren plots and size distributions.

By default the server speaks JSON-RPC over stdio. Use --port to serve the
streamable HTTP transport instead.

Tools:
  laue_groups        Laue groups and their coefficients
  strain_invariant   quartic strain invariant at reflections
  warren_plot        Warren plots of a setup or session
  size_distribution  sampled size distribution

Examples:
  wppm mcp serve
  wppm mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func newMCPServer() (*mcp.Server, error) {
	return mcp.NewServer(&mcp.Ports{
		Strain:   strainService,
		Size:     sizeService,
		Session:  sessionService,
		Settings: settingsService,
		Laue:     laueRegistry,
	})
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := newMCPServer()
	if err != nil {
		return err
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		cmd.PrintErrf("MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}
	return server.Run(cmd.Context())
}
