package cmd

import (
	"fmt"

	"github.com/mj1618/forms-cli/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing every keyword as a tool",
	Long: `Start a Model Context Protocol (MCP) server that exposes every keyword, plus
"read" and "do", as tools. AI agents can call tools directly without shell
overhead. The form stays open for the life of the server; with --write it is
saved back to --snapshot after each mutating call.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  forms-cli serve --snapshot orders.yaml
  forms-cli serve --snapshot orders.yaml --write --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	cfg := server.Config{
		Transport: transport,
		Port:      port,
	}
	if write, _ := cmd.Flags().GetBool("write"); write {
		cfg.SavePath, _ = cmd.Flags().GetString("snapshot")
	}

	session, err := openSession(cmd)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return server.New(session, cfg).Serve(cfg)
}
