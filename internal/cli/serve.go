package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprite-ai/autocommit/internal/analyze"
	"github.com/sprite-ai/autocommit/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server exposing the change analyzer. Callers supply
the version-control tool's diff and status output; the server never touches
a repository itself.

Endpoints:
  GET  /health       — Health check
  POST /api/analyze  — Full analysis of a diff + status listing
  POST /api/suggest  — Suggested commit message only`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("addr", "a", "127.0.0.1", "address to listen on")
	serveCmd.Flags().IntP("port", "p", 6143, "port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	port, _ := cmd.Flags().GetInt("port")

	analyzer := analyze.New(analyze.DefaultConfig())
	srv := api.New(fmt.Sprintf("%s:%d", addr, port), analyzer)
	return srv.ListenAndServe()
}
