package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ppiankov/clearview/internal/pipeline"
	"github.com/ppiankov/clearview/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ClearView HTTP API",
	Long: `Serve starts the HTTP API that backs the ClearView frontend:

  POST /api/analyse  Analyze an article (text or URL)
  GET  /api/health   Readiness and key status
  GET  /             API identification

The server runs until interrupted and shuts down gracefully.

Example:
  clearview serve
  clearview serve --addr :9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	p := pipeline.NewPipeline(cfg)
	if !p.LLMReady() {
		fmt.Fprintln(os.Stderr, "WARNING: no LLM API key configured; /api/analyse will return 503")
	}
	if !p.FREDConfigured() {
		fmt.Fprintln(os.Stderr, "WARNING: FRED_API_KEY not set; US economic claims fall back to other sources")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(p, cfg)
	return srv.ListenAndServe(ctx)
}
