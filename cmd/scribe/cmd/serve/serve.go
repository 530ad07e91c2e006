package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"groq-scribe/internal/api/server"
	"groq-scribe/internal/config"
	"groq-scribe/internal/transcriber/groq"
)

var (
	flagPort string
	flagHost string
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the transcription web server",
	Long: `Starts the HTTP server hosting the web UI and the
POST /api/transcribe relay endpoint. Requires GROQ_API_KEY in the
environment or a .env file.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&flagPort, "port", "p", "", "port to listen on (overrides SCRIBE_PORT)")
	Cmd.Flags().StringVar(&flagHost, "host", "", "host to bind (overrides SCRIBE_HOST)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if flagPort != "" {
		cfg.Port = flagPort
	}
	if flagHost != "" {
		cfg.Host = flagHost
	}

	// Fail fast: without a credential every transcription would come back
	// as a silent failure.
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	logger := newLogger(cfg.Environment)

	client := groq.NewClient(cfg.GroqAPIKey,
		groq.WithBaseURL(cfg.GroqBaseURL),
		groq.WithModel(cfg.Model),
	)

	srv := server.NewServer(cfg, client, logger)
	errCh := srv.Start()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(environment string) *slog.Logger {
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
