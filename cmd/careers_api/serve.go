package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/biocom/careers-api/internal/config"
	"github.com/biocom/careers-api/internal/server"
	"github.com/biocom/careers-api/internal/store"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the public job listing, application, and authenticated admin endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	st, err := buildStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if cfg.SeedFile != "" {
		jobs, err := store.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("failed to load seed file: %w", err)
		}
		if err := st.Seed(cmd.Context(), jobs); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
	}

	if cfg.LatencyUnit > 0 {
		st = store.WithLatency(st, cfg.LatencyUnit)
		log.Printf("Simulated latency enabled: %v per unit", cfg.LatencyUnit)
	}

	srv, err := server.New(server.Config{
		Port:  cfg.Port,
		Store: st,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// buildStore selects the storage backing: Postgres when DATABASE_URL is
// set, SQLite when CAREERS_DB_PATH is set, in-memory otherwise.
func buildStore(ctx context.Context, cfg *config.ServerConfig) (store.Store, error) {
	switch {
	case cfg.DatabaseURL != "":
		st, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		log.Println("Using Postgres store")
		return st, nil
	case cfg.SQLitePath != "":
		st, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		log.Printf("Using SQLite store at %s", cfg.SQLitePath)
		return st, nil
	default:
		log.Println("Using in-memory store")
		return store.NewMemoryStore(), nil
	}
}
