package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/biocom/careers-api/internal/config"
	"github.com/biocom/careers-api/internal/store"
)

var (
	seedFile string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load job postings from a seed file into the configured store",
	Long:  `Validate a JSON seed file against the seed schema and load its job postings into the configured store. Seeding is skipped if the store already contains postings.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "seed/jobs.json", "Path to the seed JSON file")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	jobs, err := store.LoadSeedFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	st, err := buildStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	if err := st.Seed(cmd.Context(), jobs); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	log.Printf("Seeded %d job postings from %s", len(jobs), seedFile)
	return nil
}
