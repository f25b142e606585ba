package main

import (
	"errors"
	"fmt"

	pg "yield-ai/internal/adapters/storage/postgres"
	"yield-ai/internal/domain/breeders"
	"yield-ai/internal/domain/breeds"

	"github.com/spf13/cobra"
)

func newMigrateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the Postgres schema (idempotent)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer e.close()

			if e.deps.DB == nil {
				return errNoDatabase
			}
			if err := pg.Migrate(cmd.Context(), e.deps.DB); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func newSeedCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in breed catalog and breeder directory into Postgres",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer e.close()

			if e.deps.DB == nil {
				return errNoDatabase
			}

			catalog := breeds.Seed()
			if err := pg.NewBreedsRepo(e.deps.DB).Upsert(cmd.Context(), catalog); err != nil {
				return fmt.Errorf("seed breeds: %w", err)
			}
			directory := breeders.Seed()
			if err := pg.NewBreedersRepo(e.deps.DB).Upsert(cmd.Context(), directory); err != nil {
				return fmt.Errorf("seed breeders: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d breeds and %d breeders\n", len(catalog), len(directory))
			return nil
		},
	}
}

func newReindexCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the Elasticsearch breed index from the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer e.close()

			if e.deps.BreedIndex == nil {
				return errors.New("elasticsearch.addresses is not configured or the index is unusable (see logs)")
			}

			repo := catalogRepo(e)
			all, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}
			if err := e.deps.BreedIndex.Reindex(cmd.Context(), all); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d breeds\n", len(all))
			return nil
		},
	}
}
