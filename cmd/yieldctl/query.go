package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	mem "yield-ai/internal/adapters/storage/memory"
	pg "yield-ai/internal/adapters/storage/postgres"
	"yield-ai/internal/domain/breeders"
	"yield-ai/internal/domain/breeds"
	"yield-ai/internal/domain/contact"

	"github.com/spf13/cobra"
)

// catalogRepo usa Postgres si hay DSN; si no, el catálogo embebido.
func catalogRepo(e *env) breeds.Repository {
	if e.deps.DB != nil {
		return pg.NewBreedsRepo(e.deps.DB)
	}
	return mem.NewBreedRepo(breeds.Seed())
}

func newBreedsCmd(flags *rootFlags) *cobra.Command {
	var q, animal string

	cmd := &cobra.Command{
		Use:   "breeds",
		Short: "Search the breed catalog with the same filter the API uses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer e.close()

			var index breeds.Index
			if e.deps.BreedIndex != nil {
				index = e.deps.BreedIndex
			}
			items, err := breeds.NewService(catalogRepo(e), index, e.log).Search(cmd.Context(), q, animal)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No breeds found")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tANIMAL\tORIGIN\tMILK YIELD")
			for _, b := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.Name, b.Animal, b.Origin, b.MilkYield)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&q, "q", "", "text to match against name or category")
	cmd.Flags().StringVar(&animal, "animal", breeds.AllAnimals, "all, cattle or buffalo")
	return cmd
}

func newBreedersCmd(flags *rootFlags) *cobra.Command {
	var location, specialty string

	cmd := &cobra.Command{
		Use:   "breeders",
		Short: "Search the breeder directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer e.close()

			var repo breeders.Repository = mem.NewBreederRepo(breeders.Seed())
			if e.deps.DB != nil {
				repo = pg.NewBreedersRepo(e.deps.DB)
			}
			items, err := breeders.NewService(repo).Search(cmd.Context(), location, specialty)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No breeders found")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tRATING\tSPECIALTIES")
			for _, b := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%s\n", b.ID, b.Name, b.Location, b.Rating, strings.Join(b.Specialties, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "city or state")
	cmd.Flags().StringVar(&specialty, "specialty", breeders.AllSpecialties, "all, cattle, buffalo, goat, sheep or horse")
	return cmd
}

func newContactsCmd(flags *rootFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "List the most recent contact form submissions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer e.close()

			if e.deps.DB == nil {
				return errNoDatabase
			}
			svc := contact.NewService(pg.NewContactRepo(e.deps.DB), nil, e.log, 0)
			items, err := svc.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RECEIVED\tNAME\tEMAIL\tSUBJECT")
			for _, s := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ReceivedAt.Format("2006-01-02 15:04"), s.Name, s.Email, s.Subject)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "how many submissions to show")
	return cmd
}
