package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	populateInput string
	populateChunk int
)

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Rebuild every destination list from a data file",
	Long: `Reloads the degrees, institutions and roles lists from a JSON document,
then rebuilds the companies list with institutions merged in after the
document's own companies, duplicates removed in first-occurrence order.
The whole document is parsed in memory.`,
	RunE: runPopulate,
}

func init() {
	populateCmd.Flags().StringVarP(&populateInput, "input", "i", "data.json", "input JSON file")
	populateCmd.Flags().IntVar(&populateChunk, "chunk", 1000, "batch size for pipelined writes")
	rootCmd.AddCommand(populateCmd)
}

func runPopulate(cmd *cobra.Command, _ []string) error {
	input := inputFor(cmd, populateInput)
	if err := requireFile(input); err != nil {
		return err
	}

	ctx := context.Background()
	store, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	populator := deps.NewPopulator(store)

	cmd.Printf("Populating from %s...\n", input)
	report, err := populator.PopulateAll(ctx, input, chunkFor(cmd, populateChunk))
	if err != nil {
		return fmt.Errorf("populate failed: %w", err)
	}

	cmd.Printf("Inserted %d degrees and %d institutions\n", report.Degrees, report.Institutions)
	cmd.Printf("Inserted %d roles and %d unique companies (from file: %d, from institutions: %d)\n",
		report.Roles, report.CompaniesTotal, report.CompaniesFromFile, report.CompaniesFromInstitutions)
	return nil
}
