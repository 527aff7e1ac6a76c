package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsajid-cs/redis-populate/internal/core/ports/driving"
)

var (
	pushInput    string
	pushChunk    int
	pushNoStream bool
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Stream institutions and companies into the store",
	Long: `Replaces the institutions list and rebuilds the deduplicated companies
list from a JSON document, batching writes into pipelined chunks.
The document is streamed so very large files never need to fit in
memory; --no-stream forces a full parse instead.`,
	RunE: runPush,
}

func init() {
	pushCmd.Flags().StringVarP(&pushInput, "input", "i", "institutes.json", "input JSON file")
	pushCmd.Flags().IntVar(&pushChunk, "chunk", 1000, "batch size for pipelined writes")
	pushCmd.Flags().BoolVar(&pushNoStream, "no-stream", false, "disable streaming and parse the whole file")
	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, _ []string) error {
	input := inputFor(cmd, pushInput)
	if err := requireFile(input); err != nil {
		return err
	}

	ctx := context.Background()
	store, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	buffered := pushNoStream || (!cmd.Flags().Changed("no-stream") && deps.NoStream)
	pusher := deps.NewPusher(store, buffered)

	cmd.Printf("Pushing %s into the store...\n", input)
	report, err := pusher.Push(ctx, input, driving.PushOptions{Chunk: chunkFor(cmd, pushChunk)})
	if err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	k := destKeys()
	cmd.Printf("Inserted %d institutions into list %q\n", report.Institutions, k.Institutions)
	cmd.Printf("Inserted %d unique companies into list %q (newly added from file: %d, from institutions: %d)\n",
		report.CompaniesTotal, k.Companies, report.CompaniesFromFile, report.CompaniesFromInstitutions)
	return nil
}
