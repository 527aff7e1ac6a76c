package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count <file>",
	Short: "Count top-level JSON objects in a file",
	Long: `Prints the number of top-level JSON objects in a file: the element
count for an array, 1 for an object, 0 for anything else. Only the
number is written to standard output.`,
	Args: cobra.ExactArgs(1),
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := requireFile(path); err != nil {
		return err
	}
	if deps.Counter == nil {
		return errors.New("counter not configured")
	}

	count, err := deps.Counter.Count(path)
	if err != nil {
		// Diagnostic tool: report the failure but still print the count.
		fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
	}
	cmd.Printf("%d\n", count)
	return nil
}
