// Delete command removes an element and everything referencing it.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete IDENTIFIER",
	Short: "Delete an element and its relations",
	Long: `Delete removes the element together with its dependency edges (both
directions), tags, thumbnail, metadata, and version slot, as one atomic
operation.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	es, err := elementStore()
	if err != nil {
		return err
	}
	if err := es.Delete(args[0]); err != nil {
		return fmt.Errorf("delete element: %w", err)
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}
