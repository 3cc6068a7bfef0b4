// Update command changes descriptive fields of an element. Identifier
// and instance id stay fixed.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier-tools/shelf/pkg/types"
)

var (
	updateName     string
	updateType     string
	updateOwner    string
	updateMetadata string
)

var updateCmd = &cobra.Command{
	Use:   "update IDENTIFIER",
	Short: "Update element attributes",
	Long: `Update changes only the supplied attributes; everything else keeps
its current value.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "display name")
	updateCmd.Flags().StringVar(&updateType, "type", "", "data type")
	updateCmd.Flags().StringVar(&updateOwner, "owner", "", "owning user")
	updateCmd.Flags().StringVar(&updateMetadata, "metadata", "", "opaque metadata blob")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	es, err := elementStore()
	if err != nil {
		return err
	}

	var attrs types.ElementAttrs
	if cmd.Flags().Changed("name") {
		attrs.Name = &updateName
	}
	if cmd.Flags().Changed("type") {
		attrs.Type = &updateType
	}
	if cmd.Flags().Changed("owner") {
		attrs.Owner = &updateOwner
	}
	if cmd.Flags().Changed("metadata") {
		attrs.Metadata = &updateMetadata
	}

	if err := es.UpdateAttributes(args[0], attrs); err != nil {
		return fmt.Errorf("update element: %w", err)
	}
	fmt.Printf("Updated %s\n", args[0])
	return nil
}
