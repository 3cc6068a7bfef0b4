// List command enumerates elements with optional filters.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier-tools/shelf/pkg/types"
)

var (
	listDir     string
	listType    string
	listFolders bool
	listLimit   int
	listOffset  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List elements",
	Long: `List enumerates indexed elements, optionally filtered by directory,
type, or the folder flag.

Example:
  shelf list --directory chars/hero
  shelf list --type mayaAscii --limit 20`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listDir, "directory", "", "filter by directory")
	listCmd.Flags().StringVar(&listType, "type", "", "filter by type")
	listCmd.Flags().BoolVar(&listFolders, "folders", false, "folders only")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum results")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "skip results")
}

func runList(cmd *cobra.Command, args []string) error {
	es, err := elementStore()
	if err != nil {
		return err
	}

	filter := types.ElementFilter{
		Directory: listDir,
		Type:      listType,
		Limit:     listLimit,
		Offset:    listOffset,
	}
	if listFolders {
		t := true
		filter.Folder = &t
	}

	elements, err := es.List(filter)
	if err != nil {
		return fmt.Errorf("list elements: %w", err)
	}

	if flagJSON {
		return printJSON(elements)
	}
	for _, el := range elements {
		fmt.Println(el.Identifier)
	}
	return nil
}
