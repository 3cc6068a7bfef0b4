// Add command registers a new element by hand.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier-tools/shelf/pkg/sqlite"
	"github.com/atelier-tools/shelf/pkg/types"
)

var (
	addName     string
	addType     string
	addDir      string
	addOwner    string
	addFolder   bool
	addMetadata string
)

var addCmd = &cobra.Command{
	Use:   "add IDENTIFIER",
	Short: "Register a new element",
	Long: `Add registers an element under the given identifier with a fresh
instance id.

Example:
  shelf add chars/hero/rig.ma --name rig --type mayaAscii
  shelf add chars/hero --folder`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "display name")
	addCmd.Flags().StringVar(&addType, "type", "", "data type")
	addCmd.Flags().StringVar(&addDir, "directory", "", "directory value")
	addCmd.Flags().StringVar(&addOwner, "owner", "", "owning user")
	addCmd.Flags().BoolVar(&addFolder, "folder", false, "mark as folder")
	addCmd.Flags().StringVar(&addMetadata, "metadata", "", "opaque metadata blob")
}

func runAdd(cmd *cobra.Command, args []string) error {
	es, err := elementStore()
	if err != nil {
		return err
	}

	attrs := types.ElementAttrs{Folder: &addFolder}
	if cmd.Flags().Changed("name") {
		attrs.Name = &addName
	}
	if cmd.Flags().Changed("type") {
		attrs.Type = &addType
	}
	if cmd.Flags().Changed("directory") {
		attrs.Directory = &addDir
	}
	if cmd.Flags().Changed("owner") {
		attrs.Owner = &addOwner
	}
	if cmd.Flags().Changed("metadata") {
		attrs.Metadata = &addMetadata
	}

	el, err := es.Create(args[0], sqlite.NewInstanceID(), attrs)
	if err != nil {
		return fmt.Errorf("create element: %w", err)
	}

	if flagJSON {
		return printJSON(el)
	}
	fmt.Printf("Created %s (%s)\n", el.Identifier, el.InstanceID)
	return nil
}
