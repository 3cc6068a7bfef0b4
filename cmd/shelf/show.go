// Show command prints one element with its relations.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier-tools/shelf/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show IDENTIFIER",
	Short: "Show an element and its relations",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	identifier := args[0]
	es, err := elementStore()
	if err != nil {
		return err
	}
	rs, err := relationStore()
	if err != nil {
		return err
	}

	el, err := es.GetByIdentifier(identifier)
	if err != nil {
		return fmt.Errorf("get element: %w", err)
	}
	deps, err := rs.DirectDependencies(identifier)
	if err != nil {
		return fmt.Errorf("list dependencies: %w", err)
	}
	tags, err := rs.Tags(identifier)
	if err != nil {
		return fmt.Errorf("list tags: %w", err)
	}
	version, err := rs.LatestVersion(identifier)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return fmt.Errorf("get version: %w", err)
	}

	if flagJSON {
		return printJSON(struct {
			Element      *types.Element     `json:"element"`
			Dependencies []types.Dependency `json:"dependencies"`
			Tags         []string           `json:"tags"`
			Version      *types.Version     `json:"version,omitempty"`
		}{el, deps, tags, version})
	}

	printElement(el)
	if len(tags) > 0 {
		fmt.Printf("  tags:        %v\n", tags)
	}
	if version != nil {
		fmt.Printf("  version:     %s (%s)\n", version.Label, version.DisplayName)
	}
	for _, d := range deps {
		fmt.Printf("  requires:    %s [%s]\n", d.Identifier, d.Label)
	}
	return nil
}
