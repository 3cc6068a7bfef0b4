// Shared helpers for shelf subcommands: store access and output
// formatting.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/atelier-tools/shelf/pkg/types"
)

func elementStore() (types.ElementStore, error) {
	es, err := library.Elements()
	if err != nil {
		return nil, fmt.Errorf("element store: %w", err)
	}
	return es, nil
}

func relationStore() (types.RelationStore, error) {
	rs, err := library.Relations()
	if err != nil {
		return nil, fmt.Errorf("relation store: %w", err)
	}
	return rs, nil
}

func settingsStore() (types.SettingsStore, error) {
	ss, err := library.Settings()
	if err != nil {
		return nil, fmt.Errorf("settings store: %w", err)
	}
	return ss, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printElement writes one element in text form.
func printElement(el *types.Element) {
	fmt.Printf("%s\n", el.Identifier)
	fmt.Printf("  instance id: %s\n", el.InstanceID)
	if el.Name != "" {
		fmt.Printf("  name:        %s\n", el.Name)
	}
	if el.Directory != "" {
		fmt.Printf("  directory:   %s\n", el.Directory)
	}
	if el.Type != "" {
		fmt.Printf("  type:        %s\n", el.Type)
	}
	if el.Owner != "" {
		fmt.Printf("  owner:       %s\n", el.Owner)
	}
	if !el.ModifiedAt.IsZero() {
		fmt.Printf("  modified:    %s\n", el.ModifiedAt)
	}
}
