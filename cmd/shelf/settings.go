package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage library settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the library settings document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ss, err := settingsStore()
		if err != nil {
			return err
		}
		doc, err := ss.Get()
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}
		fmt.Println(doc)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [JSON]",
	Short: "Replace the library settings document",
	Long: `Settings set replaces the whole settings document. The argument must
be a JSON object; pass "-" to read it from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ss, err := settingsStore()
		if err != nil {
			return err
		}
		doc := args[0]
		if doc == "-" {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			doc = string(raw)
		}
		if !json.Valid([]byte(doc)) {
			return fmt.Errorf("settings must be valid JSON")
		}
		if err := ss.Set(doc); err != nil {
			return fmt.Errorf("set settings: %w", err)
		}
		fmt.Println("Settings updated")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
