// Dep command group manages dependency edges between elements.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var depLabel string

var depCmd = &cobra.Command{
	Use:   "dep",
	Short: "Manage dependency edges",
}

var depAddCmd = &cobra.Command{
	Use:   "add SOURCE TARGET",
	Short: "Record that SOURCE requires TARGET",
	Long: `Dep add records a directed edge. Re-adding an existing edge replaces
its label.

Example:
  shelf dep add chars/hero/anim.ma chars/hero/rig.ma --label rig`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := relationStore()
		if err != nil {
			return err
		}
		if err := rs.AddDependency(args[0], args[1], depLabel); err != nil {
			return fmt.Errorf("add dependency: %w", err)
		}
		fmt.Printf("%s requires %s\n", args[0], args[1])
		return nil
	},
}

var depRmCmd = &cobra.Command{
	Use:   "rm SOURCE TARGET",
	Short: "Remove the edge between SOURCE and TARGET",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := relationStore()
		if err != nil {
			return err
		}
		if err := rs.RemoveDependency(args[0], args[1]); err != nil {
			return fmt.Errorf("remove dependency: %w", err)
		}
		fmt.Printf("Removed %s -> %s\n", args[0], args[1])
		return nil
	},
}

var depListCmd = &cobra.Command{
	Use:   "list IDENTIFIER",
	Short: "List the direct dependencies of an element",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := relationStore()
		if err != nil {
			return err
		}
		deps, err := rs.DirectDependencies(args[0])
		if err != nil {
			return fmt.Errorf("list dependencies: %w", err)
		}
		if flagJSON {
			return printJSON(deps)
		}
		for _, d := range deps {
			fmt.Printf("%s [%s]\n", d.Identifier, d.Label)
		}
		return nil
	},
}

var depOfCmd = &cobra.Command{
	Use:   "of IDENTIFIER",
	Short: "List the elements that require this one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := relationStore()
		if err != nil {
			return err
		}
		deps, err := rs.Dependents(args[0])
		if err != nil {
			return fmt.Errorf("list dependents: %w", err)
		}
		if flagJSON {
			return printJSON(deps)
		}
		for _, d := range deps {
			fmt.Printf("%s [%s]\n", d.Identifier, d.Label)
		}
		return nil
	},
}

func init() {
	depAddCmd.Flags().StringVar(&depLabel, "label", "", "edge label")
	depCmd.AddCommand(depAddCmd)
	depCmd.AddCommand(depRmCmd)
	depCmd.AddCommand(depListCmd)
	depCmd.AddCommand(depOfCmd)
}
