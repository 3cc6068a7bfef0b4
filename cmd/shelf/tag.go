package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage element tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add IDENTIFIER TAG",
	Short: "Attach a tag to an element",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := relationStore()
		if err != nil {
			return err
		}
		if err := rs.AddTag(args[0], args[1]); err != nil {
			return fmt.Errorf("add tag: %w", err)
		}
		fmt.Printf("Tagged %s with %q\n", args[0], args[1])
		return nil
	},
}

var tagRmCmd = &cobra.Command{
	Use:   "rm IDENTIFIER TAG",
	Short: "Detach a tag from an element",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := relationStore()
		if err != nil {
			return err
		}
		if err := rs.RemoveTag(args[0], args[1]); err != nil {
			return fmt.Errorf("remove tag: %w", err)
		}
		fmt.Printf("Untagged %s from %q\n", args[0], args[1])
		return nil
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list IDENTIFIER",
	Short: "List an element's tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := relationStore()
		if err != nil {
			return err
		}
		tags, err := rs.Tags(args[0])
		if err != nil {
			return fmt.Errorf("list tags: %w", err)
		}
		if flagJSON {
			return printJSON(tags)
		}
		for _, t := range tags {
			fmt.Println(t)
		}
		return nil
	},
}

func init() {
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRmCmd)
	tagCmd.AddCommand(tagListCmd)
}
