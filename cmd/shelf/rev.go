// Rev command group manages the version slot of elements. Named "rev"
// so the plain "version" command can keep printing the CLI version.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	revLabel   string
	revName    string
	revComment string
	revAuthor  string
)

var revCmd = &cobra.Command{
	Use:   "rev",
	Short: "Manage element versions",
}

var revSetCmd = &cobra.Command{
	Use:   "set IDENTIFIER",
	Short: "Set the element's current version",
	Long: `Rev set fills the element's version slot. The display name is a
global dedup key: if any element already holds a version with the same
display name the call leaves the existing record untouched.

Example:
  shelf rev set chars/hero/rig.ma --label v003 --name hero-rig-v003 --comment "fixed elbows"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		es, err := elementStore()
		if err != nil {
			return err
		}
		rs, err := relationStore()
		if err != nil {
			return err
		}

		el, err := es.GetByIdentifier(args[0])
		if err != nil {
			return fmt.Errorf("get element: %w", err)
		}
		author := revAuthor
		if author == "" {
			author = el.Owner
		}
		if err := rs.SetLatestVersion(el.InstanceID, revLabel, revName, revComment, author); err != nil {
			return fmt.Errorf("set version: %w", err)
		}
		fmt.Printf("Version %s recorded for %s\n", revLabel, args[0])
		return nil
	},
}

var revShowCmd = &cobra.Command{
	Use:   "show IDENTIFIER",
	Short: "Show the element's current version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := relationStore()
		if err != nil {
			return err
		}
		v, err := rs.LatestVersion(args[0])
		if err != nil {
			return fmt.Errorf("get version: %w", err)
		}
		if flagJSON {
			return printJSON(v)
		}
		fmt.Printf("%s  %s\n", v.Label, v.DisplayName)
		if v.Comment != "" {
			fmt.Printf("  comment: %s\n", v.Comment)
		}
		if v.Author != "" {
			fmt.Printf("  author:  %s\n", v.Author)
		}
		return nil
	},
}

func init() {
	revSetCmd.Flags().StringVar(&revLabel, "label", "", "version label, e.g. v003 (required)")
	revSetCmd.Flags().StringVar(&revName, "name", "", "display name, globally unique (required)")
	revSetCmd.Flags().StringVar(&revComment, "comment", "", "comment")
	revSetCmd.Flags().StringVar(&revAuthor, "author", "", "author (default: element owner)")
	_ = revSetCmd.MarkFlagRequired("label")
	_ = revSetCmd.MarkFlagRequired("name")

	revCmd.AddCommand(revSetCmd)
	revCmd.AddCommand(revShowCmd)
}
