package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var thumbOut string

var thumbCmd = &cobra.Command{
	Use:   "thumb",
	Short: "Manage element thumbnails",
}

var thumbSetCmd = &cobra.Command{
	Use:   "set IDENTIFIER FILE",
	Short: "Store an image file as the element's thumbnail",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := relationStore()
		if err != nil {
			return err
		}
		image, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		if err := rs.SetThumbnail(args[0], image); err != nil {
			return fmt.Errorf("set thumbnail: %w", err)
		}
		fmt.Printf("Thumbnail set for %s (%d bytes)\n", args[0], len(image))
		return nil
	},
}

var thumbGetCmd = &cobra.Command{
	Use:   "get IDENTIFIER",
	Short: "Write the element's thumbnail to a file or stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := relationStore()
		if err != nil {
			return err
		}
		image, err := rs.Thumbnail(args[0])
		if err != nil {
			return fmt.Errorf("get thumbnail: %w", err)
		}
		if thumbOut == "" || thumbOut == "-" {
			_, err = os.Stdout.Write(image)
			return err
		}
		if err := os.WriteFile(thumbOut, image, 0o644); err != nil {
			return fmt.Errorf("write image: %w", err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(image), thumbOut)
		return nil
	},
}

func init() {
	thumbGetCmd.Flags().StringVar(&thumbOut, "out", "", "output file (default: stdout)")

	thumbCmd.AddCommand(thumbSetCmd)
	thumbCmd.AddCommand(thumbGetCmd)
}
