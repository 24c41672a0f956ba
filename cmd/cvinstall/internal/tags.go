package internal

import (
	"fmt"

	"github.com/cvtools/cvinstall/internal/installer"
	"github.com/cvtools/cvinstall/internal/vcs"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List OpenCV release tags available upstream",
	Long:  `Tags queries the upstream OpenCV repository and prints its release tags, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	tags, err := vcs.Tags(installer.OpenCVRemote)
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}
	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}
