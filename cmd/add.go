package cmd

import (
	"fmt"

	"github.com/packwiz/cursepack/core"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add PROJECT FILE",
	Short: "Add a CurseForge file, by project and file ID, to the manifest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Parse everything before touching the manifest
		projectID, err := core.ParseID("project", args[0])
		if err != nil {
			return err
		}
		fileID, err := core.ParseID("file", args[1])
		if err != nil {
			return err
		}
		m, err := core.AddFile(ManifestFile(), projectID, fileID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "File %d of project %d added (%d files)\n", fileID, projectID, len(m.Files))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
