package cmd

import (
	"fmt"

	"github.com/packwiz/cursepack/core"
	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new NAME VERSION AUTHOR MC_VERSION",
	Short: "Create a new modpack manifest, replacing any existing one",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ManifestFile()
		_, err := core.InitManifest(path, args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path+" created!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
