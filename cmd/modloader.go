package cmd

import (
	"fmt"

	"github.com/packwiz/cursepack/core"
	"github.com/spf13/cobra"
)

// modloaderCmd represents the modloader command
var modloaderCmd = &cobra.Command{
	Use:     "modloader ID PRIMARY",
	Short:   "Add a mod loader (e.g. forge-47.1.0 true) to the manifest",
	Aliases: []string{"loader"},
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		primary, err := core.ParsePrimary(args[1])
		if err != nil {
			return err
		}
		m, err := core.AddModLoader(ManifestFile(), args[0], primary)
		if err != nil {
			return err
		}
		if primary {
			fmt.Fprintf(cmd.OutOrStdout(), "Mod loader %s added as primary (%d declared)\n", args[0], len(m.Minecraft.ModLoaders))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Mod loader %s added (%d declared)\n", args[0], len(m.Minecraft.ModLoaders))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modloaderCmd)
}
