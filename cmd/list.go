package cmd

import (
	"fmt"

	"github.com/packwiz/cursepack/core"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the mod loaders and files in the manifest",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := core.LoadManifest(ManifestFile())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s %s by %s\n", m.Name, m.Version, m.Author)
		fmt.Fprintf(out, "Minecraft %s\n", m.Minecraft.Version)

		fmt.Fprintf(out, "Mod loaders (%d):\n", len(m.Minecraft.ModLoaders))
		for _, l := range m.Minecraft.ModLoaders {
			desc := l.ID
			if component, version, ok := core.SplitLoaderID(l.ID, m.Minecraft.Version); ok {
				desc = fmt.Sprintf("%s (%s %s)", l.ID, core.ComponentToFriendlyName(component), version)
			}
			if l.Primary {
				desc += " [primary]"
			}
			fmt.Fprintln(out, "  "+desc)
		}

		fmt.Fprintf(out, "Files (%d):\n", len(m.Files))
		for _, f := range m.Files {
			if f.Required {
				fmt.Fprintf(out, "  project %d, file %d\n", f.ProjectID, f.FileID)
			} else {
				fmt.Fprintf(out, "  project %d, file %d (optional)\n", f.ProjectID, f.FileID)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
