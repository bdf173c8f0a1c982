package migrate

import (
	"github.com/packwiz/cursepack/cmd"
	"github.com/spf13/cobra"
)

// migrateCmd represents the base command when called without any subcommands
var migrateCmd = &cobra.Command{
	Use:   "migrate [packwiz]",
	Short: "Create a manifest from a modpack managed by another tool",
}

func init() {
	cmd.Add(migrateCmd)
}
