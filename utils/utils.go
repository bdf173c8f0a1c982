package utils

import (
	"github.com/packwiz/cursepack/cmd"
	"github.com/spf13/cobra"
)

// utilsCmd represents the base command when called without any subcommands
var utilsCmd = &cobra.Command{
	Use:   "utils",
	Short: "Utilities for managing cursepack itself",
}

func init() {
	cmd.Add(utilsCmd)
}
