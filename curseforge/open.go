package curseforge

import (
	"fmt"

	"github.com/packwiz/cursepack/cmd"
	"github.com/packwiz/cursepack/core"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
)

// openBrowser is replaced in tests
var openBrowser = open.Start

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:     "open PROJECT",
	Short:   "Open the CurseForge page for a project in your browser",
	Aliases: []string{"doc"},
	Args:    cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		projectID, err := core.ParseID("project", args[0])
		if err != nil {
			return err
		}

		url := ProjectURL(projectID)
		fmt.Fprintln(c.OutOrStdout(), "Opening browser...")
		if err := openBrowser(url); err != nil {
			fmt.Fprintln(c.OutOrStdout(), "Opening page failed, direct link:")
			fmt.Fprintln(c.OutOrStdout(), url)
		}
		return nil
	},
}

func init() {
	cmd.Add(openCmd)
}
