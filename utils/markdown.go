package utils

import (
	"fmt"
	"os"

	"github.com/packwiz/cursepack/cmd"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/viper"
)

// markdownCmd represents the markdown command
var markdownCmd = &cobra.Command{
	Use:     "markdown",
	Short:   "Generate markdown documentation for every command",
	Aliases: []string{"md"},
	Args:    cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		outDir := viper.GetString("utils.markdown.dir")
		if err := GenerateMarkdown(c.Root(), outDir); err != nil {
			return err
		}
		fmt.Fprintln(c.OutOrStdout(), "Generated markdown successfully!")
		return nil
	},
}

// GenerateMarkdown writes one markdown file per command under root into outDir
func GenerateMarkdown(root *cobra.Command, outDir string) error {
	err := os.MkdirAll(outDir, os.ModePerm)
	if err != nil {
		return errors.Wrap(err, "error creating directory")
	}
	// Keep the generated files stable between runs
	root.DisableAutoGenTag = true
	err = doc.GenMarkdownTree(root, outDir)
	if err != nil {
		return errors.Wrap(err, "error generating markdown")
	}
	return nil
}

func init() {
	utilsCmd.AddCommand(markdownCmd)

	markdownCmd.Flags().String("dir", ".", "The destination directory to save docs in")
	cmd.BindFlag("utils.markdown.dir", markdownCmd.Flags().Lookup("dir"))
}
