package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/packwiz/cursepack/cmdshared"
	"github.com/packwiz/cursepack/core"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a modpack manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ManifestFile()
		_, err := os.Stat(path)
		if err == nil && !viper.GetBool("init.reinit") {
			return errors.New("Manifest file already exists, use -r to override!")
		} else if err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "error checking manifest file")
		}

		defaults, err := cmdshared.LoadDefaults()
		if err != nil {
			return err
		}
		p := cmdshared.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

		name := viper.GetString("init.name")
		if len(name) == 0 {
			wd, _ := os.Getwd()
			if defName := cmdshared.DefaultPackName(wd); len(defName) > 0 {
				name, err = p.ReadValue("Modpack name ["+defName+"]: ", defName)
			} else {
				name, err = p.ReadValue("Modpack name: ", "")
			}
			if err != nil {
				return err
			}
		}

		author := viper.GetString("init.author")
		if len(author) == 0 {
			author, err = p.ReadValue(promptWithDefault("Author", defaults.Author), defaults.Author)
			if err != nil {
				return err
			}
		}

		version := viper.GetString("init.version")
		if len(version) == 0 {
			version, err = p.ReadValue(promptWithDefault("Version", defaults.Version), defaults.Version)
			if err != nil {
				return err
			}
		}

		mcVersion := viper.GetString("init.mc-version")
		if len(mcVersion) == 0 {
			mcVersion, err = p.ReadValue(promptWithDefault("Minecraft version", defaults.MCVersion), defaults.MCVersion)
			if err != nil {
				return err
			}
		}

		modLoader := viper.GetString("init.modloader")
		if len(modLoader) == 0 {
			modLoader, err = p.ReadValue(promptWithDefault("Mod loader (e.g. forge-47.1.0, or none)", defaults.ModLoader), defaults.ModLoader)
			if err != nil {
				return err
			}
		}

		m := core.NewManifest(name, version, author, mcVersion)
		if len(modLoader) > 0 && strings.ToLower(modLoader) != "none" {
			m.AddModLoader(modLoader, true)
		}
		if err := m.Write(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path+" created!")
		return nil
	},
}

func promptWithDefault(prompt string, def string) string {
	if len(def) > 0 {
		return prompt + " [" + def + "]: "
	}
	return prompt + ": "
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("name", "", "The name of the modpack (omit to define interactively)")
	BindFlag("init.name", initCmd.Flags().Lookup("name"))
	initCmd.Flags().String("author", "", "The author of the modpack (omit to define interactively)")
	BindFlag("init.author", initCmd.Flags().Lookup("author"))
	initCmd.Flags().String("version", "", "The version of the modpack (omit to define interactively)")
	BindFlag("init.version", initCmd.Flags().Lookup("version"))
	initCmd.Flags().String("mc-version", "", "The Minecraft version to use (omit to define interactively)")
	BindFlag("init.mc-version", initCmd.Flags().Lookup("mc-version"))
	initCmd.Flags().String("modloader", "", "The primary mod loader ID, e.g. forge-47.1.0, or none (omit to define interactively)")
	BindFlag("init.modloader", initCmd.Flags().Lookup("modloader"))
	initCmd.Flags().BoolP("reinit", "r", false, "Recreate the manifest if it already exists, rather than exiting")
	BindFlag("init.reinit", initCmd.Flags().Lookup("reinit"))
}
