package migrate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"github.com/packwiz/cursepack/cmd"
	"github.com/packwiz/cursepack/cmdshared"
	"github.com/packwiz/cursepack/core"
	"github.com/packwiz/cursepack/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// packwizPack is the subset of pack.toml needed to build a manifest
type packwizPack struct {
	Name    string `toml:"name"`
	Author  string `toml:"author"`
	Version string `toml:"version"`
	Index   struct {
		// Path is stored in forward slash format relative to pack.toml
		File string `toml:"file"`
	} `toml:"index"`
	Versions map[string]string `toml:"versions"`
}

type packwizIndex struct {
	Files []struct {
		// Files are stored in relative forward-slash format to the index file
		File     string `toml:"file"`
		MetaFile bool   `toml:"metafile"`
	} `toml:"files"`
}

type packwizMod struct {
	Name   string                            `toml:"name"`
	Update map[string]map[string]interface{} `toml:"update"`
}

type cfUpdateData struct {
	ProjectID uint64 `mapstructure:"project-id"`
	FileID    uint64 `mapstructure:"file-id"`
}

// ManifestFromPackwiz builds a manifest from a packwiz pack.toml, its index and the CurseForge metadata of its
// mods. The names of mods that have no CurseForge metadata are returned as skipped.
func ManifestFromPackwiz(packFile string) (m core.Manifest, skipped []string, err error) {
	logger := logging.GetLogger("migrate")

	var pack packwizPack
	if _, err := toml.DecodeFile(packFile, &pack); err != nil {
		return core.Manifest{}, nil, errors.Wrapf(err, "error reading %s", packFile)
	}
	if len(pack.Index.File) == 0 {
		pack.Index.File = "index.toml"
	}

	m = core.NewManifest(pack.Name, pack.Version, pack.Author, pack.Versions["minecraft"])
	if loaderID, ok := core.PrimaryLoaderID(pack.Versions); ok {
		m.AddModLoader(loaderID, true)
	}

	indexFile := filepath.FromSlash(pack.Index.File)
	if !filepath.IsAbs(indexFile) {
		indexFile = filepath.Join(filepath.Dir(packFile), indexFile)
	}
	var index packwizIndex
	if _, err := toml.DecodeFile(indexFile, &index); err != nil {
		return core.Manifest{}, nil, errors.Wrapf(err, "error reading index %s", indexFile)
	}

	for _, f := range index.Files {
		if !f.MetaFile {
			continue
		}
		modPath := filepath.Join(filepath.Dir(indexFile), filepath.FromSlash(f.File))
		var mod packwizMod
		if _, err := toml.DecodeFile(modPath, &mod); err != nil {
			return core.Manifest{}, nil, errors.Wrapf(err, "error reading mod %s", f.File)
		}
		updateUnparsed, ok := mod.Update["curseforge"]
		if !ok {
			skipped = append(skipped, mod.Name)
			continue
		}
		var updateData cfUpdateData
		if err := mapstructure.Decode(updateUnparsed, &updateData); err != nil {
			return core.Manifest{}, nil, errors.Wrapf(err, "invalid curseforge data in %s", f.File)
		}
		logger.Debug().Str("mod", mod.Name).
			Uint64("projectID", updateData.ProjectID).
			Uint64("fileID", updateData.FileID).
			Msg("Adding CurseForge file")
		m.AddFile(updateData.ProjectID, updateData.FileID)
	}
	return m, skipped, nil
}

var packwizCommand = &cobra.Command{
	Use:   "packwiz [pack.toml]",
	Short: "Create the manifest from a packwiz modpack",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		packFile := "pack.toml"
		if len(args) > 0 {
			packFile = args[0]
		}
		path := cmd.ManifestFile()

		_, err := os.Stat(path)
		if err == nil && !viper.GetBool("migrate.packwiz.reinit") {
			p := cmdshared.NewPrompter(c.InOrStdin(), c.OutOrStdout())
			overwrite, err := p.PromptYesNo(path + " already exists, overwrite it? [Y/n] ")
			if err != nil {
				return err
			}
			if !overwrite {
				fmt.Fprintln(c.OutOrStdout(), "Cancelled.")
				return nil
			}
		} else if err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "error checking manifest file")
		}

		fmt.Fprintln(c.OutOrStdout(), "Loading packwiz modpack...")
		m, skipped, err := ManifestFromPackwiz(packFile)
		if err != nil {
			return err
		}
		for _, name := range skipped {
			fmt.Fprintf(c.OutOrStdout(), "Skipping %s: not a CurseForge mod\n", name)
		}
		if err := m.Write(path); err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "%s created with %d files!\n", path, len(m.Files))
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(packwizCommand)

	packwizCommand.Flags().BoolP("reinit", "r", false, "Overwrite an existing manifest without asking")
	cmd.BindFlag("migrate.packwiz.reinit", packwizCommand.Flags().Lookup("reinit"))
}
