package curseforge

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/packwiz/cursepack/cmd"
	"github.com/packwiz/cursepack/core"
	"github.com/packwiz/cursepack/logging"
	"github.com/pkg/errors"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// IgnoreFile lists override paths (gitignore syntax) that are left out of exports
const IgnoreFile = ".cursepackignore"

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the manifest and overrides into a .zip for CurseForge",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		manifestPath := cmd.ManifestFile()
		m, err := core.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		// CurseForge can't import a pack without a game version
		if _, err := m.GetMCVersion(); err != nil {
			return err
		}
		if _, ok := core.PrimaryLoaderID(m.Versions()); !ok {
			fmt.Fprintln(c.OutOrStdout(), "Warning: no mod loader set, the pack will be imported as vanilla Minecraft")
		}

		fileName := viper.GetString("export.output")
		if fileName == "" {
			fileName = m.Name + ".zip"
			if m.Name == "" {
				fileName = "modpack.zip"
			}
		}

		packRoot := filepath.Dir(manifestPath)
		ignoreList, err := LoadIgnore(packRoot)
		if err != nil {
			return err
		}

		expFile, err := os.Create(fileName)
		if err != nil {
			return errors.Wrap(err, "failed to create zip")
		}
		count, err := WritePack(m, filepath.Join(packRoot, core.OverridesFolder), ignoreList, expFile, fileName)
		if closeErr := expFile.Close(); err == nil && closeErr != nil {
			err = errors.Wrap(closeErr, "error writing export file")
		}
		if err != nil {
			_ = os.Remove(fileName)
			return err
		}

		fmt.Fprintf(c.OutOrStdout(), "Modpack exported to %s (%d files, %d overrides)\n", fileName, len(m.Files), count)
		return nil
	},
}

// LoadIgnore reads the ignore file in the pack root, returning nil if there is none
func LoadIgnore(packRoot string) (*ignore.GitIgnore, error) {
	path := filepath.Join(packRoot, IgnoreFile)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error checking ignore file")
	}
	ignoreList, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s", IgnoreFile)
	}
	return ignoreList, nil
}

// WritePack writes a CurseForge modpack zip: the manifest, a mod list and every file in overridesDir not
// matched by ignoreList (which may be nil). A missing overrides directory is fine; the folder is always
// created in the zip. Files at the exclude paths, such as the zip being written, are skipped.
// Returns the number of override files stored.
func WritePack(m core.Manifest, overridesDir string, ignoreList *ignore.GitIgnore, out io.Writer, exclude ...string) (int, error) {
	logger := logging.GetLogger("export")
	exp := zip.NewWriter(out)

	excluded := make(map[string]bool, len(exclude))
	for _, path := range exclude {
		abs, err := filepath.Abs(path)
		if err != nil {
			return 0, errors.Wrapf(err, "error resolving %s", path)
		}
		excluded[abs] = true
	}

	// Add an overrides folder even if there are no files to go in it
	_, err := exp.Create(core.OverridesFolder + "/")
	if err != nil {
		return 0, errors.Wrap(err, "failed to add overrides folder")
	}

	manifestFile, err := exp.Create("manifest.json")
	if err != nil {
		return 0, errors.Wrap(err, "error creating manifest")
	}
	if err := m.Encode(manifestFile); err != nil {
		return 0, errors.Wrap(err, "error writing manifest")
	}

	if err := createModlist(exp, m.Files); err != nil {
		return 0, errors.Wrap(err, "error creating mod list")
	}

	count := 0
	err = filepath.Walk(overridesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == overridesDir {
				return filepath.SkipDir
			}
			return err
		}
		rel, err := filepath.Rel(overridesDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if ignoreList != nil && ignoreList.MatchesPath(rel) {
			logger.Debug().Str("path", rel).Msg("Ignoring override")
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if abs, err := filepath.Abs(path); err == nil && excluded[abs] {
			logger.Debug().Str("path", rel).Msg("Skipping export output")
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w, err := exp.Create(core.OverridesFolder + "/" + rel)
		if err != nil {
			return err
		}
		if _, err := io.Copy(w, f); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "error adding overrides")
	}

	if err := exp.Close(); err != nil {
		return 0, errors.Wrap(err, "error writing export file")
	}
	return count, nil
}

func init() {
	cmd.Add(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "The file to export the modpack to")
	cmd.BindFlag("export.output", exportCmd.Flags().Lookup("output"))
}
