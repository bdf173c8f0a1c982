package core

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/packwiz/cursepack/logging"
	"github.com/pkg/errors"
)

// DefaultManifestFile is the manifest path used when none is configured
const DefaultManifestFile = "manifest.json"

// LoadManifest loads the manifest at the given path
func LoadManifest(path string) (Manifest, error) {
	logger := logging.GetLogger("store")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, errors.Wrapf(ErrManifestNotFound, "loading %s", path)
		}
		return Manifest{}, errors.Wrapf(err, "loading %s", path)
	}
	defer f.Close()

	m, err := DecodeManifest(bufio.NewReader(f))
	if err != nil {
		return Manifest{}, errors.Wrapf(err, "loading %s", path)
	}
	logger.Debug().Str("path", path).
		Int("modLoaders", len(m.Minecraft.ModLoaders)).
		Int("files", len(m.Files)).
		Msg("Loaded manifest")
	return m, nil
}

// Write saves the manifest to the given path, replacing whatever was there.
// The manifest is written to a temporary file next to the destination first, then renamed over it.
func (m Manifest) Write(path string) error {
	logger := logging.GetLogger("store")

	data, err := MarshalManifest(m)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrWriteManifest, path, err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrWriteManifest, path, err)
	}
	tmpPath := f.Name()

	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		// CreateTemp uses 0600
		err = os.Chmod(tmpPath, 0644)
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: writing %s: %w", ErrWriteManifest, path, err)
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Wrote manifest")
	return nil
}

// InitManifest creates a new manifest and writes it to path, overwriting any existing manifest
func InitManifest(path, name, version, author, mcVersion string) (Manifest, error) {
	m := NewManifest(name, version, author, mcVersion)
	if err := m.Write(path); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// AddModLoader loads the manifest at path, appends a mod loader and writes it back
func AddModLoader(path, id string, primary bool) (Manifest, error) {
	m, err := LoadManifest(path)
	if err != nil {
		return Manifest{}, err
	}
	m.AddModLoader(id, primary)
	if err := m.Write(path); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// AddFile loads the manifest at path, appends a required file reference and writes it back
func AddFile(path string, projectID, fileID uint64) (Manifest, error) {
	m, err := LoadManifest(path)
	if err != nil {
		return Manifest{}, err
	}
	m.AddFile(projectID, fileID)
	if err := m.Write(path); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
