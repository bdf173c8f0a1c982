package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// The fixed values every CurseForge modpack manifest carries
const (
	ManifestType    = "minecraftModpack"
	ManifestVersion = 1
	OverridesFolder = "overrides"
)

// Manifest stores the modpack metadata, usually in manifest.json.
// The struct tags are the complete field to key mapping of the on-disk schema; note that the file
// reference keys use a capitalised "ID" rather than camelCase.
type Manifest struct {
	Minecraft       ManifestMinecraft `json:"minecraft"`
	ManifestType    string            `json:"manifestType"`
	ManifestVersion int               `json:"manifestVersion"`
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Author          string            `json:"author"`
	Files           []FileRef         `json:"files"`
	Overrides       string            `json:"overrides"`
}

// ManifestMinecraft is the nested "minecraft" object, holding the game version and the mod loaders
type ManifestMinecraft struct {
	Version    string      `json:"version"`
	ModLoaders []ModLoader `json:"modLoaders"`
}

// ModLoader is a mod loader declaration, e.g. forge-47.1.0
type ModLoader struct {
	ID      string `json:"id"`
	Primary bool   `json:"primary"`
}

// FileRef references a single file on CurseForge
type FileRef struct {
	ProjectID uint64 `json:"projectID"`
	FileID    uint64 `json:"fileID"`
	Required  bool   `json:"required"`
}

// NewManifest creates a manifest with no mod loaders and no files
func NewManifest(name, version, author, mcVersion string) Manifest {
	return Manifest{
		Minecraft: ManifestMinecraft{
			Version:    mcVersion,
			ModLoaders: []ModLoader{},
		},
		ManifestType:    ManifestType,
		ManifestVersion: ManifestVersion,
		Name:            name,
		Version:         version,
		Author:          author,
		Files:           []FileRef{},
		Overrides:       OverridesFolder,
	}
}

// AddModLoader appends a mod loader. Duplicate IDs and several primary loaders are allowed.
func (m *Manifest) AddModLoader(id string, primary bool) {
	m.Minecraft.ModLoaders = append(m.Minecraft.ModLoaders, ModLoader{
		ID:      id,
		Primary: primary,
	})
}

// AddFile appends a required file reference. Existing references are not checked for duplicates.
func (m *Manifest) AddFile(projectID, fileID uint64) {
	m.Files = append(m.Files, FileRef{
		ProjectID: projectID,
		FileID:    fileID,
		Required:  true,
	})
}

// GetMCVersion gets the version of Minecraft this pack uses
func (m Manifest) GetMCVersion() (string, error) {
	if len(m.Minecraft.Version) == 0 {
		return "", errors.New("no Minecraft version specified in manifest")
	}
	return m.Minecraft.Version, nil
}

// Encode writes the manifest as indented JSON
func (m Manifest) Encode(out io.Writer) error {
	w := json.NewEncoder(out)
	w.SetIndent("", "  ") // Match CF export
	w.SetEscapeHTML(false)
	return w.Encode(m)
}

// DecodeManifest reads a manifest, rejecting documents that don't match the manifest schema
func DecodeManifest(in io.Reader) (Manifest, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return Manifest{}, errors.Wrap(err, "error reading manifest")
	}

	var m Manifest
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return Manifest{}, errors.Wrap(ErrMalformedManifest, err.Error())
	}
	// Only a single document is allowed
	if _, err := dec.Token(); err != io.EOF {
		return Manifest{}, errors.Wrap(ErrMalformedManifest, "unexpected data after manifest")
	}
	// encoding/json matches keys case-insensitively and skips missing ones
	if err := checkKeys(data); err != nil {
		return Manifest{}, errors.Wrap(ErrMalformedManifest, err.Error())
	}

	if m.ManifestType != ManifestType {
		return Manifest{}, errors.Wrapf(ErrMalformedManifest, "manifestType is %q, expected %q", m.ManifestType, ManifestType)
	}
	if m.ManifestVersion != ManifestVersion {
		return Manifest{}, errors.Wrapf(ErrMalformedManifest, "manifestVersion is %d, expected %d", m.ManifestVersion, ManifestVersion)
	}
	if m.Overrides != OverridesFolder {
		return Manifest{}, errors.Wrapf(ErrMalformedManifest, "overrides is %q, expected %q", m.Overrides, OverridesFolder)
	}
	return m, nil
}

var (
	manifestKeys  = []string{"minecraft", "manifestType", "manifestVersion", "name", "version", "author", "files", "overrides"}
	minecraftKeys = []string{"version", "modLoaders"}
	modLoaderKeys = []string{"id", "primary"}
	fileRefKeys   = []string{"projectID", "fileID", "required"}
)

// checkKeys verifies that every object in the document has exactly the expected keys, spelled exactly, none null
func checkKeys(data []byte) error {
	top, err := objectWithKeys(data, "manifest", manifestKeys)
	if err != nil {
		return err
	}
	mc, err := objectWithKeys(top["minecraft"], "minecraft", minecraftKeys)
	if err != nil {
		return err
	}
	if err := listWithKeys(mc["modLoaders"], "mod loader", modLoaderKeys); err != nil {
		return err
	}
	return listWithKeys(top["files"], "file", fileRefKeys)
}

func objectWithKeys(data json.RawMessage, kind string, keys []string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%s is not an object", kind)
	}
	if obj == nil {
		return nil, fmt.Errorf("%s is null", kind)
	}
	for _, key := range keys {
		value, ok := obj[key]
		if !ok {
			return nil, fmt.Errorf("%s is missing key %q", kind, key)
		}
		if string(bytes.TrimSpace(value)) == "null" {
			return nil, fmt.Errorf("%s key %q is null", kind, key)
		}
	}
	if len(obj) != len(keys) {
		for key := range obj {
			if !slices.Contains(keys, key) {
				return nil, fmt.Errorf("%s has unknown key %q", kind, key)
			}
		}
	}
	return obj, nil
}

func listWithKeys(data json.RawMessage, kind string, keys []string) error {
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("%s list is not an array", kind)
	}
	for _, item := range list {
		if _, err := objectWithKeys(item, kind, keys); err != nil {
			return err
		}
	}
	return nil
}

// MarshalManifest returns the encoded form of the manifest, as written to disk
func MarshalManifest(m Manifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseID parses a CurseForge project or file ID, a base 10 unsigned integer with an optional leading +
func ParseID(kind string, value string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(value, "+"), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgument, "%s %q is not a valid ID", kind, value)
	}
	return id, nil
}

// ParsePrimary parses the primary flag of a mod loader, which must be exactly true or false
func ParsePrimary(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errors.Wrapf(ErrInvalidArgument, "primary %q must be true or false", value)
}
