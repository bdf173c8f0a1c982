package core

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newPackJSON = `{
  "minecraft": {
    "version": "1.20.1",
    "modLoaders": []
  },
  "manifestType": "minecraftModpack",
  "manifestVersion": 1,
  "name": "My Pack",
  "version": "1.0.0",
  "author": "Alice",
  "files": [],
  "overrides": "overrides"
}
`

func TestNewManifestEncoding(t *testing.T) {
	m := NewManifest("My Pack", "1.0.0", "Alice", "1.20.1")

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))
	assert.Equal(t, newPackJSON, buf.String())
}

func TestNewManifestConstants(t *testing.T) {
	m := NewManifest("", "", "", "")

	assert.Equal(t, "minecraftModpack", m.ManifestType)
	assert.Equal(t, 1, m.ManifestVersion)
	assert.Equal(t, "overrides", m.Overrides)
	assert.NotNil(t, m.Minecraft.ModLoaders)
	assert.Empty(t, m.Minecraft.ModLoaders)
	assert.NotNil(t, m.Files)
	assert.Empty(t, m.Files)
}

func TestFileRefKeys(t *testing.T) {
	m := NewManifest("Pack", "2.0", "Bob", "1.19.2")
	m.AddFile(123456, 789)

	data, err := MarshalManifest(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"projectID": 123456`)
	assert.Contains(t, string(data), `"fileID": 789`)
	assert.Contains(t, string(data), `"required": true`)
	assert.NotContains(t, string(data), "projectId")
}

func TestEncodeDoesNotEscapeHTML(t *testing.T) {
	m := NewManifest("Tom & Jerry <3", "1.0.0", "A", "1.20.1")

	data, err := MarshalManifest(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Tom & Jerry <3"`)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		loaders []ModLoader
		files   [][2]uint64
	}{
		{name: "empty"},
		{
			name:    "one of each",
			loaders: []ModLoader{{ID: "forge-47.1.0", Primary: true}},
			files:   [][2]uint64{{123456, 789}},
		},
		{
			name: "several, with duplicates",
			loaders: []ModLoader{
				{ID: "fabric-0.14.21", Primary: true},
				{ID: "forge-47.1.0", Primary: true},
				{ID: "fabric-0.14.21", Primary: false},
			},
			files: [][2]uint64{{1, 2}, {1, 2}, {0, 0}, {math.MaxUint64, math.MaxUint64}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManifest("Pack", "2.0", "Bob", "1.19.2")
			for _, l := range tt.loaders {
				m.AddModLoader(l.ID, l.Primary)
			}
			for _, f := range tt.files {
				m.AddFile(f[0], f[1])
			}

			data, err := MarshalManifest(m)
			require.NoError(t, err)
			decoded, err := DecodeManifest(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, m, decoded)
		})
	}
}

func TestAddModLoaderAppends(t *testing.T) {
	m := NewManifest("Pack", "2.0", "Bob", "1.19.2")
	m.AddFile(10, 20)
	m.AddModLoader("forge-47.1.0", true)
	m.AddModLoader("fabric-0.14.21", true)

	assert.Equal(t, []ModLoader{
		{ID: "forge-47.1.0", Primary: true},
		{ID: "fabric-0.14.21", Primary: true},
	}, m.Minecraft.ModLoaders)
	assert.Equal(t, []FileRef{{ProjectID: 10, FileID: 20, Required: true}}, m.Files)
}

func TestAddFileAppends(t *testing.T) {
	m := NewManifest("Pack", "2.0", "Bob", "1.19.2")
	m.AddModLoader("forge-47.1.0", true)
	m.AddFile(123456, 789)
	m.AddFile(123456, 789)

	assert.Equal(t, []FileRef{
		{ProjectID: 123456, FileID: 789, Required: true},
		{ProjectID: 123456, FileID: 789, Required: true},
	}, m.Files)
	assert.Len(t, m.Minecraft.ModLoaders, 1)
}

func TestDecodeMalformed(t *testing.T) {
	valid := func(replace, with string) string {
		return strings.Replace(newPackJSON, replace, with, 1)
	}

	tests := map[string]string{
		"not json":               "this is not json",
		"empty":                  "",
		"truncated":              newPackJSON[:40],
		"unknown key":            valid(`"overrides": "overrides"`, `"overrides": "overrides", "extra": 1`),
		"wrong type":             valid(`"files": []`, `"files": "none"`),
		"negative project id":    valid(`"files": []`, `"files": [{"projectID": -1, "fileID": 2, "required": true}]`),
		"project id too large":   valid(`"files": []`, `"files": [{"projectID": 18446744073709551616, "fileID": 2, "required": true}]`),
		"wrong manifest type":    valid(`"minecraftModpack"`, `"somethingElse"`),
		"wrong manifest version": valid(`"manifestVersion": 1`, `"manifestVersion": 2`),
		"trailing data":          newPackJSON + "{}",
		"array":                  "[]",
		"camelCase projectId":    valid(`"files": []`, `"files": [{"projectId": 5, "fileID": 6, "required": true}]`),
		"camelCase fileId":       valid(`"files": []`, `"files": [{"projectID": 5, "fileId": 6, "required": true}]`),
		"upper case name":        valid(`"name"`, `"NAME"`),
		"capitalised modLoaders": valid(`"modLoaders"`, `"ModLoaders"`),
		"capitalised loader id":  valid(`"modLoaders": []`, `"modLoaders": [{"ID": "forge-47.1.0", "primary": true}]`),
		"name in two cases":      valid(`"name": "My Pack"`, `"name": "My Pack", "Name": "Other"`),
		"missing files":          valid(`"files": [],`, ``),
		"missing required":       valid(`"files": []`, `"files": [{"projectID": 5, "fileID": 6}]`),
		"missing minecraft":      `{"manifestType": "minecraftModpack", "manifestVersion": 1}`,
		"missing loader primary": valid(`"modLoaders": []`, `"modLoaders": [{"id": "forge-47.1.0"}]`),
		"null files":             valid(`"files": []`, `"files": null`),
		"null modLoaders":        valid(`"modLoaders": []`, `"modLoaders": null`),
		"null minecraft":         `{"minecraft": null, "manifestType": "minecraftModpack", "manifestVersion": 1, "name": "", "version": "", "author": "", "files": [], "overrides": "overrides"}`,
		"null name":              valid(`"name": "My Pack"`, `"name": null`),
		"null file entry":        valid(`"files": []`, `"files": [null]`),
		"other overrides":        valid(`"overrides": "overrides"`, `"overrides": "../../etc"`),
		"empty overrides":        valid(`"overrides": "overrides"`, `"overrides": ""`),
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeManifest(strings.NewReader(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedManifest), "got %v", err)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("project", "123456")
	require.NoError(t, err)
	assert.Equal(t, uint64(123456), id)

	id, err = ParseID("file", "18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), id)

	id, err = ParseID("project", "+5")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), id)

	for _, bad := range []string{"", "abc", "-1", "1.5", "18446744073709551616", " 1", "+", "++5", "+-5"} {
		_, err := ParseID("project", bad)
		assert.ErrorIs(t, err, ErrInvalidArgument, bad)
	}
}

func TestParsePrimary(t *testing.T) {
	v, err := ParsePrimary("true")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = ParsePrimary("false")
	require.NoError(t, err)
	assert.False(t, v)

	for _, s := range []string{"", "yes", "primary", "1", "0", "t", "F", "TRUE", "False", " true"} {
		_, err := ParsePrimary(s)
		assert.ErrorIs(t, err, ErrInvalidArgument, s)
	}
}
