package cmdshared

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPackName(t *testing.T) {
	tests := map[string]string{
		"/home/alice/MyCoolPack":   "My Cool Pack",
		"/home/alice/my-cool-pack": "My Cool Pack",
		"/home/alice/my_pack":      "My Pack",
		"/":                        "",
		".":                        "",
	}
	for dir, expected := range tests {
		assert.Equal(t, expected, DefaultPackName(dir), dir)
	}
}

func TestReadValue(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("Alice\r\n\n"), &out)

	value, err := p.ReadValue("Author: ", "Bob")
	require.NoError(t, err)
	assert.Equal(t, "Alice", value)

	value, err = p.ReadValue("Version [1.0.0]: ", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", value)

	assert.Equal(t, "Author: Version [1.0.0]: ", out.String())

	// Nothing left to read
	_, err = p.ReadValue("Name: ", "")
	assert.Error(t, err)
}

func TestReadValueWithoutTrailingNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("1.20.1"), &bytes.Buffer{})

	value, err := p.ReadValue("Minecraft version: ", "")
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", value)
}

func TestNonInteractive(t *testing.T) {
	viper.Set("non-interactive", true)
	defer viper.Set("non-interactive", false)

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)

	value, err := p.ReadValue("Version [1.0.0]: ", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", value)

	yes, err := p.PromptYesNo("Overwrite? [Y/n] ")
	require.NoError(t, err)
	assert.True(t, yes)
	assert.Contains(t, out.String(), "Y (non-interactive mode)")
}

func TestPromptYesNo(t *testing.T) {
	p := NewPrompter(strings.NewReader("n\nyes\n\nNO\n"), &bytes.Buffer{})

	for _, expected := range []bool{false, true, true, false} {
		answer, err := p.PromptYesNo("? ")
		require.NoError(t, err)
		assert.Equal(t, expected, answer)
	}
}

func TestLoadDefaults(t *testing.T) {
	defer viper.Set("defaults", nil)

	defaults, err := LoadDefaults()
	require.NoError(t, err)
	assert.Equal(t, Defaults{Version: "1.0.0", ModLoader: "none"}, defaults)

	viper.Set("defaults", map[string]interface{}{
		"author":     "Alice",
		"mc-version": "1.20.1",
		"modloader":  "forge-47.1.0",
	})
	defaults, err = LoadDefaults()
	require.NoError(t, err)
	assert.Equal(t, Defaults{
		Author:    "Alice",
		Version:   "1.0.0",
		MCVersion: "1.20.1",
		ModLoader: "forge-47.1.0",
	}, defaults)

	viper.Set("defaults", map[string]interface{}{"autor": "typo"})
	_, err = LoadDefaults()
	assert.Error(t, err)
}
