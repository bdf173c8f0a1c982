package cmdshared

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Defaults holds the [defaults] section of the config file, used when creating manifests interactively
type Defaults struct {
	Author    string `mapstructure:"author"`
	Version   string `mapstructure:"version"`
	MCVersion string `mapstructure:"mc-version"`
	ModLoader string `mapstructure:"modloader"`
}

// LoadDefaults reads the [defaults] config section
func LoadDefaults() (Defaults, error) {
	defaults := Defaults{
		Version:   "1.0.0",
		ModLoader: "none",
	}
	raw := viper.GetStringMap("defaults")
	if len(raw) == 0 {
		return defaults, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &defaults,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Defaults{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Defaults{}, errors.Wrap(err, "invalid [defaults] in config file")
	}
	return defaults, nil
}
