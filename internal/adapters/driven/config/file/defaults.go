// Package file reads optional tool defaults from a TOML config file.
// Defaults cover what the CLI flags cover — input path, chunk size,
// streaming — plus destination key overrides; flags always win.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
)

// configFile is the file name inside the config directory.
const configFile = "config.toml"

// Defaults are the tool defaults a config file may set. Zero values mean
// "not set" and leave the built-in defaults in place.
type Defaults struct {
	// Input is the default source document path.
	Input string `toml:"input"`

	// Chunk is the default batch size for pipelined writes.
	Chunk int `toml:"chunk"`

	// NoStream forces the buffered reader by default.
	NoStream bool `toml:"no_stream"`

	// Keys overrides destination key names, keyed by dataset name
	// (degrees, institutions, roles, companies).
	Keys map[string]string `toml:"keys"`
}

// LoadDefaults reads defaults from configDir/config.toml. If configDir is
// empty it defaults to ~/.redis-populate. A missing file yields zero-value
// defaults; a file that exists but does not parse is an error.
func LoadDefaults(configDir string) (*Defaults, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".redis-populate")
	}

	data, err := os.ReadFile(filepath.Join(configDir, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &Defaults{}, nil
		}
		return nil, err
	}

	var d Defaults
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}
	return &d, nil
}

// ApplyKeys returns the destination keys with any configured overrides.
func (d *Defaults) ApplyKeys(keys domain.Keys) domain.Keys {
	if v := d.Keys["degrees"]; v != "" {
		keys.Degrees = v
	}
	if v := d.Keys["institutions"]; v != "" {
		keys.Institutions = v
	}
	if v := d.Keys["roles"]; v != "" {
		keys.Roles = v
	}
	if v := d.Keys["companies"]; v != "" {
		keys.Companies = v
	}
	return keys
}
