package environment

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// LoadTOML decodes the TOML file at path into cfg. A missing file is not an
// error; the struct is left untouched.
func LoadTOML(path string, cfg any) error {
	if path == "" {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// Load populates cfg from the TOML file at path and then from prefixed
// environment variables. Environment values win over the file, the file wins
// over `default` tags.
func Load(prefix, path string, cfg any) error {
	if err := LoadTOML(path, cfg); err != nil {
		return err
	}
	if err := OverlayEnvTags(prefix, cfg); err != nil {
		return fmt.Errorf("parsing env: %w", err)
	}
	return nil
}
