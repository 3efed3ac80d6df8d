package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ErrNoModule is returned when no go.mod is found above the start directory.
var ErrNoModule = errors.New("go.mod not found")

// maxModuleDepth bounds the upward go.mod search.
const maxModuleDepth = 5

// ModulePath returns the module path declared by the nearest go.mod at or
// above dir.
func ModulePath(dir string) (string, error) {
	goMod, err := findGoMod(dir)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(goMod)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", goMod, err)
	}

	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("%s: no module directive", goMod)
	}
	return path, nil
}

func findGoMod(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for range maxModuleDepth {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return goModPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrNoModule
}
