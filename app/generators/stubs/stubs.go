// Package stubs loads scaffold templates and fills their $PLACEHOLDER$
// tokens.
package stubs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Stub file names shipped with the binary.
const (
	RepositoryPlain  = "repository.plain.stub"
	RepositoryModel  = "repository.model.stub"
	ServicePlain     = "service.plain.stub"
	ServiceInterface = "service.interface.stub"
)

//go:embed templates/*.stub
var embedded embed.FS

// Store reads stubs from an optional override filesystem and falls back to
// the embedded defaults. Published stubs in the override directory win.
type Store struct {
	override billy.Filesystem
}

// NewStore returns a Store. override may be nil.
func NewStore(override billy.Filesystem) *Store {
	return &Store{override: override}
}

// Read returns the raw contents of the named stub. A stub found nowhere
// yields an error wrapping fs.ErrNotExist.
func (s *Store) Read(name string) (string, error) {
	if s.override != nil {
		data, err := util.ReadFile(s.override, name)
		switch {
		case err == nil:
			return string(data), nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("read stub %s: %w", name, err)
		}
	}

	data, err := fs.ReadFile(embedded, path.Join("templates", name))
	if err != nil {
		return "", fmt.Errorf("read stub %s: %w", name, err)
	}
	return string(data), nil
}

// Render reads the named stub and substitutes vars into it.
func (s *Store) Render(name string, vars Vars) (string, error) {
	content, err := s.Read(name)
	if err != nil {
		return "", err
	}
	return RenderString(content, vars), nil
}

// Names lists the embedded stub names.
func Names() []string {
	entries, _ := fs.ReadDir(embedded, "templates")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
