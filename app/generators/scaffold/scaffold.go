// Package scaffold holds the filesystem side of the make:* generators:
// directory creation, write-once file placement and the outcome reported to
// the console.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"

	"github.com/jrazmi/artisan/app/generators/naming"
	"github.com/jrazmi/artisan/app/generators/stubs"
	"github.com/jrazmi/artisan/sdk/logger"
)

// Status is the outcome of a single generation.
type Status string

const (
	StatusCreated      Status = "created"
	StatusExists       Status = "exists"
	StatusModelMissing Status = "model_missing"
)

// Result describes what a generator did.
type Result struct {
	Kind    string // "Repository", "Service", "Service Interface"
	Name    string // raw name as given on the command line
	Path    string // target path relative to the base directory
	Status  Status
	Message string
}

// Created reports whether a file was written.
func (r Result) Created() bool {
	return r.Status == StatusCreated
}

// Scaffolder writes rendered stubs into a project tree.
type Scaffolder struct {
	log   *logger.Logger
	fs    billy.Filesystem
	stubs *stubs.Store
	cfg   Config
}

// New creates a Scaffolder writing into fsys, which must be rooted at the
// project base path.
func New(log *logger.Logger, fsys billy.Filesystem, store *stubs.Store, cfg Config) *Scaffolder {
	return &Scaffolder{
		log:   log,
		fs:    fsys,
		stubs: store,
		cfg:   cfg,
	}
}

// Config returns the configuration the scaffolder was built with.
func (s *Scaffolder) Config() Config {
	return s.cfg
}

// Stubs returns the template store.
func (s *Scaffolder) Stubs() *stubs.Store {
	return s.stubs
}

// Exists reports whether p exists.
func (s *Scaffolder) Exists(p string) (bool, error) {
	_, err := s.fs.Stat(p)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: stat %s: %w", ErrIO, p, err)
	}
}

// MakeDirectory creates dir and any missing parents. An existing directory
// is left alone.
func (s *Scaffolder) MakeDirectory(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if fi, err := s.fs.Stat(dir); err == nil && fi.IsDir() {
		return nil
	}
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %w", ErrIO, dir, err)
	}
	return nil
}

// WriteOnce creates p with contents. It never modifies an existing file: if
// p is present, ErrAlreadyExists is returned and the file is untouched. The
// create itself is exclusive, so a file appearing between the check and the
// write is also reported as ErrAlreadyExists.
func (s *Scaffolder) WriteOnce(p string, contents string) error {
	exists, err := s.Exists(p)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s: %w", p, ErrAlreadyExists)
	}

	if err := s.MakeDirectory(path.Dir(p)); err != nil {
		return err
	}

	f, err := s.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", p, ErrAlreadyExists)
		}
		return fmt.Errorf("%w: create %s: %w", ErrIO, p, err)
	}

	if _, err := f.Write([]byte(contents)); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrIO, p, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIO, p, err)
	}

	s.log.Debug("scaffold: file written", "path", p, "bytes", len(contents))
	return nil
}

// Generate renders stub with vars and writes it once to p. On a conflict the
// Result carries the console message and the error wraps ErrAlreadyExists.
func (s *Scaffolder) Generate(kind, name, stub, p string, vars stubs.Vars) (Result, error) {
	res := Result{
		Kind: kind,
		Name: name,
		Path: p,
	}

	// Directories are prepared even when the file turns out to exist.
	if err := s.MakeDirectory(path.Dir(p)); err != nil {
		return res, err
	}

	contents, err := s.stubs.Render(stub, vars)
	if err != nil {
		return res, fmt.Errorf("render %s: %w", stub, err)
	}

	err = s.WriteOnce(p, contents)
	switch {
	case err == nil:
		res.Status = StatusCreated
		res.Message = fmt.Sprintf("%s [%s] created successfully.", kind, name)
		return res, nil
	case errors.Is(err, ErrAlreadyExists):
		res.Status = StatusExists
		res.Message = fmt.Sprintf("%s [%s] already exist.", kind, name)
		return res, err
	default:
		return res, err
	}
}

// BaseVars returns the rendering context shared by every stub, in
// substitution order: NAMESPACE, PACKAGE, CLASS_NAME and, when known, MODULE.
func (s *Scaffolder) BaseVars(n naming.Name) stubs.Vars {
	vars := stubs.Vars{
		{Key: "NAMESPACE", Value: n.Namespace},
		{Key: "PACKAGE", Value: n.Package()},
		{Key: "CLASS_NAME", Value: n.TypeName},
	}
	if s.cfg.ModulePath != "" {
		vars = vars.With("MODULE", s.cfg.ModulePath)
	}
	return vars
}
