// Package repositorygen scaffolds data access repositories, optionally bound
// to an existing model.
package repositorygen

import (
	"context"
	"fmt"
	"path"

	"github.com/jrazmi/artisan/app/generators/naming"
	"github.com/jrazmi/artisan/app/generators/scaffold"
	"github.com/jrazmi/artisan/app/generators/stubs"
	"github.com/jrazmi/artisan/sdk/logger"
)

// Generator implements make:repository.
type Generator struct {
	log *logger.Logger
	sc  *scaffold.Scaffolder
}

// New creates a repository generator.
func New(log *logger.Logger, sc *scaffold.Scaffolder) *Generator {
	return &Generator{
		log: log,
		sc:  sc,
	}
}

// Execute generates the repository described by req.
//
// With a bound model the model source must already exist under the models
// namespace, otherwise nothing is written and the error wraps
// scaffold.ErrPrerequisiteMissing. An existing target is never touched and
// yields scaffold.ErrAlreadyExists. In both cases the Result carries the
// message to print.
func (g *Generator) Execute(ctx context.Context, req Request) (scaffold.Result, error) {
	cfg := g.sc.Config()
	name := naming.Derive(req.Name, cfg.RepositoriesNamespace)
	target := name.Path()

	if name.Empty() {
		return scaffold.Result{Kind: Kind, Name: req.Name, Path: target},
			fmt.Errorf("repository %q: %w", req.Name, scaffold.ErrInvalidName)
	}

	vars := g.sc.BaseVars(name)
	stub := stubs.RepositoryPlain

	if req.Bound() {
		modelPath := path.Join(cfg.ModelsNamespace, naming.FileName(naming.TypeName(req.Model)))
		exists, err := g.sc.Exists(modelPath)
		if err != nil {
			return scaffold.Result{Kind: Kind, Name: req.Name, Path: target}, err
		}
		if !exists {
			g.log.DebugContext(ctx, "repositorygen: model source missing", "model", req.Model, "path", modelPath)
			return scaffold.Result{
				Kind:    Kind,
				Name:    req.Name,
				Path:    target,
				Status:  scaffold.StatusModelMissing,
				Message: fmt.Sprintf("Model [%s] not exist.", req.Model),
			}, fmt.Errorf("model %s: %w", req.Model, scaffold.ErrPrerequisiteMissing)
		}

		stub = stubs.RepositoryModel
		vars = vars.
			With("MODEL", req.Model).
			With("MODEL_NAMESPACE", cfg.ModelsNamespace).
			With("MODEL_PACKAGE", naming.Package(cfg.ModelsNamespace))
	}

	res, err := g.sc.Generate(Kind, req.Name, stub, target, vars)
	if err != nil {
		return res, err
	}

	g.log.DebugContext(ctx, "repositorygen: generated", "name", req.Name, "path", res.Path, "model", req.Model)
	return res, nil
}
