// Package servicegen scaffolds service types and their companion interfaces.
package servicegen

import (
	"context"
	"fmt"

	"github.com/jrazmi/artisan/app/generators/naming"
	"github.com/jrazmi/artisan/app/generators/scaffold"
	"github.com/jrazmi/artisan/app/generators/stubs"
	"github.com/jrazmi/artisan/sdk/logger"
)

const (
	Kind          = "Service"
	InterfaceKind = "Service Interface"

	interfaceSuffix = "Interface"
)

// Generator implements make:service.
type Generator struct {
	log *logger.Logger
	sc  *scaffold.Scaffolder
}

// New creates a service generator.
func New(log *logger.Logger, sc *scaffold.Scaffolder) *Generator {
	return &Generator{
		log: log,
		sc:  sc,
	}
}

// Execute generates the service type for name under the services namespace.
func (g *Generator) Execute(ctx context.Context, name string) (scaffold.Result, error) {
	return g.generate(ctx, Kind, name, g.sc.Config().ServicesNamespace, stubs.ServicePlain)
}

// ExecuteInterface generates the <name>Interface type under the interfaces
// sub-namespace of services.
func (g *Generator) ExecuteInterface(ctx context.Context, name string) (scaffold.Result, error) {
	if naming.Derive(name, "").Empty() {
		return scaffold.Result{Kind: InterfaceKind, Name: name + interfaceSuffix},
			fmt.Errorf("service interface %q: %w", name, scaffold.ErrInvalidName)
	}
	return g.generate(ctx, InterfaceKind, name+interfaceSuffix, g.sc.Config().InterfacesNamespace(), stubs.ServiceInterface)
}

func (g *Generator) generate(ctx context.Context, kind, raw, base, stub string) (scaffold.Result, error) {
	name := naming.Derive(raw, base)
	target := name.Path()

	if name.Empty() {
		return scaffold.Result{Kind: kind, Name: raw, Path: target},
			fmt.Errorf("service %q: %w", raw, scaffold.ErrInvalidName)
	}

	res, err := g.sc.Generate(kind, raw, stub, target, g.sc.BaseVars(name))
	if err != nil {
		return res, err
	}

	g.log.DebugContext(ctx, "servicegen: generated", "kind", kind, "name", raw, "path", res.Path)
	return res, nil
}
