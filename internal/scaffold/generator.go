package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/gex-dev/gex/internal/errors"
	"github.com/gex-dev/gex/internal/naming"
	"github.com/gex-dev/gex/internal/project"
	"github.com/gex-dev/gex/internal/routes"
)

// Result summarizes one successful generation run.
type Result struct {
	// Created lists the project-relative paths written, in creation order.
	Created []string

	// Route is the registered route name; empty for single-artifact runs.
	Route string
}

// Generator produces artifacts inside a validated project. All filesystem
// access goes through the injected afero.Fs, so tests run entirely in
// memory.
type Generator struct {
	fs   afero.Fs
	proj *project.Project
}

// NewGenerator returns a Generator writing through fs into proj.
func NewGenerator(fs afero.Fs, proj *project.Project) *Generator {
	return &Generator{fs: fs, proj: proj}
}

// Make generates a single artifact of the given kind. The target path is
// checked before the write; an existing file aborts without touching disk.
func (g *Generator) Make(kind Kind, rawPath string) (*Result, error) {
	res, err := naming.ParseResource(rawPath)
	if err != nil {
		return nil, err
	}

	target := kind.TargetPath(res)
	exists, err := afero.Exists(g.fs, g.path(target))
	if err != nil {
		return nil, errors.New("E040").Wrap(err)
	}
	if exists {
		return nil, errors.New("E020").
			WithDetail(target + " already exists.").
			WithSuggestion("Choose a different resource path or remove the existing file")
	}

	content, err := renderArtifact(kind, g.data(res))
	if err != nil {
		return nil, err
	}
	if err := g.write(target, content); err != nil {
		return nil, err
	}

	return &Result{Created: []string{target}}, nil
}

// Page generates the controller, binding, and screen for the resource and
// registers its route. The conflict gate inspects every prospective effect
// first: if any target file exists or the route is already registered,
// nothing is written. Generation order is controller, binding, screen,
// registry.
func (g *Generator) Page(rawPath string) (*Result, error) {
	res, err := naming.ParseResource(rawPath)
	if err != nil {
		return nil, err
	}

	registry, err := routes.Load(g.fs, g.proj.Root)
	if err != nil {
		return nil, err
	}

	entry := g.entry(res)
	if err := g.checkConflicts(res, registry, entry); err != nil {
		return nil, err
	}

	result := &Result{Route: entry.Name}
	for _, kind := range Kinds {
		content, err := renderArtifact(kind, g.data(res))
		if err != nil {
			return nil, err
		}
		target := kind.TargetPath(res)
		if err := g.write(target, content); err != nil {
			return nil, err
		}
		result.Created = append(result.Created, target)
	}

	patched, err := routes.Patch(registry, entry)
	if err != nil {
		return nil, err
	}
	if err := routes.Save(g.fs, g.proj.Root, patched); err != nil {
		return nil, err
	}
	result.Created = append(result.Created, routes.FilePath)

	return result, nil
}

// RegisterRoute adds the resource's route to the registry without writing
// any artifact. A route that is already registered is left as is.
func (g *Generator) RegisterRoute(rawPath string) error {
	res, err := naming.ParseResource(rawPath)
	if err != nil {
		return err
	}

	registry, err := routes.Load(g.fs, g.proj.Root)
	if err != nil {
		return err
	}

	entry := g.entry(res)
	if routes.HasRoute(registry, entry.Name) {
		return nil
	}

	patched, err := routes.Patch(registry, entry)
	if err != nil {
		return err
	}
	return routes.Save(g.fs, g.proj.Root, patched)
}

// checkConflicts inspects every prospective effect of a composite run. A
// single existing artifact or an already-registered route aborts the whole
// operation before any write.
func (g *Generator) checkConflicts(res naming.Resource, registry string, entry routes.Entry) error {
	var conflicts []string
	for _, kind := range Kinds {
		target := kind.TargetPath(res)
		exists, err := afero.Exists(g.fs, g.path(target))
		if err != nil {
			return errors.New("E040").Wrap(err)
		}
		if exists {
			conflicts = append(conflicts, target)
		}
	}
	routeTaken := routes.HasRoute(registry, entry.Name)

	if len(conflicts) == 0 && !routeTaken {
		return nil
	}
	if len(conflicts) == 0 {
		return errors.New("E021").
			WithDetail(fmt.Sprintf("Route '%s' is declared in %s.", entry.Name, routes.FilePath)).
			WithSuggestion("Pick a different resource name or remove the existing route")
	}

	detail := strings.Join(conflicts, "\n")
	if routeTaken {
		detail += fmt.Sprintf("\nRoute '%s' is declared in %s.", entry.Name, routes.FilePath)
	}
	return errors.New("E020").
		WithDetail(detail).
		WithSuggestion("Choose a different resource path or remove the existing files")
}

// entry builds the route registration for the resource.
func (g *Generator) entry(res naming.Resource) routes.Entry {
	return routes.Entry{
		Name:          res.RouteName(),
		ScreenType:    KindScreen.TypeName(res),
		BindingType:   KindBinding.TypeName(res),
		ScreenImport:  KindScreen.ImportPath(g.proj.Package, res),
		BindingImport: KindBinding.ImportPath(g.proj.Package, res),
	}
}

// data builds the skeleton substitution payload for the resource.
func (g *Generator) data(res naming.Resource) templateData {
	return templateData{
		Package:          g.proj.Package,
		Pascal:           res.Pascal,
		Display:          naming.ToDisplayName(res.Pascal),
		ControllerImport: KindController.ImportPath(g.proj.Package, res),
	}
}

// path resolves a project-relative path against the project root.
func (g *Generator) path(rel string) string {
	return filepath.Join(g.proj.Root, rel)
}

// write creates the parent directories and writes one artifact.
func (g *Generator) write(rel, content string) error {
	full := g.path(rel)
	if err := g.fs.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return errors.New("E040").
			WithDetail("Could not create " + filepath.Dir(full) + ".").
			Wrap(err)
	}
	if err := afero.WriteFile(g.fs, full, []byte(content), 0644); err != nil {
		return errors.New("E040").
			WithDetail("Could not write " + full + ".").
			Wrap(err)
	}
	return nil
}
