package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gex-dev/gex/internal/errors"
	"github.com/gex-dev/gex/internal/naming"
	"github.com/gex-dev/gex/internal/project"
	"github.com/gex-dev/gex/internal/routes"
	"github.com/gex-dev/gex/internal/scaffold"
	"github.com/gex-dev/gex/internal/templates"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the GetX structure in a Flutter project",
		Long: `Initialize the GetX structure inside an existing Flutter project.

Writes the app shell (lib/main.dart) and the empty route registry
(lib/routes/app_routes.dart), then scaffolds the Home page through the
same engine as make:page.

Examples:
  gex init
  gex init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(afero.NewOsFs(), ".", force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Rewrite the app shell and registry if they already exist")

	return cmd
}

func runInit(fs afero.Fs, dir string, force bool) error {
	proj, err := project.Load(fs, dir)
	if err != nil {
		return err
	}

	exists, err := afero.Exists(fs, filepath.Join(proj.Root, routes.FilePath))
	if err != nil {
		return errors.New("E040").Wrap(err)
	}
	if exists && !force {
		return errors.New("E003").
			WithDetail(routes.FilePath + " already exists.").
			WithSuggestion("Re-run with --force to rewrite the app shell and registry")
	}

	printBanner()
	fmt.Printf("  Initializing %s...\n", proj.Package)
	fmt.Println()

	tmpl, err := templates.Get("starter")
	if err != nil {
		return err
	}
	cfg := templates.Config{
		Package: proj.Package,
		Title:   naming.ToDisplayName(naming.ToPascalCase(proj.Package)),
	}
	if err := tmpl.Create(fs, proj.Root, cfg); err != nil {
		return err
	}
	success("Created lib/main.dart")
	success("Created %s", routes.FilePath)

	// The Home page goes through the same conflict-checked path as
	// make:page. Files left over from a previous init are kept, not
	// overwritten.
	gen := scaffold.NewGenerator(fs, proj)
	result, err := gen.Page("Home")
	if err != nil {
		if errors.CategoryOf(err) != errors.CategoryConflict {
			return err
		}
		// Create rewrote the registry, so the kept page's route has to go
		// back in.
		warn("Home page already exists, keeping it")
		if err := gen.RegisterRoute("Home"); err != nil {
			return err
		}
		success("Updated %s", routes.FilePath)
		fmt.Println()
		success("Project ready.")
		return nil
	}

	for _, path := range result.Created {
		if path == routes.FilePath {
			success("Updated %s", path)
		} else {
			success("Created %s", path)
		}
	}

	fmt.Println()
	success("Project ready.")
	info("Run your app; the initial route is '%s'.", result.Route)
	return nil
}
