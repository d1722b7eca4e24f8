package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gex-dev/gex/internal/errors"
	"github.com/gex-dev/gex/internal/project"
	"github.com/gex-dev/gex/internal/routes"
	"github.com/gex-dev/gex/internal/scaffold"
)

func makeControllerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "make:controller <path>",
		Short: "Generate a GetX controller",
		Long: `Generate a controller class under lib/controllers/.

The resource path may nest folders; every segment except the last becomes
a snake_case directory.

Examples:
  gex make:controller Booking/Flight
  gex make:controller flightBooking`,
		Args: requirePathArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMake(afero.NewOsFs(), ".", scaffold.KindController, args[0])
		},
	}
}

func makeBindingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "make:binding <path>",
		Short: "Generate a GetX binding",
		Long: `Generate a binding class under lib/bindings/ that lazy-wires the
resource's controller.

Examples:
  gex make:binding Booking/Flight`,
		Args: requirePathArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMake(afero.NewOsFs(), ".", scaffold.KindBinding, args[0])
		},
	}
}

func makeScreenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "make:screen <path>",
		Short: "Generate a GetX screen",
		Long: `Generate a screen class under lib/screens/ rendered as a GetView over
the resource's controller.

Examples:
  gex make:screen Booking/Flight`,
		Args: requirePathArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMake(afero.NewOsFs(), ".", scaffold.KindScreen, args[0])
		},
	}
}

func makePageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "make:page <path>",
		Short: "Generate a full page: controller, binding, screen, and route",
		Long: `Generate all three artifacts for a resource and register its route in
lib/routes/app_routes.dart.

The run is all-or-nothing: if any target file already exists or the route
is already registered, nothing is written.

Examples:
  gex make:page Booking/Flight
  gex make:page Home`,
		Args: requirePathArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMakePage(afero.NewOsFs(), ".", args[0])
		},
	}
}

// requirePathArg enforces the single resource-path argument every
// generation command takes.
func requirePathArg(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("E010").
			WithSuggestion(fmt.Sprintf("Usage: gex %s", cmd.Use))
	}
	if len(args) > 1 {
		return errors.Newf(errors.CategoryUsage, "too many arguments").
			WithSuggestion(fmt.Sprintf("Usage: gex %s", cmd.Use))
	}
	return nil
}

func runMake(fs afero.Fs, dir string, kind scaffold.Kind, rawPath string) error {
	proj, err := project.Load(fs, dir)
	if err != nil {
		return err
	}

	result, err := scaffold.NewGenerator(fs, proj).Make(kind, rawPath)
	if err != nil {
		return err
	}

	for _, path := range result.Created {
		success("Created %s", path)
	}
	return nil
}

func runMakePage(fs afero.Fs, dir string, rawPath string) error {
	proj, err := project.Load(fs, dir)
	if err != nil {
		return err
	}

	result, err := scaffold.NewGenerator(fs, proj).Page(rawPath)
	if err != nil {
		return err
	}

	for _, path := range result.Created {
		if path == routes.FilePath {
			success("Updated %s", path)
		} else {
			success("Created %s", path)
		}
	}
	fmt.Println()
	info("Navigate with Get.toNamed('%s')", result.Route)
	return nil
}
