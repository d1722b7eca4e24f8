// Package templates provides the project starter skeleton for gex init.
//
// The starter contains the files a GetX application needs before the first
// page can be generated: an app shell (lib/main.dart) wired to the route
// registry, and the registry itself (lib/routes/app_routes.dart) with an
// empty element-typed route list that the patcher recognizes.
//
// # Usage
//
//	tmpl, _ := templates.Get("starter")
//	if err := tmpl.Create(fs, projectDir, config); err != nil {
//	    return err
//	}
//
// # Template Variables
//
//	{{.Package}} - Dart package name from pubspec.yaml
//	{{.Title}}   - Application display title
package templates
