package templates

import (
	"bytes"
	"path/filepath"
	"text/template"

	"github.com/spf13/afero"

	"github.com/gex-dev/gex/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// Package is the Dart package name from pubspec.yaml.
	Package string

	// Title is the application display title.
	Title string
}

// Template represents a project starter template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of project-relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"starter": starterTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.Newf(errors.CategoryUsage, "template %q not found", name).
			WithSuggestion("Available templates: starter")
	}
	return tmpl, nil
}

// List returns all available template names.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	return names
}

// Create renders the template files into dir through fs.
func (t *Template) Create(fs afero.Fs, dir string, cfg Config) error {
	for relPath, content := range t.Files {
		tmpl, err := template.New(relPath).Parse(content)
		if err != nil {
			return errors.Newf(errors.CategoryIO, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryIO, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, relPath)
		if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return errors.New("E040").Wrap(err)
		}
		if err := afero.WriteFile(fs, fullPath, buf.Bytes(), 0644); err != nil {
			return errors.New("E040").Wrap(err)
		}
	}

	return nil
}

// starterTemplate returns the GetX starter skeleton: an app shell wired to
// the route registry. The Home page itself is scaffolded through the
// generation engine, not the template.
func starterTemplate() *Template {
	return &Template{
		Name:        "starter",
		Description: "GetX application shell with an empty route registry",
		Files: map[string]string{
			"lib/main.dart": `import 'package:flutter/material.dart';
import 'package:get/get.dart';

import 'package:{{.Package}}/routes/app_routes.dart';

void main() {
  runApp(const App());
}

class App extends StatelessWidget {
  const App({super.key});

  @override
  Widget build(BuildContext context) {
    return GetMaterialApp(
      title: '{{.Title}}',
      initialRoute: '/home',
      getPages: routes,
    );
  }
}
`,
			"lib/routes/app_routes.dart": `import 'package:get/get.dart';

final routes = <GetPage>[];
`,
		},
	}
}
