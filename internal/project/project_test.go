package project

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/gex-dev/gex/internal/errors"
)

const validManifest = `name: travel_app
description: A sample travel application.
version: 1.0.0+1

environment:
  sdk: ">=3.0.0 <4.0.0"

dependencies:
  flutter:
    sdk: flutter
  get: ^4.6.6
`

func writeManifest(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, "pubspec.yaml", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeManifest(t, fs, validManifest)

	proj, err := Load(fs, ".")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if proj.Package != "travel_app" {
		t.Errorf("Package = %q, want %q", proj.Package, "travel_app")
	}
	if proj.Root != "." {
		t.Errorf("Root = %q, want %q", proj.Root, ".")
	}
}

func TestLoad_MissingManifest(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, ".")
	if err == nil {
		t.Fatal("Load() should fail without pubspec.yaml")
	}
	if code := errors.CodeOf(err); code != "E001" {
		t.Errorf("error code = %q, want %q", code, "E001")
	}
}

func TestLoad_NotFlutter(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeManifest(t, fs, "name: plain_dart_package\nversion: 1.0.0\n")

	_, err := Load(fs, ".")
	if err == nil {
		t.Fatal("Load() should fail without a flutter: entry")
	}
	if code := errors.CodeOf(err); code != "E001" {
		t.Errorf("error code = %q, want %q", code, "E001")
	}
}

func TestLoad_MissingPackageName(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{
			name:     "no name line",
			manifest: "description: An app.\ndependencies:\n  flutter:\n    sdk: flutter\n",
		},
		{
			name:     "empty name value",
			manifest: "name:\ndependencies:\n  flutter:\n    sdk: flutter\n",
		},
		{
			name:     "empty first name line is authoritative",
			manifest: "name:\nname: second_app\ndependencies:\n  flutter:\n    sdk: flutter\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeManifest(t, fs, tt.manifest)

			_, err := Load(fs, ".")
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if code := errors.CodeOf(err); code != "E002" {
				t.Errorf("error code = %q, want %q", code, "E002")
			}
		})
	}
}

func TestLoad_FirstNameLineWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeManifest(t, fs, "name: first_app\nname: second_app\nflutter:\n")

	proj, err := Load(fs, ".")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if proj.Package != "first_app" {
		t.Errorf("Package = %q, want %q", proj.Package, "first_app")
	}
}

func TestLoad_IndentedMarker(t *testing.T) {
	// The flutter: marker usually sits indented under dependencies.
	fs := afero.NewMemMapFs()
	writeManifest(t, fs, "name: my_app\ndependencies:\n  flutter:\n    sdk: flutter\n")

	proj, err := Load(fs, ".")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if proj.Package != "my_app" {
		t.Errorf("Package = %q, want %q", proj.Package, "my_app")
	}
}

func TestLoad_NoWalkUp(t *testing.T) {
	// A manifest in the parent directory must not be picked up.
	fs := afero.NewMemMapFs()
	writeManifest(t, fs, validManifest)
	if err := fs.MkdirAll("lib", 0755); err != nil {
		t.Fatal(err)
	}

	_, err := Load(fs, "lib")
	if err == nil {
		t.Fatal("Load() should not walk up to the parent manifest")
	}
	if code := errors.CodeOf(err); code != "E001" {
		t.Errorf("error code = %q, want %q", code, "E001")
	}
}
