package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/gex-dev/gex/internal/errors"
)

const (
	// ManifestName is the name of the project manifest file.
	ManifestName = "pubspec.yaml"

	// frameworkMarker identifies a Flutter project inside the manifest.
	frameworkMarker = "flutter:"

	// packageKey introduces the package name inside the manifest.
	packageKey = "name:"
)

// Project describes a validated Flutter project.
type Project struct {
	// Root is the project root directory, where pubspec.yaml lives.
	Root string

	// Package is the Dart package name declared in pubspec.yaml. It is the
	// prefix of every generated package: import.
	Package string
}

// Load reads the manifest in dir and validates that it describes a Flutter
// project. The manifest is scanned line by line; nothing of the YAML grammar
// beyond the flutter: marker and the name: key is understood. The first
// name: line is authoritative, even when its value is empty. Load never
// walks up the directory tree; dir itself must be the project root.
func Load(fs afero.Fs, dir string) (*Project, error) {
	manifest := filepath.Join(dir, ManifestName)

	data, err := afero.ReadFile(fs, manifest)
	if err != nil {
		return nil, errors.New("E001").
			WithDetail(fmt.Sprintf("%s was not found.", manifest)).
			WithSuggestion("Run gex from the root of a Flutter project").
			Wrap(err)
	}

	var (
		pkg       string
		seenName  bool
		isFlutter bool
	)
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, frameworkMarker) {
			isFlutter = true
		}
		if !seenName && strings.HasPrefix(trimmed, packageKey) {
			seenName = true
			pkg = strings.TrimSpace(strings.TrimPrefix(trimmed, packageKey))
		}
	}

	if !isFlutter {
		return nil, errors.New("E001").
			WithDetail(fmt.Sprintf("%s has no %s entry.", manifest, frameworkMarker)).
			WithSuggestion("Run gex from the root of a Flutter project")
	}
	if pkg == "" {
		return nil, errors.New("E002").
			WithSuggestion(fmt.Sprintf("Add a name: entry to %s", manifest))
	}

	return &Project{Root: dir, Package: pkg}, nil
}
