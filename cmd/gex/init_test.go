package main

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gex-dev/gex/internal/errors"
	"github.com/gex-dev/gex/internal/routes"
)

const testManifest = `name: travel_app
description: A sample travel application.

dependencies:
  flutter:
    sdk: flutter
  get: ^4.6.6
`

func newProjectFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "pubspec.yaml", []byte(testManifest), 0644))
	return fs
}

func readProjectFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestRunInit(t *testing.T) {
	fs := newProjectFs(t)

	require.NoError(t, runInit(fs, ".", false))

	mainDart := readProjectFile(t, fs, "lib/main.dart")
	assert.Contains(t, mainDart, "initialRoute: '/home'")
	assert.Contains(t, mainDart, "title: 'Travel App'")

	registry, err := routes.Load(fs, ".")
	require.NoError(t, err)
	assert.True(t, routes.HasRoute(registry, "/home"))

	for _, path := range []string{
		"lib/controllers/home_controller.dart",
		"lib/bindings/home_binding.dart",
		"lib/screens/home_screen.dart",
	} {
		exists, ferr := afero.Exists(fs, path)
		require.NoError(t, ferr)
		assert.True(t, exists, "%s should be created", path)
	}
}

func TestRunInit_AlreadyInitialized(t *testing.T) {
	fs := newProjectFs(t)
	require.NoError(t, runInit(fs, ".", false))

	err := runInit(fs, ".", false)
	require.Error(t, err)
	assert.Equal(t, "E003", errors.CodeOf(err))
}

func TestRunInit_ForceKeepsPagesRouted(t *testing.T) {
	fs := newProjectFs(t)
	require.NoError(t, runInit(fs, ".", false))

	custom := "// custom controller\n"
	require.NoError(t, afero.WriteFile(fs,
		"lib/controllers/home_controller.dart", []byte(custom), 0644))

	require.NoError(t, runInit(fs, ".", true))

	// Existing artifacts survive the re-init untouched.
	assert.Equal(t, custom, readProjectFile(t, fs, "lib/controllers/home_controller.dart"))

	// The rewritten shell and registry still agree on the home route.
	assert.Contains(t, readProjectFile(t, fs, "lib/main.dart"), "initialRoute: '/home'")
	registry, err := routes.Load(fs, ".")
	require.NoError(t, err)
	assert.True(t, routes.HasRoute(registry, "/home"))
	assert.Equal(t, 1, strings.Count(registry, "name: '/home'"))
}

func TestRunInit_NotAFlutterProject(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := runInit(fs, ".", false)
	require.Error(t, err)
	assert.Equal(t, "E001", errors.CodeOf(err))
}
