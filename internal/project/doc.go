// Package project validates that the working directory is a Flutter project
// and extracts the package name from pubspec.yaml.
//
// Recognition is deliberately shallow: the manifest is scanned line by line
// for a flutter: entry and a name: key, with no YAML parsing. Anything the
// scan does not recognize is ignored, and a manifest without the expected
// lines fails validation. The package name feeds every generated
// package: import, so validation runs once per command before any other
// work.
package project
