package scaffold

import (
	"path"
	"path/filepath"

	"github.com/gex-dev/gex/internal/naming"
)

// Kind identifies one generated artifact type.
type Kind string

const (
	KindController Kind = "controller"
	KindBinding    Kind = "binding"
	KindScreen     Kind = "screen"
)

// Kinds lists every artifact kind in generation order.
var Kinds = []Kind{KindController, KindBinding, KindScreen}

// Suffix returns the file-name suffix for the kind.
func (k Kind) Suffix() string {
	return string(k)
}

// Root returns the lib-relative directory holding artifacts of this kind.
func (k Kind) Root() string {
	switch k {
	case KindController:
		return "controllers"
	case KindBinding:
		return "bindings"
	case KindScreen:
		return "screens"
	}
	return ""
}

// TypeSuffix returns the Dart class-name suffix for the kind.
func (k Kind) TypeSuffix() string {
	switch k {
	case KindController:
		return "Controller"
	case KindBinding:
		return "Binding"
	case KindScreen:
		return "Screen"
	}
	return ""
}

// TypeName returns the Dart class name generated for the resource,
// e.g. "FlightController".
func (k Kind) TypeName(r naming.Resource) string {
	return r.Pascal + k.TypeSuffix()
}

// TargetPath returns the artifact path relative to the project root, with
// the resource's folder segments mirrored under the kind root.
func (k Kind) TargetPath(r naming.Resource) string {
	parts := make([]string, 0, len(r.Folders)+3)
	parts = append(parts, "lib", k.Root())
	parts = append(parts, r.Folders...)
	parts = append(parts, r.FileName(k.Suffix(), "dart"))
	return filepath.Join(parts...)
}

// ImportPath returns the Dart package: import for the artifact. Import
// paths always use forward slashes and drop the lib/ prefix.
func (k Kind) ImportPath(pkg string, r naming.Resource) string {
	parts := make([]string, 0, len(r.Folders)+2)
	parts = append(parts, k.Root())
	parts = append(parts, r.Folders...)
	parts = append(parts, r.FileName(k.Suffix(), "dart"))
	return "package:" + pkg + "/" + path.Join(parts...)
}
