package routes

import "fmt"

// Entry describes one route registration: the navigation path plus the
// screen and binding types that serve it.
type Entry struct {
	// Name is the navigation route, e.g. "/booking/flight".
	Name string

	// ScreenType is the screen class name, e.g. "FlightScreen".
	ScreenType string

	// BindingType is the binding class name, e.g. "FlightBinding".
	BindingType string

	// ScreenImport is the package: import path of the screen file.
	ScreenImport string

	// BindingImport is the package: import path of the binding file.
	BindingImport string
}

// Literal returns the GetPage registration fragment appended to the route
// list, including the trailing comma.
func (e Entry) Literal() string {
	return fmt.Sprintf("GetPage(name: '%s', page: () => const %s(), binding: %s()),",
		e.Name, e.ScreenType, e.BindingType)
}

// Signature returns the opening fragment that identifies this entry inside
// the registry, used for duplicate detection.
func (e Entry) Signature() string {
	return fmt.Sprintf("name: '%s'", e.Name)
}

// ImportLine renders a Dart import statement for the given package: path.
func ImportLine(path string) string {
	return fmt.Sprintf("import '%s';", path)
}
