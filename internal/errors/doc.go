// Package errors provides structured, actionable error messages for gex.
//
// The errors package implements the error system behind every failing
// command:
//   - Explains what went wrong in plain language
//   - Carries a stable code that scripts can match on
//   - Suggests how to fix issues
//
// # Error Categories
//
// Errors are organized into categories:
//   - project: Working-directory errors (missing pubspec.yaml, missing package name)
//   - usage: Command-line errors (missing arguments, unknown commands)
//   - conflict: Pre-flight collisions (existing files, duplicate routes)
//   - registry: Route registry errors (missing file, unrecognized route list)
//   - io: Filesystem failures while reading or writing artifacts
//
// # Error Codes
//
// Each error has a unique code (e.g., "E020") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//
// # Usage
//
//	err := errors.New("E021").
//	    WithDetail("Route '/booking/flight' is declared in lib/routes/app_routes.dart.").
//	    WithSuggestion("Pick a different resource name or remove the existing route")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E021: Route is already registered
//	//
//	//   Route '/booking/flight' is declared in lib/routes/app_routes.dart.
//	//
//	//   Hint: Pick a different resource name or remove the existing route
package errors
