// Package routes patches the shared route registry file that holds every
// navigable route of the generated application.
//
// The registry lives at lib/routes/app_routes.dart and is treated as text,
// not as a parsed syntax tree. Exactly two regions are recognized:
//
//   - the import block, a run of top-of-file import statements
//   - the route-list assignment, in one of two shapes:
//
//     routes = [ ... ];
//     routes = <GetPage>[ ... ];
//
// # Patching
//
// A patch inserts the binding and screen imports (skipping any already
// present) and appends one GetPage literal to the list body, preserving
// existing entries and the matched shape. The whole transform happens in
// memory on the full file text; the file is rewritten in a single write, so
// a failed patch never leaves a partially edited registry behind.
//
// # Format mismatches
//
// A registry whose route-list assignment matches neither shape is outside
// the supported surface. Patching fails instead of guessing, since a wrong
// guess would corrupt the one file the whole application navigates through.
package routes
