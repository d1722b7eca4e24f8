// Package scaffold generates GetX artifacts inside a validated Flutter
// project.
//
// A resource scaffolds up to three Dart files, one per Kind:
//
//   - lib/controllers/<segments>/<snake>_controller.dart
//   - lib/bindings/<segments>/<snake>_binding.dart
//   - lib/screens/<segments>/<snake>_screen.dart
//
// Every artifact of a kind shares one fixed skeleton with three
// substitution points: the type-name stem, the controller import, and the
// display label. Bindings and screens import their controller; the screen
// is a GetView over it.
//
// # Conflict gate
//
// Composite generation (a page) checks every target path and the route
// signature before the first write. Any hit aborts the whole run, so a
// reported conflict never coexists with a partial write from the same run.
// The gate is check-then-act: it does not guard against a concurrent
// invocation mutating the project between check and write.
package scaffold
