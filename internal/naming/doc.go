// Package naming converts raw resource paths into the naming forms used
// across generated code.
//
// A resource path like "Booking/Flight" yields folder segments in
// snake_case, a snake_case file-name stem, and a PascalCase type-name stem.
// The two case transforms are deliberately simple and deterministic: snake
// conversion lowercases everything after inserting separators at
// lower-to-upper boundaries, while Pascal conversion only uppercases the
// first character of each part and preserves internal casing. That
// asymmetry is part of the contract; generated names must match whatever
// convention the project already uses.
package naming
