package routes

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/gex-dev/gex/internal/errors"
)

// FilePath is the registry location relative to the project root.
const FilePath = "lib/routes/app_routes.dart"

var (
	// importLinePattern matches one Dart import statement, used to find the
	// insertion point for new imports.
	importLinePattern = regexp.MustCompile(`(?m)^import\s+.+;`)

	// routeListPattern matches the route-list assignment. Group 1 captures
	// an optional element-type annotation (<GetPage>), group 2 the bracketed
	// body. Both the typed and the untyped shape are recognized; anything
	// else is a format mismatch.
	routeListPattern = regexp.MustCompile(`(?s)\broutes\s*=\s*(<[^>\n]+>)?\s*\[(.*?)\];`)
)

// Patch returns the registry text with the entry's imports inserted and its
// GetPage literal appended to the route list. The transform is purely
// textual: existing entries are preserved verbatim, imports already present
// are left untouched, and the matched list shape (typed or untyped) is kept.
// Patch never writes; callers persist the result with Save in one shot.
func Patch(src string, e Entry) (string, error) {
	for _, imp := range []string{e.BindingImport, e.ScreenImport} {
		src = ensureImport(src, ImportLine(imp))
	}

	m := routeListPattern.FindStringSubmatchIndex(src)
	if m == nil {
		return "", errors.New("E031")
	}

	bodyStart, bodyEnd := m[4], m[5]
	body := src[bodyStart:bodyEnd]

	var newBody string
	if strings.TrimSpace(body) == "" {
		newBody = "\n  " + e.Literal() + "\n"
	} else {
		newBody = strings.TrimRight(body, " \t\r\n") + "\n  " + e.Literal() + "\n"
	}

	return src[:bodyStart] + newBody + src[bodyEnd:], nil
}

// ensureImport inserts importLine on its own line after the last existing
// import statement, or at the top of the file when there is none.
// Already-present imports are detected by literal containment, so insertion
// is idempotent. The insertion anchor is the end of the last import's line,
// which keeps a trailing comment on that line attached to its import.
func ensureImport(src, importLine string) string {
	if strings.Contains(src, importLine) {
		return src
	}

	matches := importLinePattern.FindAllStringIndex(src, -1)
	if len(matches) == 0 {
		return importLine + "\n" + src
	}

	last := matches[len(matches)-1][1]
	if nl := strings.IndexByte(src[last:], '\n'); nl >= 0 {
		last += nl
	} else {
		last = len(src)
	}
	return src[:last] + "\n" + importLine + src[last:]
}

// HasRoute reports whether the registry text already declares a route with
// the given name.
func HasRoute(src, name string) bool {
	return strings.Contains(src, Entry{Name: name}.Signature())
}

// Load reads the registry file under root.
func Load(fs afero.Fs, root string) (string, error) {
	path := filepath.Join(root, FilePath)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", errors.New("E030").
			WithSuggestion("Run 'gex init' to create the route registry").
			Wrap(err)
	}
	return string(data), nil
}

// Save rewrites the registry file under root with the full new text.
func Save(fs afero.Fs, root, text string) error {
	path := filepath.Join(root, FilePath)
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New("E040").Wrap(err)
	}
	if err := afero.WriteFile(fs, path, []byte(text), 0644); err != nil {
		return errors.New("E040").Wrap(err)
	}
	return nil
}
