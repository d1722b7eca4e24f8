package naming

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gex-dev/gex/internal/errors"
)

// Resource is a parsed resource path with its derived naming forms.
type Resource struct {
	// Folders holds the snake_cased directory segments, every path
	// segment except the last.
	Folders []string

	// Snake is the snake_case form of the last segment, used for file names.
	Snake string

	// Pascal is the PascalCase form of the last segment, used as the
	// type name stem.
	Pascal string
}

// ParseResource splits a /-delimited resource path (e.g. "Booking/Flight")
// into folder segments and the resource name, deriving the snake_case and
// PascalCase forms of the name.
func ParseResource(raw string) (Resource, error) {
	var segments []string
	for _, seg := range strings.Split(raw, "/") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return Resource{}, errors.New("E010").
			WithDetail(fmt.Sprintf("%q does not name a resource.", raw))
	}

	last := segments[len(segments)-1]
	r := Resource{
		Snake:  ToSnakeCase(last),
		Pascal: ToPascalCase(last),
	}
	for _, seg := range segments[:len(segments)-1] {
		r.Folders = append(r.Folders, ToSnakeCase(seg))
	}
	return r, nil
}

// RouteName returns the navigation route for the resource, e.g.
// "/booking/flight". Folder segments and the snake name are joined with
// slashes; underscores are stripped so multi-word names stay one segment.
func (r Resource) RouteName() string {
	parts := make([]string, 0, len(r.Folders)+1)
	parts = append(parts, r.Folders...)
	parts = append(parts, r.Snake)
	return "/" + strings.ReplaceAll(strings.Join(parts, "/"), "_", "")
}

// FileName returns the artifact file name for the resource,
// e.g. FileName("controller", "dart") -> "flight_controller.dart".
func (r Resource) FileName(kind, ext string) string {
	return r.Snake + "_" + kind + "." + ext
}

// ToSnakeCase converts a name to snake_case. A separator is inserted before
// each uppercase letter that follows a lowercase letter or digit, then the
// whole string is lowercased:
//
//	FlightBooking   -> flight_booking
//	flight_booking  -> flight_booking
//	flightV2Booking -> flight_v2_booking
func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return b.String()
}

// ToPascalCase converts a name to PascalCase. The input is split on
// underscores, hyphens, and whitespace; the first character of each part is
// uppercased and the rest is left unchanged:
//
//	flight_booking -> FlightBooking
//	flight-booking -> FlightBooking
//	flightBooking  -> FlightBooking
//
// Internal casing is preserved on purpose, so "flightV2booking" keeps its
// capital V.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var b strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// ToDisplayName inserts a space before each internal capital of a PascalCase
// name, producing human-readable label text ("FlightBooking" -> "Flight
// Booking"). Purely cosmetic; used only inside generated screen bodies.
func ToDisplayName(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
