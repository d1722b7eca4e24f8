package naming

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestToSnakeCase_Idempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.StringMatching(`[A-Za-z0-9_-]{0,20}`).Draw(rt, "s")

		once := ToSnakeCase(s)
		twice := ToSnakeCase(once)

		require.Equal(t, once, twice, "second conversion should be a no-op")
	})
}

func TestToSnakeCase_NeverUppercase(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.StringMatching(`[A-Za-z0-9_-]{0,20}`).Draw(rt, "s")

		for _, r := range ToSnakeCase(s) {
			require.False(t, unicode.IsUpper(r), "output should contain no uppercase runes")
		}
	})
}

func TestToPascalCase_NoSeparators(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.StringMatching(`[A-Za-z0-9 _-]{0,20}`).Draw(rt, "s")

		got := ToPascalCase(s)
		require.NotContains(t, got, "_", "underscores should be consumed")
		require.NotContains(t, got, "-", "hyphens should be consumed")
		require.NotContains(t, got, " ", "spaces should be consumed")
	})
}

func TestSnakePascal_RoundTrip(t *testing.T) {
	// Canonical snake_case with parts of two or more characters survives the
	// round trip; single-character parts collapse because the Pascal form
	// puts two capitals back to back.
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.StringMatching(`[a-z][a-z0-9]{1,8}(_[a-z][a-z0-9]{1,8}){0,3}`).Draw(rt, "s")

		require.Equal(t, s, ToSnakeCase(ToPascalCase(s)))
	})
}

func TestRouteName_Shape(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		segment := rapid.StringMatching(`[A-Za-z][A-Za-z0-9_]{0,8}`)
		n := rapid.IntRange(1, 3).Draw(rt, "n")

		var parts []string
		for i := 0; i < n; i++ {
			parts = append(parts, segment.Draw(rt, "segment"))
		}
		raw := strings.Join(parts, "/")

		r, err := ParseResource(raw)
		require.NoError(t, err)

		route := r.RouteName()
		require.True(t, strings.HasPrefix(route, "/"), "route should start with a slash")
		require.NotContains(t, route, "_", "route should contain no underscores")
		for _, ch := range route {
			require.False(t, unicode.IsUpper(ch), "route should be lowercase")
		}
	})
}
