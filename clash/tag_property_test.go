package clash

import (
	"net/url"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestEncodeTagProperties uses property-based testing for tag path encoding
func TestEncodeTagProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: encoding round-trips through path unescaping
	properties.Property("round trips", prop.ForAll(
		func(tag string) bool {
			decoded, err := url.PathUnescape(encodeTag(tag))
			return err == nil && decoded == tag
		},
		genTag(),
	))

	// Property: an encoded tag never contains characters that would split or
	// extend the path segment it is substituted into
	properties.Property("safe as a single path segment", prop.ForAll(
		func(tag string) bool {
			encoded := encodeTag(tag)
			return !strings.ContainsAny(encoded, "#/?")
		},
		genTag(),
	))

	// Property: hash prefixes always travel as %23
	properties.Property("hash encodes to %23", prop.ForAll(
		func(suffix string) bool {
			return strings.HasPrefix(encodeTag("#"+suffix), "%23")
		},
		alphaNumString(),
	))

	properties.TestingRun(t)
}

// alphaNumString generates arbitrary alphanumeric strings; gopter's gen
// package provides AlphaNumChar but no string-level counterpart.
func alphaNumString() gopter.Gen {
	return gen.SliceOf(gen.AlphaNumChar()).Map(func(runes []rune) string {
		return string(runes)
	})
}

// genTag generates tag-shaped strings: an optional hash prefix followed by
// alphanumerics, the format the API hands out for clans and players.
func genTag() gopter.Gen {
	return alphaNumString().Map(func(s string) string {
		return "#" + strings.ToUpper(s)
	})
}
