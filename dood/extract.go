package dood

import (
	"regexp"

	"github.com/samber/mo"
)

// The two patterns the pipeline depends on. Both carry a single capture group.
var (
	// passMD5Pattern matches the quoted pass_md5 path inside the player bootstrap call.
	passMD5Pattern = regexp.MustCompile(`\$\.get\(\s*['"]([^'"]*/pass_md5/[^'"]+)['"]`)

	// tokenPattern matches the alphanumeric token query parameter embedded in the page.
	tokenPattern = regexp.MustCompile(`token=([A-Za-z0-9]+)`)
)

// extract applies a single-capture-group pattern to text and returns the
// first capture, or None when the pattern does not match.
func extract(pattern *regexp.Regexp, text string) mo.Option[string] {
	match := pattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return mo.None[string]()
	}
	return mo.Some(match[1])
}
