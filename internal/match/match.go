// Package match implements the case-sensitive wildcard comparison used for
// value verification and for locating fields by value.
//
// A pattern may contain '*' (any run of characters, including none) and '?'
// (exactly one character). Every other character matches itself.
package match

import (
	"strings"

	"github.com/gobwas/glob"
)

// glob syntax beyond '*' and '?' that must be matched literally.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
	`{`, `\{`,
	`}`, `\}`,
)

// HasWildcards reports whether pattern contains '*' or '?'.
func HasWildcards(pattern string) bool {
	return strings.ContainsAny(pattern, "*?")
}

// Compile turns a wildcard pattern into a matcher.
func Compile(pattern string) (glob.Glob, error) {
	return glob.Compile(escaper.Replace(pattern))
}

// Matches reports whether actual matches pattern. An empty actual text (a
// field with no value) matches only the empty pattern or a pattern made
// entirely of '*'.
func Matches(actual, pattern string) bool {
	if !HasWildcards(pattern) {
		return actual == pattern
	}
	if actual == "" {
		return strings.Trim(pattern, "*") == ""
	}
	if strings.ContainsRune(pattern, '?') {
		// glob's '?' is not reliable on empty input or before a literal
		// following a multi-byte rune.
		return matchRunes([]rune(actual), []rune(pattern))
	}
	g, err := Compile(pattern)
	if err != nil {
		// Only reachable for malformed escapes, which the escaper rules out.
		return false
	}
	return g.Match(actual)
}

// matchRunes matches '*' and '?' rune by rune, backtracking to the last '*'
// on a mismatch.
func matchRunes(s, p []rune) bool {
	si, pi := 0, 0
	star, mark := -1, 0
	for si < len(s) {
		switch {
		case pi < len(p) && (p[pi] == '?' || p[pi] == s[si]):
			si++
			pi++
		case pi < len(p) && p[pi] == '*':
			star, mark = pi, si
			pi++
		case star >= 0:
			mark++
			si = mark
			pi = star + 1
		default:
			return false
		}
	}
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}
