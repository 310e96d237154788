// Package liketoregex translates SQL LIKE patterns ('%' = any sequence,
// '_' = any single character, doubled as literal escapes) into anchored,
// case-insensitive regular expressions, per spec.md §4.H.
package liketoregex

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// Translate converts a LIKE pattern into the anchored regex source
// described by §4.H's table, processing the pattern left-to-right with a
// one-character lookahead: a doubled '%%' or '__' becomes the literal
// character, otherwise '%' becomes ".*" and '_' becomes ".{1}"; every other
// rune is regex-escaped and passed through untouched.
func Translate(pattern string) string {
	runes := []rune(pattern)
	var sb strings.Builder
	sb.WriteString("^")

	for i := 0; i < len(runes); {
		ch := runes[i]
		if ch == '%' || ch == '_' {
			if i+1 < len(runes) && runes[i+1] == ch {
				sb.WriteString(regexp.QuoteMeta(string(ch)))
				i += 2
				continue
			}
			if ch == '%' {
				sb.WriteString(".*")
			} else {
				sb.WriteString(".{1}")
			}
			i++
			continue
		}
		sb.WriteString(regexp.QuoteMeta(string(ch)))
		i++
	}

	sb.WriteString("$")
	return sb.String()
}

// Match reports whether text satisfies the LIKE pattern, case-insensitively
// (§4.F's Like/IsLike/InLike contract). Matching runs on regexp2 — the
// .NET-flavored backtracking engine this corpus reaches for whenever a
// pattern's provenance is Windows/.NET-shaped, as this one's LIKE/DateFormat
// siblings are — rather than the RE2-based standard library, even though
// today's translated patterns (".*", ".{1}", literal runs) never exercise a
// backtracking-only feature.
func Match(text, pattern string) (bool, error) {
	re, err := regexp2.Compile(Translate(pattern), regexp2.IgnoreCase)
	if err != nil {
		return false, err
	}
	return re.MatchString(text)
}
