// Package dateformat translates .NET-style date/time format strings into
// strftime specifiers, per spec.md §4.G. The translation is purely
// textual and greedy: at every position the longest recognized .NET token
// wins, so "yyyy" is never split into two "yy" matches and "mm" (minutes)
// is never split into two "m" replacements — this also resolves the
// mm/m collision spec.md flags as a latent bug in the source engine (see
// DESIGN.md).
package dateformat

import (
	"fmt"
	"strings"
	"time"
)

// token is one recognized .NET format specifier and its strftime
// equivalent.
type token struct {
	netToken string
	strftime string
}

// tokensByLength holds every recognized token, grouped by length and
// ordered longest-first so the greedy single-pass scanner in Translate
// always prefers the longest match at each position.
var tokensByLength = [][]token{
	{ // length 7
		{"fffffff", "%7f"}, {"FFFFFFF", "%7f"},
	},
	{ // length 6
		{"ffffff", "%6f"}, {"FFFFFF", "%6f"},
	},
	{ // length 5
		{"yyyyy", "%Y"}, {"fffff", "%5f"}, {"FFFFF", "%5f"},
	},
	{ // length 4
		{"yyyy", "%Y"}, {"MMMM", "%B"}, {"dddd", "%A"}, {"ffff", "%4f"}, {"FFFF", "%4f"},
	},
	{ // length 3
		{"yyy", "%Y"}, {"MMM", "%b"}, {"ddd", "%a"}, {"fff", "%3f"}, {"FFF", "%3f"}, {"zzz", "%:z"},
	},
	{ // length 2
		{"yy", "%y"}, {"MM", "%m"}, {"dd", "%d"}, {"HH", "%H"}, {"hh", "%I"},
		{"mm", "%M"}, {"ss", "%S"}, {"ff", "%2f"}, {"FF", "%2f"}, {"tt", "%P"}, {"zz", "%z"},
	},
	{ // length 1
		{"y", "%y"}, {"M", "%m"}, {"d", "%e"}, {"H", "%k"}, {"h", "%l"},
		{"m", "%M"}, {"s", "%S"}, {"t", "%P"}, {"z", "%z"},
	},
}

// Translate converts a .NET-style date/time format string to its strftime
// equivalent. Literal characters that match no token pass through
// unchanged. Quoted text is not treated specially: a token letter inside
// quotes is translated like any other.
func Translate(format string) string {
	var sb strings.Builder
	i := 0
	for i < len(format) {
		if tok, width, ok := matchLongest(format[i:]); ok {
			sb.WriteString(tok)
			i += width
			continue
		}
		sb.WriteByte(format[i])
		i++
	}
	return sb.String()
}

func matchLongest(rest string) (strftime string, width int, ok bool) {
	return matchLongestIn(rest, tokensByLength)
}

// Format renders t according to a .NET-style format string: equivalent to
// Apply(t, Translate(netFormat)), exposed as one call for DateFormat's
// convenience.
func Format(t time.Time, netFormat string) string {
	return Apply(t, Translate(netFormat))
}

// Apply renders t against an already-translated strftime-token string (the
// output of Translate). Only the token set Translate ever emits is
// recognized; everything else passes through literally.
func Apply(t time.Time, strftimeFormat string) string {
	var sb strings.Builder
	i := 0
	for i < len(strftimeFormat) {
		if strftimeFormat[i] != '%' {
			sb.WriteByte(strftimeFormat[i])
			i++
			continue
		}
		rest := strftimeFormat[i:]
		if rendered, width, ok := applyToken(t, rest); ok {
			sb.WriteString(rendered)
			i += width
			continue
		}
		sb.WriteByte(strftimeFormat[i])
		i++
	}
	return sb.String()
}

func applyToken(t time.Time, rest string) (rendered string, width int, ok bool) {
	// Fractional-second tokens: %1f ... %7f.
	if len(rest) >= 3 && rest[0] == '%' && rest[1] >= '1' && rest[1] <= '7' && rest[2] == 'f' {
		digits := int(rest[1] - '0')
		frac := fmt.Sprintf("%09d", t.Nanosecond())[:digits]
		return frac, 3, true
	}
	if len(rest) >= 2 && rest[1] == ':' && len(rest) >= 3 && rest[2] == 'z' {
		_, offset := t.Zone()
		sign := "+"
		if offset < 0 {
			sign = "-"
			offset = -offset
		}
		return fmt.Sprintf("%s%02d:%02d", sign, offset/3600, (offset%3600)/60), 3, true
	}
	if len(rest) < 2 {
		return "", 0, false
	}
	switch rest[1] {
	case 'Y':
		return fmt.Sprintf("%04d", t.Year()), 2, true
	case 'y':
		return fmt.Sprintf("%02d", t.Year()%100), 2, true
	case 'B':
		return t.Month().String(), 2, true
	case 'b':
		return t.Month().String()[:3], 2, true
	case 'm':
		return fmt.Sprintf("%02d", int(t.Month())), 2, true
	case 'A':
		return t.Weekday().String(), 2, true
	case 'a':
		return t.Weekday().String()[:3], 2, true
	case 'd':
		return fmt.Sprintf("%02d", t.Day()), 2, true
	case 'e':
		return fmt.Sprintf("%2d", t.Day()), 2, true
	case 'H':
		return fmt.Sprintf("%02d", t.Hour()), 2, true
	case 'k':
		return fmt.Sprintf("%2d", t.Hour()), 2, true
	case 'I':
		return fmt.Sprintf("%02d", twelveHour(t.Hour())), 2, true
	case 'l':
		return fmt.Sprintf("%2d", twelveHour(t.Hour())), 2, true
	case 'M':
		return fmt.Sprintf("%02d", t.Minute()), 2, true
	case 'S':
		return fmt.Sprintf("%02d", t.Second()), 2, true
	case 'P':
		if t.Hour() < 12 {
			return "AM", 2, true
		}
		return "PM", 2, true
	case 'z':
		_, offset := t.Zone()
		sign := "+"
		if offset < 0 {
			sign = "-"
			offset = -offset
		}
		return fmt.Sprintf("%s%02d%02d", sign, offset/3600, (offset%3600)/60), 2, true
	default:
		return "", 0, false
	}
}

// goLayoutTokens maps the same .NET tokens Translate recognizes to Go's
// reference-time layout, longest-match-first like tokensByLength. This path
// is debug-only (cmd/exprscript's `parse --date-format` output) — DateFormat
// itself always renders through Apply/Format, never through time.Format,
// so the core's output never depends on Go's reference-time quirks.
var goLayoutTokens = [][]token{
	{{"yyyy", "2006"}, {"MMMM", "January"}, {"dddd", "Monday"}},
	{{"yyy", "2006"}, {"MMM", "Jan"}, {"ddd", "Mon"}, {"zzz", "-07:00"}},
	{
		{"yy", "06"}, {"MM", "01"}, {"dd", "02"}, {"HH", "15"}, {"hh", "03"},
		{"mm", "04"}, {"ss", "05"}, {"tt", "PM"}, {"zz", "-0700"},
	},
	{
		{"y", "06"}, {"M", "1"}, {"d", "2"}, {"H", "15"}, {"h", "3"},
		{"m", "4"}, {"s", "5"}, {"t", "PM"}, {"z", "-07"},
	},
}

// TranslateToGoLayout converts a .NET-style date/time format string into a
// Go reference-time layout string, for debug output only — see
// goLayoutTokens.
func TranslateToGoLayout(format string) string {
	var sb strings.Builder
	i := 0
	for i < len(format) {
		if tok, width, ok := matchLongestIn(format[i:], goLayoutTokens); ok {
			sb.WriteString(tok)
			i += width
			continue
		}
		sb.WriteByte(format[i])
		i++
	}
	return sb.String()
}

func matchLongestIn(rest string, groups [][]token) (string, int, bool) {
	for _, group := range groups {
		for _, t := range group {
			if strings.HasPrefix(rest, t.netToken) {
				return t.strftime, len(t.netToken), true
			}
		}
	}
	return "", 0, false
}

func twelveHour(h int) int {
	h = h % 12
	if h == 0 {
		return 12
	}
	return h
}
