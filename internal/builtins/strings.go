package builtins

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/exprscript/internal/ast"
	"github.com/cwbudde/exprscript/internal/coerce"
	"github.com/cwbudde/exprscript/internal/liketoregex"
	"github.com/cwbudde/exprscript/internal/value"
)

func evalString(ev ast.Evaluator, node ast.Node, values map[string]string) (string, error) {
	v, err := ev.Eval(node, values)
	if err != nil {
		return "", err
	}
	return coerce.ToString(v)
}

// normalize applies NFC so rune-counting string functions (Len, Left,
// Right, Mid) count composed characters the way a host language's native
// string length would, rather than splitting a base letter from a
// combining accent into two runes.
func normalize(s string) string {
	return norm.NFC.String(s)
}

// Concat implements Concat/Concatenate(...): concatenation of stringified
// arguments.
func Concat(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	var sb strings.Builder
	for _, a := range args {
		s, err := evalString(ev, a, values)
		if err != nil {
			return value.Null, err
		}
		sb.WriteString(s)
	}
	return value.Str(sb.String()), nil
}

// Exact implements Exact(a,b): case-sensitive string equality.
func Exact(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Exact", 2, args); err != nil {
		return value.Null, err
	}
	a, err := evalString(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	b, err := evalString(ev, args[1], values)
	if err != nil {
		return value.Null, err
	}
	return value.Boolean(a == b), nil
}

// Find implements Find(needle, haystack, start?): case-insensitive
// first-match position, 1-based, returned as 1 + the byte offset of the
// first match; 0 if not found. start is 1-based and clamped to >= 1.
func Find(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := between("Find", 2, 3, args); err != nil {
		return value.Null, err
	}
	needle, err := evalString(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	haystack, err := evalString(ev, args[1], values)
	if err != nil {
		return value.Null, err
	}
	start := 0
	if len(args) == 3 {
		v, err := ev.Eval(args[2], values)
		if err != nil {
			return value.Null, err
		}
		n, err := coerce.ToInteger(v)
		if err != nil {
			return value.Null, err
		}
		start = int(n) - 1
		if start < 0 {
			start = 0
		}
	}
	if start > len(haystack) {
		return value.Num(0), nil
	}
	idx := strings.Index(strings.ToLower(haystack[start:]), strings.ToLower(needle))
	if idx < 0 {
		return value.Num(0), nil
	}
	return value.Num(float64(start + idx + 1)), nil
}

// Substitute implements Substitute(text, find, replace): replace all
// case-insensitive, regex-escaped matches of find in text with replace.
func Substitute(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Substitute", 3, args); err != nil {
		return value.Null, err
	}
	text, err := evalString(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	find, err := evalString(ev, args[1], values)
	if err != nil {
		return value.Null, err
	}
	replace, err := evalString(ev, args[2], values)
	if err != nil {
		return value.Null, err
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(find))
	if err != nil {
		return value.Null, err
	}
	return value.Str(re.ReplaceAllLiteralString(text, replace)), nil
}

// Fixed implements Fixed(n, decimals=2, no_commas=true): fixed-decimal
// string, optionally grouped with en-US thousands separators.
func Fixed(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := between("Fixed", 1, 3, args); err != nil {
		return value.Null, err
	}
	n, err := evalNumber(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	decimals := 2
	if len(args) >= 2 {
		d, err := evalNumber(ev, args[1], values)
		if err != nil {
			return value.Null, err
		}
		decimals = int(d)
		if decimals < 0 {
			decimals = 0
		}
	}
	noCommas := true
	if len(args) == 3 {
		b, err := evalBool(ev, args[2], values)
		if err != nil {
			return value.Null, err
		}
		noCommas = b
	}
	if noCommas {
		return value.Str(fmt.Sprintf("%.*f", decimals, n)), nil
	}
	p := message.NewPrinter(language.English)
	return value.Str(p.Sprintf("%v", number.Decimal(n, number.Scale(decimals)))), nil
}

// Left implements Left(s, k): the first k characters; negative k clamps
// to 0.
func Left(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Left", 2, args); err != nil {
		return value.Null, err
	}
	s, k, err := evalStringAndCount(ev, args, values)
	if err != nil {
		return value.Null, err
	}
	runes := []rune(normalize(s))
	if k < 0 {
		k = 0
	}
	if k > len(runes) {
		k = len(runes)
	}
	return value.Str(string(runes[:k])), nil
}

// Right implements Right(s, k): the last k characters; negative k clamps
// to 0.
func Right(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Right", 2, args); err != nil {
		return value.Null, err
	}
	s, k, err := evalStringAndCount(ev, args, values)
	if err != nil {
		return value.Null, err
	}
	runes := []rune(normalize(s))
	if k < 0 {
		k = 0
	}
	if k > len(runes) {
		k = len(runes)
	}
	return value.Str(string(runes[len(runes)-k:])), nil
}

// Mid implements Mid(s, start1based, k): character-count slicing; start
// clamps to [1, len(s)].
func Mid(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Mid", 3, args); err != nil {
		return value.Null, err
	}
	s, err := evalString(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	startF, err := evalNumber(ev, args[1], values)
	if err != nil {
		return value.Null, err
	}
	kF, err := evalNumber(ev, args[2], values)
	if err != nil {
		return value.Null, err
	}
	runes := []rune(normalize(s))
	start := int(startF)
	if start > len(runes) {
		start = len(runes)
	}
	if start < 1 {
		start = 1
	}
	k := int(kF)
	if k < 0 {
		k = 0
	}
	end := start - 1 + k
	if end > len(runes) {
		end = len(runes)
	}
	return value.Str(string(runes[start-1 : end])), nil
}

func evalStringAndCount(ev ast.Evaluator, args []ast.Node, values map[string]string) (string, int, error) {
	s, err := evalString(ev, args[0], values)
	if err != nil {
		return "", 0, err
	}
	kF, err := evalNumber(ev, args[1], values)
	if err != nil {
		return "", 0, err
	}
	return s, int(kF), nil
}

// Len implements Len(s): character count as Num.
func Len(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Len", 1, args); err != nil {
		return value.Null, err
	}
	s, err := evalString(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	return value.Num(float64(len([]rune(normalize(s))))), nil
}

func stringTransform(name string, f func(string) string) ast.Callable {
	return func(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
		if err := exactly(name, 1, args); err != nil {
			return value.Null, err
		}
		s, err := evalString(ev, args[0], values)
		if err != nil {
			return value.Null, err
		}
		return value.Str(f(s)), nil
	}
}

// Lower implements Lower(s).
var Lower = stringTransform("Lower", strings.ToLower)

// Upper implements Upper(s).
var Upper = stringTransform("Upper", strings.ToUpper)

// Trim implements Trim(s).
var Trim = stringTransform("Trim", strings.TrimSpace)

// Text implements Text(s): identity-via-stringify.
var Text = stringTransform("Text", func(s string) string { return s })

// Capitalize implements Capitalize(s): Unicode-aware word title-casing.
// The underlying Rust engine applies a naive byte-wise uppercase to the
// first letter of each whitespace-delimited word, which breaks on
// multi-byte UTF-8 runes — spec.md flags this as "intentionally
// permissive", so this title-cases by Unicode word boundary instead of
// reproducing that bug.
var Capitalize = stringTransform("Capitalize", func(s string) string {
	return cases.Title(language.Und).String(s)
})

func firstPrefix(s string, stops map[rune]bool) string {
	for i, r := range s {
		if stops[r] {
			return s[:i]
		}
	}
	return s
}

// FirstWord implements FirstWord(s): the prefix up to the first space,
// tab, CR, LF, or sentence-punctuation rune.
func FirstWord(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("FirstWord", 1, args); err != nil {
		return value.Null, err
	}
	s, err := evalString(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	stops := map[rune]bool{' ': true, '\t': true, '\r': true, '\n': true, '.': true, ',': true, '!': true, '?': true, '¿': true}
	return value.Str(firstPrefix(s, stops)), nil
}

// FirstSentence implements FirstSentence(s): the prefix up to the first
// '.', '!', or '?'.
func FirstSentence(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("FirstSentence", 1, args); err != nil {
		return value.Null, err
	}
	s, err := evalString(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	stops := map[rune]bool{'.': true, '!': true, '?': true}
	return value.Str(firstPrefix(s, stops)), nil
}

// Split implements Split(s, sep, index0): the 0-based split part as Str,
// or Null if index0 is out of range.
func Split(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Split", 3, args); err != nil {
		return value.Null, err
	}
	s, err := evalString(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	sep, err := evalString(ev, args[1], values)
	if err != nil {
		return value.Null, err
	}
	idxF, err := evalNumber(ev, args[2], values)
	if err != nil {
		return value.Null, err
	}
	idx := int(idxF)
	parts := strings.Split(s, sep)
	if idx < 0 || idx >= len(parts) {
		return value.Null, nil
	}
	return value.Str(parts[idx]), nil
}

// NumberValue implements NumberValue(s, separator?): coerce to number,
// optionally treating the first character of separator as the decimal
// mark.
func NumberValue(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := between("NumberValue", 1, 2, args); err != nil {
		return value.Null, err
	}
	v, err := ev.Eval(args[0], values)
	if err != nil {
		return value.Null, err
	}
	var sep rune
	if len(args) == 2 {
		s, err := evalString(ev, args[1], values)
		if err != nil {
			return value.Null, err
		}
		if s != "" {
			sep = []rune(s)[0]
		}
	}
	n, err := coerce.ToNumber(v, sep)
	if err != nil {
		return value.Null, err
	}
	return value.Num(n), nil
}

func affixTest(name string, f func(s, affix string) bool) ast.Callable {
	return func(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
		if err := exactly(name, 2, args); err != nil {
			return value.Null, err
		}
		text, err := evalString(ev, args[0], values)
		if err != nil {
			return value.Null, err
		}
		affix, err := evalString(ev, args[1], values)
		if err != nil {
			return value.Null, err
		}
		return value.Boolean(f(strings.ToLower(text), strings.ToLower(affix))), nil
	}
}

// StartsWith implements StartsWith(text, prefix): case-insensitive.
var StartsWith = affixTest("StartsWith", strings.HasPrefix)

// EndsWith implements EndsWith(text, suffix): case-insensitive.
var EndsWith = affixTest("EndsWith", strings.HasSuffix)

// replaceBy implements the shared shape of ReplaceEquals/ReplaceLike:
// text is evaluated first, then keys in order up to the first match; keys
// after a match are not evaluated. Values and the default are evaluated
// lazily — only the winning branch, or the default if none wins, is ever
// evaluated.
func replaceBy(name string, matches func(text, key string) (bool, error)) ast.Callable {
	return func(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
		if err := atLeast(name, 2, args); err != nil {
			return value.Null, err
		}
		pairs := args[2:]
		if len(pairs)%2 != 0 {
			return value.Null, arityError(name, "an even number of key/value")
		}
		text, err := evalString(ev, args[0], values)
		if err != nil {
			return value.Null, err
		}
		for i := 0; i+1 < len(pairs); i += 2 {
			key, err := evalString(ev, pairs[i], values)
			if err != nil {
				return value.Null, err
			}
			ok, err := matches(text, key)
			if err != nil {
				return value.Null, err
			}
			if ok {
				return ev.Eval(pairs[i+1], values)
			}
		}
		return ev.Eval(args[1], values)
	}
}

// ReplaceEquals implements ReplaceEquals(text, default, k1, v1, ...).
var ReplaceEquals = replaceBy("ReplaceEquals", func(text, key string) (bool, error) {
	return strings.EqualFold(text, key), nil
})

// ReplaceLike implements ReplaceLike(text, default, p1, v1, ...): ki is a
// LIKE pattern.
var ReplaceLike = replaceBy("ReplaceLike", func(text, pattern string) (bool, error) {
	return liketoregex.Match(text, pattern)
})
