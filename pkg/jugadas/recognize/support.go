package recognize

import (
	"regexp"
	"strings"

	"github.com/jugadas/parser/pkg/jugadas/expand"
	"github.com/jugadas/parser/pkg/jugadas/patterns"
)

var reConBoundary = regexp.MustCompile(`(?i)\bcon\b`)

// BeforeFirstCon returns the substring of line before its first "con"
// keyword, or the whole line if "con" never appears. This is the number
// extractor's boundary: numbers embedded in amount tokens after "con"
// must never be harvested as bet numbers.
func BeforeFirstCon(line string) string {
	loc := reConBoundary.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[:loc[0]]
}

// ExtractNumbers finds every 2-, 3-, or 4-digit number token in s, in
// order, splitting any 4-digit token into two 2-digit canonical numbers.
func ExtractNumbers(s string) []string {
	matches := patterns.ReNumberToken.FindAllString(s, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) == 4 {
			a, b, ok := expand.SplitFourDigit(m)
			if ok {
				out = append(out, a, b)
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// hasAnyNumber reports whether s contains at least one 2-4 digit token.
func hasAnyNumber(s string) bool {
	return patterns.ReNumberToken.MatchString(s)
}

// conClauseBefore returns the (A, B) amounts of the first "con A [y B]"
// clause that appears strictly before byte offset boundary in line. It is
// used by the Parle recognizer's composite forms to separate a leading
// stake clause from a trailing "parle con M" / "candado con M" keyword
// clause that also happens to match ReCon's grammar.
func conClauseBefore(line string, boundary int) (a, b string, ok bool) {
	loc := patterns.ReCon.FindStringSubmatchIndex(line)
	if loc == nil || loc[0] >= boundary {
		return "", "", false
	}
	a = line[loc[2]:loc[3]]
	if loc[4] >= 0 {
		b = line[loc[4]:loc[5]]
	}
	return a, b, true
}

// keywordIndex returns the byte offset of the first case-insensitive
// occurrence of keyword in line, or -1 if absent.
func keywordIndex(line, keyword string) int {
	return strings.Index(strings.ToLower(line), strings.ToLower(keyword))
}

// dedupPreserveOrder returns numbers with exact duplicates removed,
// keeping first occurrence order. No recognizer calls it at present.
func dedupPreserveOrder(numbers []string) []string {
	seen := make(map[string]struct{}, len(numbers))
	out := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
