package expand

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jugadas/parser/pkg/jugadas/patterns"
)

// Note records one text-mode expansion performed in place, for diagnostics.
type Note struct {
	OriginalToken string
	ExpandedList  []string
	PatternType   string
}

// ExpandText rewrites VOLTEO, RANGO, DECENA, TERMINAL, PARES_RELATIVOS, and
// CENTENAS_TODAS matches in place, in that order, replacing each match with
// its space-separated expansion. A match that fails to expand (bad bounds,
// cap exceeded) is left unchanged in the text.
func ExpandText(text string) (string, []Note) {
	var notes []Note

	text, notes = expandPattern(text, patterns.ReVolteo, "Volteo", notes, func(m []string) ([]string, bool) {
		out, err := Volteo(m[1])
		return out, err == nil
	})
	text, notes = expandPattern(text, patterns.ReRango, "Rango", notes, func(m []string) ([]string, bool) {
		out, err := Rango(m[1], m[2])
		return out, err == nil
	})
	text, notes = expandPattern(text, patterns.ReDecena, "Decena", notes, func(m []string) ([]string, bool) {
		out, err := Decena(m[1])
		return out, err == nil
	})
	text, notes = expandPattern(text, patterns.ReTerminal, "Terminal", notes, func(m []string) ([]string, bool) {
		out, err := Terminal(m[1])
		return out, err == nil
	})
	text, notes = expandPattern(text, patterns.ReParesRelativos, "ParesRelativos", notes, func(m []string) ([]string, bool) {
		k, kerr := strconv.Atoi(m[2])
		if kerr != nil {
			return nil, false
		}
		out, err := ParesRelativos(m[1], k)
		return out, err == nil
	})
	text, notes = expandPattern(text, patterns.ReCentenasTodas, "CentenasTodas", notes, func(m []string) ([]string, bool) {
		nums := strings.Fields(strings.ReplaceAll(m[1], ",", " "))
		out, err := CentenasTodas(nums)
		if err != nil {
			return nil, false
		}
		if m[2] != "" {
			out = append(out, "con", m[2])
		}
		return out, true
	})

	return text, notes
}

// expandPattern replaces every match of re in text using expandFn, which
// returns the replacement tokens (or ok=false to leave the match
// unchanged). Matches are processed left to right against the original
// text, copying the unmatched spans between them into a builder, so every
// match offset stays valid.
func expandPattern(text string, re *regexp.Regexp, patternType string, notes []Note, expandFn func([]string) ([]string, bool)) (string, []Note) {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text, notes
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		groups := submatches(text, loc)
		replacement, ok := expandFn(groups)
		if !ok {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(strings.Join(replacement, " "))
		last = end
		notes = append(notes, Note{OriginalToken: text[start:end], ExpandedList: replacement, PatternType: patternType})
	}
	b.WriteString(text[last:])
	return b.String(), notes
}

func submatches(text string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			out[i/2] = ""
			continue
		}
		out[i/2] = text[loc[i]:loc[i+1]]
	}
	return out
}
