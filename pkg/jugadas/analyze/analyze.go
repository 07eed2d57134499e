// Package analyze implements the Analyzer: per-number frequency,
// pattern-type usage, and a per-Jugada complexity score, aggregated the
// way pkg/korel/analytics.Analyzer aggregates document-level token stats,
// then normalized into a bounded score rather than a raw count.
package analyze

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/jugadas/parser/pkg/jugadas/patterns"
)

// Analyzer aggregates number-frequency and pattern-usage stats across
// however many Jugadas it is fed.
type Analyzer struct {
	numberFreq   map[string]int64
	patternUsage map[model.PatternType]int64
	kindUsage    map[model.BetKind]int64
	jugadaCount  int64
}

// New returns an empty Analyzer.
func New() *Analyzer {
	return &Analyzer{
		numberFreq:   make(map[string]int64),
		patternUsage: make(map[model.PatternType]int64),
		kindUsage:    make(map[model.BetKind]int64),
	}
}

// Process folds one Jugada's details into the running aggregates.
func (a *Analyzer) Process(j model.Jugada) {
	a.jugadaCount++
	for _, d := range j.Details {
		a.kindUsage[d.Kind]++
		for _, n := range d.Numbers {
			a.numberFreq[n]++
		}
		if d.Expansion != nil {
			a.patternUsage[d.Expansion.PatternType]++
		}
	}
}

// NumberFrequency returns the accumulated per-number frequency table.
func (a *Analyzer) NumberFrequency() map[string]int64 {
	out := make(map[string]int64, len(a.numberFreq))
	for k, v := range a.numberFreq {
		out[k] = v
	}
	return out
}

// PatternCoverage reports, for each pattern type that appeared in a
// detail's Expansion, how many such details were seen across the Jugadas
// processed so far. Pattern types never seen are absent from the map.
func (a *Analyzer) PatternCoverage() map[model.PatternType]int64 {
	out := make(map[model.PatternType]int64, len(a.patternUsage))
	for k, v := range a.patternUsage {
		out[k] = v
	}
	return out
}

// TopNumbers returns the n most frequent numbers, most frequent first,
// ties broken by canonical-string order for determinism.
func (a *Analyzer) TopNumbers(n int) []string {
	type freq struct {
		number string
		count  int64
	}
	freqs := make([]freq, 0, len(a.numberFreq))
	for num, count := range a.numberFreq {
		freqs = append(freqs, freq{num, count})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].count != freqs[j].count {
			return freqs[i].count > freqs[j].count
		}
		return freqs[i].number < freqs[j].number
	})
	if n > 0 && len(freqs) > n {
		freqs = freqs[:n]
	}
	out := make([]string, len(freqs))
	for i, f := range freqs {
		out[i] = f.number
	}
	return out
}

// Complexity scores one Jugada in [0,1]: (distinct bet kinds / 6) x
// (1 + distinct special pattern types / 6), clamped to 1. A Jugada with
// bets but no special patterns scores its kind fraction alone.
func Complexity(j model.Jugada) float64 {
	kinds := make(map[model.BetKind]struct{})
	patternsUsed := make(map[model.PatternType]struct{})
	for _, d := range j.Details {
		kinds[d.Kind] = struct{}{}
		if d.Expansion != nil {
			patternsUsed[d.Expansion.PatternType] = struct{}{}
		}
	}
	if len(kinds) == 0 {
		return 0
	}
	const maxKinds = 6
	const maxPatterns = 6 // Volteo, Rango, Decena, Terminal, ParesRelativos, CentenasTodas
	score := (float64(len(kinds)) / maxKinds) * (1 + float64(len(patternsUsed))/maxPatterns)
	if score > 1 {
		score = 1
	}
	return score
}

// Summary renders a human-readable one-line summary of the accumulated
// stats, the way a CLI or log line would want it, via go-humanize's comma
// formatting — this formatting concern stays out of the structured
// aggregate types above.
func (a *Analyzer) Summary(totalCalculated string) string {
	totalNumbers := int64(0)
	for _, c := range a.numberFreq {
		totalNumbers += c
	}
	return fmt.Sprintf("%s numbers across %s jugadas, $%s total",
		humanize.Comma(totalNumbers), humanize.Comma(a.jugadaCount), totalCalculated)
}

// Describe reports the patterns catalog's own coverage descriptors,
// forwarded for callers building a full coverage report.
func Describe() []patterns.Descriptor {
	return patterns.Describe()
}
