package recognize

import (
	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/jugadas/parser/pkg/jugadas/patterns"
	"github.com/shopspring/decimal"
)

// newParle builds priority-60's Parle recognizer: PARLE_EXPLICITO (NN*NN
// or NNxNN), PARLE_INLINE (a trailing "p M" over the preceding numbers),
// and the composite "numbers con A parle con M" form.
func newParle() Recognizer {
	return Recognizer{
		Name:     "Parle",
		Priority: 60,
		CanClaim: parleCanClaim,
		Process:  parleProcess,
	}
}

func parleCanClaim(line string, _ *BlockContext) bool {
	return patterns.ReParleExplicito.MatchString(line) ||
		patterns.ReParleKeyword.MatchString(line) ||
		patterns.ReParleInline.MatchString(line)
}

func parleProcess(line string, ctx *BlockContext) (Outcome, error) {
	switch {
	case patterns.ReParleExplicito.MatchString(line):
		return parleExplicito(line, ctx)
	case patterns.ReParleKeyword.MatchString(line):
		return parleKeyword(line, ctx)
	default:
		return parleInline(line, ctx)
	}
}

func parleExplicito(line string, ctx *BlockContext) (Outcome, error) {
	m := patterns.ReParleExplicito.FindStringSubmatch(line)
	a, b := m[1], m[2]
	unit := parleKeywordAmount(line, ctx)

	leading := leadingFijoDetails(line, patterns.ReParleExplicito.FindStringIndex(line)[0])

	detail := model.DetalleApuesta{
		Kind:         model.Parle,
		Numbers:      []string{a, b},
		Pairs:        []model.Pair{{A: a, B: b}},
		Combinations: 1,
		UnitAmount:   unit,
		Amount:       unit,
		OriginalLine: line,
	}
	details := append(leading, detail)
	return Outcome{Details: details}, nil
}

func parleKeyword(line string, ctx *BlockContext) (Outcome, error) {
	keywordLoc := keywordIndex(line, "parle")
	numbers := ExtractNumbers(BeforeFirstCon(line[:keywordLoc]))
	if len(numbers) < 2 {
		return Outcome{}, nil
	}
	unit, err := decimal.NewFromString(patterns.ReParleKeyword.FindStringSubmatch(line)[1])
	if err != nil {
		return Outcome{}, nil
	}
	combos := model.Combinations(len(numbers))
	detail := model.DetalleApuesta{
		Kind:         model.Parle,
		Numbers:      numbers,
		Combinations: combos,
		UnitAmount:   unit,
		Amount:       unit.Mul(decimal.NewFromInt(int64(combos))),
		OriginalLine: line,
	}
	leading := leadingFijoDetails(line, keywordLoc)
	details := append(leading, detail)
	return Outcome{Details: details}, nil
}

func parleInline(line string, ctx *BlockContext) (Outcome, error) {
	loc := patterns.ReParleInline.FindStringSubmatchIndex(line)
	if loc == nil {
		return Outcome{}, nil
	}
	m := patterns.ReParleInline.FindStringSubmatch(line)
	numbers := ExtractNumbers(BeforeFirstCon(line[:loc[0]]))
	if len(numbers) < 2 {
		return Outcome{}, nil
	}
	unit, err := decimal.NewFromString(m[1])
	if err != nil {
		return Outcome{}, nil
	}
	combos := model.Combinations(len(numbers))
	detail := model.DetalleApuesta{
		Kind:         model.Parle,
		Numbers:      numbers,
		Combinations: combos,
		UnitAmount:   unit,
		Amount:       unit.Mul(decimal.NewFromInt(int64(combos))),
		OriginalLine: line,
	}
	leading := leadingFijoDetails(line, loc[0])
	details := append(leading, detail)
	return Outcome{Details: details}, nil
}

// leadingFijoDetails builds the Fijo and (if present) Corrido details from
// a "con A [y B]" clause that precedes boundary — the composite form
// where a stake clause and a parle clause share one line. Returns an
// empty slice when no such clause exists.
func leadingFijoDetails(line string, boundary int) []model.DetalleApuesta {
	a, b, ok := conClauseBefore(line, boundary)
	if !ok {
		return nil
	}
	numbers := ExtractNumbers(BeforeFirstCon(line))
	if len(numbers) == 0 {
		return nil
	}
	av, err := decimal.NewFromString(a)
	if err != nil {
		return nil
	}
	n := int64(len(numbers))
	details := []model.DetalleApuesta{{
		Kind:         model.Fijo,
		Numbers:      numbers,
		UnitAmount:   av,
		Amount:       av.Mul(decimal.NewFromInt(n)),
		OriginalLine: line,
	}}
	if b != "" {
		if bv, err := decimal.NewFromString(b); err == nil {
			details = append(details, model.DetalleApuesta{
				Kind:         model.Corrido,
				Numbers:      numbers,
				UnitAmount:   bv,
				Amount:       bv.Mul(decimal.NewFromInt(n)),
				OriginalLine: line,
			})
		}
	}
	return details
}

// parleKeywordAmount returns the "parle con M" amount when present,
// otherwise falls back to the line's general con-clause or stake
// carryover (for a bare "NN*NN" line with no explicit parle stake).
func parleKeywordAmount(line string, ctx *BlockContext) decimal.Decimal {
	if m := patterns.ReParleKeyword.FindStringSubmatch(line); m != nil {
		if v, err := decimal.NewFromString(m[1]); err == nil {
			return v
		}
	}
	return conAmount(line, ctx)
}
