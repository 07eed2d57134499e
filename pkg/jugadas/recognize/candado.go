package recognize

import (
	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/jugadas/parser/pkg/jugadas/patterns"
	"github.com/shopspring/decimal"
)

// newCandado builds priority-80's Candado recognizer: a set of numbers
// played against every pairwise combination, with an optional leading
// "con F [y C]" stake clause and a mandatory trailing "candado con M".
func newCandado() Recognizer {
	return Recognizer{
		Name:     "Candado",
		Priority: 80,
		CanClaim: func(line string, _ *BlockContext) bool {
			return patterns.ReCandadoFull.MatchString(line)
		},
		Process: candadoProcess,
	}
}

func candadoProcess(line string, ctx *BlockContext) (Outcome, error) {
	m := patterns.ReCandadoFull.FindStringSubmatch(line)
	numbers := ExtractNumbers(m[1])
	if len(numbers) < 2 {
		return Outcome{}, nil
	}

	var details []model.DetalleApuesta
	n := int64(len(numbers))

	if m[2] != "" {
		f, err := decimal.NewFromString(m[2])
		if err == nil {
			details = append(details, model.DetalleApuesta{
				Kind:         model.Fijo,
				Numbers:      numbers,
				UnitAmount:   f,
				Amount:       f.Mul(decimal.NewFromInt(n)),
				OriginalLine: line,
			})
		}
	}
	if m[3] != "" {
		c, err := decimal.NewFromString(m[3])
		if err == nil {
			details = append(details, model.DetalleApuesta{
				Kind:         model.Corrido,
				Numbers:      numbers,
				UnitAmount:   c,
				Amount:       c.Mul(decimal.NewFromInt(n)),
				OriginalLine: line,
			})
		}
	}

	mAmount, err := decimal.NewFromString(m[4])
	if err != nil {
		return Outcome{}, nil
	}
	combos := model.Combinations(len(numbers))
	unit := mAmount
	if combos > 0 {
		unit = mAmount.Div(decimal.NewFromInt(int64(combos)))
	}
	details = append(details, model.DetalleApuesta{
		Kind:         model.Candado,
		Numbers:      numbers,
		UnitAmount:   unit,
		Amount:       mAmount,
		Combinations: combos,
		OriginalLine: line,
	})

	return Outcome{Details: details}, nil
}
