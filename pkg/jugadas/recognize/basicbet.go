package recognize

import (
	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/jugadas/parser/pkg/jugadas/patterns"
	"github.com/shopspring/decimal"
)

// newBasicBet builds priority-50's BasicBet recognizer, the fallback
// claimant for any line carrying at least one bet number: a Fijo bet,
// plus a Corrido bet when the line's "con A y B" clause gives a second
// amount.
func newBasicBet(cfg Config) Recognizer {
	return Recognizer{
		Name:     "BasicBet",
		Priority: 50,
		CanClaim: func(line string, _ *BlockContext) bool {
			return hasAnyNumber(BeforeFirstCon(line))
		},
		Process: func(line string, ctx *BlockContext) (Outcome, error) {
			return basicBetProcess(line, ctx, cfg)
		},
	}
}

func basicBetProcess(line string, ctx *BlockContext, cfg Config) (Outcome, error) {
	numbers := ExtractNumbers(BeforeFirstCon(line))
	if len(numbers) == 0 {
		return Outcome{}, nil
	}

	m := patterns.ReCon.FindStringSubmatch(line)
	var a, b string
	if m != nil {
		a, b = m[1], m[2]
	}

	unit := ctx.FijoDefault()
	if a != "" {
		if v, err := decimal.NewFromString(a); err == nil {
			unit = v
		}
	}
	n := int64(len(numbers))
	details := []model.DetalleApuesta{{
		Kind:         model.Fijo,
		Numbers:      numbers,
		UnitAmount:   unit,
		Amount:       unit.Mul(decimal.NewFromInt(n)),
		OriginalLine: line,
	}}

	if b != "" {
		if v, err := decimal.NewFromString(b); err == nil {
			details = append(details, model.DetalleApuesta{
				Kind:         model.Corrido,
				Numbers:      numbers,
				UnitAmount:   v,
				Amount:       v.Mul(decimal.NewFromInt(n)),
				OriginalLine: line,
			})
		}
	}

	return Outcome{Details: details}, nil
}
