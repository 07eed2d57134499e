package recognize

import (
	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/jugadas/parser/pkg/jugadas/patterns"
	"github.com/shopspring/decimal"
)

// newCentena builds priority-70's Centena recognizer: bare 3-digit
// numbers played straight (CENTENA_SIMPLE), or a compound line that also
// derives a Fijo/Corrido bet on each number's last two digits
// (CENTENA_COMPUESTA).
func newCentena() Recognizer {
	return Recognizer{
		Name:     "Centena",
		Priority: 70,
		CanClaim: centenaCanClaim,
		Process:  centenaProcess,
	}
}

func centenaCanClaim(line string, _ *BlockContext) bool {
	if patterns.ReCentenaCompuestaFull.MatchString(line) {
		return true
	}
	for _, n := range ExtractNumbers(BeforeFirstCon(line)) {
		if len(n) == 3 {
			return true
		}
	}
	return false
}

func centenaProcess(line string, ctx *BlockContext) (Outcome, error) {
	if m := patterns.ReCentenaCompuestaFull.FindStringSubmatch(line); m != nil {
		return centenaCompuesta(line, ctx, m)
	}
	return centenaSimple(line, ctx)
}

func centenaSimple(line string, ctx *BlockContext) (Outcome, error) {
	numbers := centenaNumbers(ExtractNumbers(BeforeFirstCon(line)))
	if len(numbers) == 0 {
		return Outcome{}, nil
	}
	unit := conAmount(line, ctx)
	amount := unit.Mul(decimal.NewFromInt(int64(len(numbers))))
	detail := model.DetalleApuesta{
		Kind:         model.Centena,
		Numbers:      numbers,
		UnitAmount:   unit,
		Amount:       amount,
		OriginalLine: line,
	}
	return Outcome{Details: []model.DetalleApuesta{detail}}, nil
}

func centenaCompuesta(line string, ctx *BlockContext, m []string) (Outcome, error) {
	numbers := centenaNumbers(ExtractNumbers(m[1]))
	if len(numbers) == 0 {
		return Outcome{}, nil
	}
	mc, err := decimal.NewFromString(m[2])
	if err != nil {
		return Outcome{}, nil
	}
	mf, err := decimal.NewFromString(m[3])
	if err != nil {
		return Outcome{}, nil
	}
	n := int64(len(numbers))

	details := []model.DetalleApuesta{
		{
			Kind:         model.Centena,
			Numbers:      numbers,
			UnitAmount:   mc,
			Amount:       mc.Mul(decimal.NewFromInt(n)),
			OriginalLine: line,
		},
	}

	lastTwo := make([]string, len(numbers))
	for i, num := range numbers {
		lastTwo[i] = num[1:]
	}
	details = append(details, model.DetalleApuesta{
		Kind:         model.Fijo,
		Numbers:      lastTwo,
		UnitAmount:   mf,
		Amount:       mf.Mul(decimal.NewFromInt(n)),
		OriginalLine: line,
	})

	if len(m) > 4 && m[4] != "" {
		mco, err := decimal.NewFromString(m[4])
		if err == nil {
			details = append(details, model.DetalleApuesta{
				Kind:         model.Corrido,
				Numbers:      lastTwo,
				UnitAmount:   mco,
				Amount:       mco.Mul(decimal.NewFromInt(n)),
				OriginalLine: line,
			})
		}
	}

	return Outcome{Details: details}, nil
}

// centenaNumbers filters a mixed-width number list down to 3-digit
// centena tokens, preserving order.
func centenaNumbers(numbers []string) []string {
	out := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if len(n) == 3 {
			out = append(out, n)
		}
	}
	return out
}
