package recognize

import (
	"strconv"
	"strings"

	"github.com/jugadas/parser/pkg/jugadas/expand"
	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/jugadas/parser/pkg/jugadas/patterns"
	"github.com/shopspring/decimal"
)

// newSpecialPatterns builds priority-90's SpecialPatterns recognizer:
// VOLTEO / RANGO / DECENA / TERMINAL / PARES_RELATIVOS / CENTENAS_TODAS,
// each emitting one Especial detail with expansion metadata.
func newSpecialPatterns() Recognizer {
	return Recognizer{
		Name:     "SpecialPatterns",
		Priority: 90,
		CanClaim: specialCanClaim,
		Process:  specialProcess,
	}
}

func specialCanClaim(line string, _ *BlockContext) bool {
	return patterns.ReVolteo.MatchString(line) ||
		patterns.ReRango.MatchString(line) ||
		patterns.ReDecena.MatchString(line) ||
		patterns.ReTerminal.MatchString(line) ||
		patterns.ReParesRelativos.MatchString(line) ||
		patterns.ReCentenasTodas.MatchString(line)
}

func specialProcess(line string, ctx *BlockContext) (Outcome, error) {
	switch {
	case patterns.ReVolteo.MatchString(line):
		m := patterns.ReVolteo.FindStringSubmatch(line)
		numbers, err := expand.Volteo(m[1])
		if err != nil {
			return Outcome{}, nil
		}
		return buildEspecial(line, numbers, m[0], model.PatternVolteo, ctx)

	case patterns.ReRango.MatchString(line):
		m := patterns.ReRango.FindStringSubmatch(line)
		numbers, err := expand.Rango(m[1], m[2])
		if err != nil {
			return Outcome{}, err
		}
		return buildEspecial(line, numbers, m[0], model.PatternRango, ctx)

	case patterns.ReDecena.MatchString(line):
		m := patterns.ReDecena.FindStringSubmatch(line)
		numbers, err := expand.Decena(m[1])
		if err != nil {
			return Outcome{}, err
		}
		return buildEspecial(line, numbers, m[0], model.PatternDecena, ctx)

	case patterns.ReTerminal.MatchString(line):
		m := patterns.ReTerminal.FindStringSubmatch(line)
		numbers, err := expand.Terminal(m[1])
		if err != nil {
			return Outcome{}, err
		}
		return buildEspecial(line, numbers, m[0], model.PatternTerminal, ctx)

	case patterns.ReParesRelativos.MatchString(line):
		m := patterns.ReParesRelativos.FindStringSubmatch(line)
		k, kerr := strconv.Atoi(m[2])
		if kerr != nil {
			return Outcome{}, nil
		}
		fourDigit, err := expand.ParesRelativos(m[1], k)
		if err != nil {
			return Outcome{}, err
		}
		return buildParesRelativosEspecial(line, fourDigit, m[0], ctx)

	case patterns.ReCentenasTodas.MatchString(line):
		m := patterns.ReCentenasTodas.FindStringSubmatch(line)
		bases := strings.Fields(strings.ReplaceAll(m[1], ",", " "))
		numbers, err := expand.CentenasTodas(bases)
		if err != nil {
			return Outcome{}, err
		}
		return buildEspecialWithUnit(line, numbers, m[0], model.PatternCentenasTodas, ctx, m[2])
	}
	return Outcome{}, nil
}

// buildEspecial builds a single Especial detail over numbers, deriving
// the unit amount from the line's "con A" clause (falling back to stake
// carryover).
func buildEspecial(line string, numbers []string, originalToken string, pt model.PatternType, ctx *BlockContext) (Outcome, error) {
	unit := conAmount(line, ctx)
	amount := unit.Mul(decimal.NewFromInt(int64(len(numbers))))
	detail := model.DetalleApuesta{
		Kind:         model.Especial,
		Numbers:      numbers,
		Amount:       amount,
		UnitAmount:   unit,
		OriginalLine: line,
		Expansion: &model.Expansion{
			OriginalToken: originalToken,
			ExpandedList:  numbers,
			PatternType:   pt,
		},
	}
	return Outcome{Details: []model.DetalleApuesta{detail}}, nil
}

// buildEspecialWithUnit is like buildEspecial but prefers an explicit
// inline amount (captured from "por todas las centenas con M") over the
// line's general "con A" clause or stake carryover.
func buildEspecialWithUnit(line string, numbers []string, originalToken string, pt model.PatternType, ctx *BlockContext, inlineAmount string) (Outcome, error) {
	unit := ctx.FijoDefault()
	if inlineAmount != "" {
		if parsed, err := decimal.NewFromString(inlineAmount); err == nil {
			unit = parsed
		}
	} else {
		unit = conAmount(line, ctx)
	}
	amount := unit.Mul(decimal.NewFromInt(int64(len(numbers))))
	detail := model.DetalleApuesta{
		Kind:         model.Especial,
		Numbers:      numbers,
		Amount:       amount,
		UnitAmount:   unit,
		OriginalLine: line,
		Expansion: &model.Expansion{
			OriginalToken: originalToken,
			ExpandedList:  numbers,
			PatternType:   pt,
		},
	}
	return Outcome{Details: []model.DetalleApuesta{detail}}, nil
}

// buildParesRelativosEspecial implements the resolved open question
// (DESIGN.md): ParesRelativos expands to 4-digit strings, which are split
// into 2-digit canonical numbers for the detail's Numbers field (to
// satisfy the model invariant), while the original 4-digit expansion is
// preserved in Expansion.ExpandedList and a warning is raised so a caller
// can detect the ambiguity.
func buildParesRelativosEspecial(line string, fourDigit []string, originalToken string, ctx *BlockContext) (Outcome, error) {
	numbers := make([]string, 0, len(fourDigit)*2)
	for _, s := range fourDigit {
		a, b, ok := expand.SplitFourDigit(s)
		if !ok {
			continue
		}
		numbers = append(numbers, a, b)
	}
	unit := conAmount(line, ctx)
	amount := unit.Mul(decimal.NewFromInt(int64(len(numbers))))
	detail := model.DetalleApuesta{
		Kind:         model.Especial,
		Numbers:      numbers,
		Amount:       amount,
		UnitAmount:   unit,
		OriginalLine: line,
		Expansion: &model.Expansion{
			OriginalToken: originalToken,
			ExpandedList:  fourDigit,
			PatternType:   model.PatternParesRelativos,
		},
	}
	warning := "pares relativos: ambiguous whether each NNii is one pair-bet or two independent numbers; numbers were split into 2-digit canonical form"
	return Outcome{Details: []model.DetalleApuesta{detail}, Warnings: []string{warning}}, nil
}

// conAmount extracts the unit amount from line's "con A" clause, falling
// back to the block's stake-carryover default when absent.
func conAmount(line string, ctx *BlockContext) decimal.Decimal {
	m := patterns.ReCon.FindStringSubmatch(line)
	if len(m) >= 2 && m[1] != "" {
		if v, err := decimal.NewFromString(m[1]); err == nil {
			return v
		}
	}
	return ctx.FijoDefault()
}
