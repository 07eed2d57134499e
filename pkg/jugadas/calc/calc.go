// Package calc implements the Calculator/Reconciler: bottom-up
// decimal-exact summation of detail amounts into Jugada and summary
// totals, plus the confidence score.
package calc

import (
	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/shopspring/decimal"
)

var reconcileTolerance = decimal.NewFromFloat(0.01)

// JugadaTotal sums a Jugada's detail amounts into its total_calculated and
// sets is_valid: valid whenever there's no declared total, or the declared
// and calculated totals agree within a cent.
func JugadaTotal(j *model.Jugada) {
	total := decimal.Zero
	for _, d := range j.Details {
		total = total.Add(d.Amount)
	}
	j.TotalCalculated = total
	j.IsValid = j.TotalDeclared == nil || total.Sub(*j.TotalDeclared).Abs().LessThan(reconcileTolerance)
}

// Summarize aggregates a ParseResult's Jugadas into its Summary, including
// the confidence score.
func Summarize(jugadas []model.Jugada, syntaxErrors, syntaxWarnings int) model.Summary {
	summary := model.Summary{TotalJugadas: len(jugadas)}

	exactMatches := 0
	invalidCount := 0
	for _, j := range jugadas {
		summary.TotalCalculated = summary.TotalCalculated.Add(j.TotalCalculated)
		if j.TotalDeclared != nil {
			summary.TotalDeclared = summary.TotalDeclared.Add(*j.TotalDeclared)
		}
		if !j.IsValid {
			invalidCount++
		}
		if j.TotalDeclared != nil && j.TotalCalculated.Sub(*j.TotalDeclared).Abs().LessThan(reconcileTolerance) {
			exactMatches++
		}
	}

	summary.Difference = summary.TotalCalculated.Sub(summary.TotalDeclared).Abs()
	summary.IsValid = invalidCount == 0
	summary.Confidence = Confidence(syntaxErrors, syntaxWarnings, invalidCount, len(jugadas), exactMatches).Total

	return summary
}

// ConfidenceBreakdown exposes each term of the confidence score alongside
// the final clamped total, so a caller can see why a score is what it is.
type ConfidenceBreakdown struct {
	Base            float64
	SyntaxPenalty   float64
	InvalidPenalty  float64
	ExactMatchBonus float64
	Total           float64
}

// Confidence scores a parse's overall quality: start at 1.0, subtract 0.1
// per syntax error and 0.05 per syntax warning, subtract
// 0.3 x (invalid/total), add 0.2 x (exact_match/total), clamp to [0,1].
func Confidence(syntaxErrors, syntaxWarnings, invalidJugadas, totalJugadas, exactMatchJugadas int) ConfidenceBreakdown {
	b := ConfidenceBreakdown{Base: 1.0}
	b.SyntaxPenalty = -0.1*float64(syntaxErrors) - 0.05*float64(syntaxWarnings)

	if totalJugadas > 0 {
		b.InvalidPenalty = -0.3 * (float64(invalidJugadas) / float64(totalJugadas))
		b.ExactMatchBonus = 0.2 * (float64(exactMatchJugadas) / float64(totalJugadas))
	}

	b.Total = b.Base + b.SyntaxPenalty + b.InvalidPenalty + b.ExactMatchBonus
	switch {
	case b.Total < 0:
		b.Total = 0
	case b.Total > 1:
		b.Total = 1
	}
	return b
}

// Stats tallies a ParseResult's bet-kind counts.
func Stats(jugadas []model.Jugada) model.Stats {
	var s model.Stats
	for _, j := range jugadas {
		for _, d := range j.Details {
			switch d.Kind {
			case model.Fijo:
				s.Fijos++
			case model.Corrido:
				s.Corridos++
			case model.Parle:
				s.Parles++
			case model.Centena:
				s.Centenas++
			case model.Candado:
				s.Candados++
			case model.Especial:
				s.Especiales++
			}
			s.TotalApuestas++
			s.TotalNumeros += len(d.Numbers)
		}
	}
	return s
}
