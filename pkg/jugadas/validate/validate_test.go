package validate

import (
	"strings"
	"testing"

	"github.com/jugadas/parser/pkg/jugadas/config"
	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/shopspring/decimal"
)

func TestSyntaxEmptyText(t *testing.T) {
	result := Syntax("", config.Default())
	if result.Valid {
		t.Error("expected empty text to be invalid")
	}
	if len(result.Errors) == 0 {
		t.Error("expected an error for empty text")
	}
}

func TestSyntaxFlagsMissingAmountClause(t *testing.T) {
	result := Syntax("Maria\n25 30", config.Default())
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for a bet line with no amount clause")
	}
}

func TestSyntaxUnclassifiedLineWarns(t *testing.T) {
	result := Syntax("!!! 5 @@@", config.Default())
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for a line with no canonical numbers and no name-line shape")
	}
}

func TestSyntaxFlagsDuplicateNumber(t *testing.T) {
	result := Syntax("25 25 con 5", config.Default())
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for a duplicated number")
	}
}

func TestSyntaxIgnoresNumbersInsideDecimalAmount(t *testing.T) {
	result := Syntax("25 50 con 20.50", config.Default())
	for _, w := range result.Warnings {
		if strings.Contains(w, "duplicated number") {
			t.Errorf("expected no duplicate warning from the decimal amount's cents, got %q", w)
		}
	}
}

func TestSyntaxMultipleTotalLinesWarns(t *testing.T) {
	result := Syntax("25 con 5\ntotal: 5\ntotal: 10", config.Default())
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for multiple total-lines")
	}
}

func TestJugadaReconciledWithinCents(t *testing.T) {
	declared := decimal.NewFromInt(10)
	j := &model.Jugada{
		TotalCalculated: decimal.NewFromFloat(10.005),
		TotalDeclared:   &declared,
	}
	result := Jugada(j, config.Default())
	if !result.Valid {
		t.Errorf("expected a sub-cent difference to be valid, got errors %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %v", result.Errors)
	}
}

func TestJugadaMismatchBeyondDollarIsErrorWhenValidateTotals(t *testing.T) {
	declared := decimal.NewFromInt(10)
	j := &model.Jugada{
		TotalCalculated: decimal.NewFromInt(15),
		TotalDeclared:   &declared,
	}
	cfg := config.Default()
	cfg.ValidateTotals = true
	result := Jugada(j, cfg)
	if result.Valid {
		t.Error("expected a >= $1 mismatch with validate_totals to be invalid")
	}
}

func TestJugadaNegativeAmountRejectedByDefault(t *testing.T) {
	j := &model.Jugada{
		Details: []model.DetalleApuesta{{
			Kind:    model.Fijo,
			Numbers: []string{"25"},
			Amount:  decimal.NewFromInt(-5),
		}},
	}
	result := Jugada(j, config.Default())
	if result.Valid {
		t.Error("expected a negative amount to be rejected when allow_negative is false")
	}
}

func TestJugadaParleCombinationsMismatchErrors(t *testing.T) {
	j := &model.Jugada{
		Details: []model.DetalleApuesta{{
			Kind:         model.Parle,
			Numbers:      []string{"25", "30", "35"},
			Combinations: 1,
			Amount:       decimal.NewFromInt(5),
		}},
	}
	result := Jugada(j, config.Default())
	if result.Valid {
		t.Error("expected a wrong combinations count to be rejected")
	}
}
