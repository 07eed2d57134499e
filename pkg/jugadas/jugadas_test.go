package jugadas

import (
	"testing"

	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/shopspring/decimal"
)

// TestEndToEndBasicBet mirrors a single-player ticket with a Fijo and a
// Corrido bet reconciled against a declared total.
func TestEndToEndBasicBet(t *testing.T) {
	text := "Maria\n25 30 con 5 y 2\ntotal: 14"
	result := Parse(text, nil)

	if !result.Success {
		t.Fatalf("expected a successful parse, got errors %v", result.Metadata.Errors)
	}
	if len(result.Jugadas) != 1 {
		t.Fatalf("expected 1 Jugada, got %d", len(result.Jugadas))
	}

	j := result.Jugadas[0]
	if j.PlayerName != "Maria" {
		t.Errorf("PlayerName = %q, want Maria", j.PlayerName)
	}
	if !j.TotalCalculated.Equal(decimal.NewFromInt(14)) {
		t.Errorf("TotalCalculated = %s, want 14", j.TotalCalculated)
	}
	if !j.IsValid {
		t.Errorf("expected IsValid = true, errors=%v warnings=%v", j.Errors, j.Warnings)
	}
}

// TestEndToEndParleImplicit locks in the corrected Parle interpretation
// across the full pipeline: the implicit "parle con M" amount is the
// per-combination unit, not a total to be divided.
func TestEndToEndParleImplicit(t *testing.T) {
	text := "Maria\n05 10 15 con 20 parle con 5\ntotal: 75"
	result := Parse(text, nil)

	if !result.Success {
		t.Fatalf("expected a successful parse, got errors %v", result.Metadata.Errors)
	}
	j := result.Jugadas[0]

	var parle *model.DetalleApuesta
	var fijo *model.DetalleApuesta
	for i := range j.Details {
		switch j.Details[i].Kind {
		case model.Parle:
			parle = &j.Details[i]
		case model.Fijo:
			fijo = &j.Details[i]
		}
	}
	if parle == nil || fijo == nil {
		t.Fatalf("expected both a Parle and a Fijo detail, got %+v", j.Details)
	}
	if parle.Combinations != 3 {
		t.Errorf("Combinations = %d, want 3", parle.Combinations)
	}
	if !parle.UnitAmount.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Parle unit = %s, want 5", parle.UnitAmount)
	}
	if !parle.Amount.Equal(decimal.NewFromInt(15)) {
		t.Errorf("Parle amount = %s, want 15", parle.Amount)
	}
	if !fijo.UnitAmount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Fijo unit = %s, want 20", fijo.UnitAmount)
	}
	if !j.TotalCalculated.Equal(decimal.NewFromInt(75)) {
		t.Errorf("TotalCalculated = %s, want 75", j.TotalCalculated)
	}
	if !j.IsValid {
		t.Errorf("expected IsValid = true, errors=%v warnings=%v", j.Errors, j.Warnings)
	}
}

// TestEndToEndMultiplePlayers verifies the Block Segmenter splits a
// multi-player ticket into one Jugada per name-line.
func TestEndToEndMultiplePlayers(t *testing.T) {
	text := "Maria\n25 con 5\n\nJuan\n30 con 5"
	result := Parse(text, nil)

	if !result.Success {
		t.Fatalf("expected a successful parse, got errors %v", result.Metadata.Errors)
	}
	if len(result.Jugadas) != 2 {
		t.Fatalf("expected 2 Jugadas, got %d: %+v", len(result.Jugadas), result.Jugadas)
	}
}

// TestEndToEndOnlyAName covers the boundary case: a lone name-line still
// produces exactly one, empty Jugada.
func TestEndToEndOnlyAName(t *testing.T) {
	result := Parse("Maria Perez", nil)
	if !result.Success {
		t.Fatalf("expected a successful parse, got errors %v", result.Metadata.Errors)
	}
	if len(result.Jugadas) != 1 {
		t.Fatalf("expected exactly 1 Jugada, got %d", len(result.Jugadas))
	}
	if len(result.Jugadas[0].Details) != 0 {
		t.Errorf("expected no details, got %+v", result.Jugadas[0].Details)
	}
}

func TestEndToEndEmptyTextFails(t *testing.T) {
	result := Parse("", nil)
	if result.Success {
		t.Error("expected Success = false for empty text")
	}
	if len(result.Metadata.Errors) == 0 {
		t.Error("expected an error reported for empty text")
	}
}

// TestConcreteScenarios runs the eight worked examples that motivated the
// pipeline's shape, against the default (AutoExpand-on) Parser, each
// checked against its own expectation.
func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name string
		text string
		want func(t *testing.T, result *model.ParseResult)
	}{
		{
			name: "fijo with con amount",
			text: "05 10 con 20",
			want: func(t *testing.T, result *model.ParseResult) {
				j := result.Jugadas[0]
				fijo := findJugadaDetail(j.Details, model.Fijo)
				if fijo == nil {
					t.Fatalf("expected a Fijo detail, got %+v", j.Details)
				}
				if len(fijo.Numbers) != 2 || fijo.Numbers[0] != "05" || fijo.Numbers[1] != "10" {
					t.Errorf("Numbers = %v, want [05 10]", fijo.Numbers)
				}
				if !fijo.Amount.Equal(decimal.NewFromInt(40)) {
					t.Errorf("Fijo amount = %s, want 40", fijo.Amount)
				}
				if !j.TotalCalculated.Equal(decimal.NewFromInt(40)) {
					t.Errorf("TotalCalculated = %s, want 40", j.TotalCalculated)
				}
				if !j.IsValid {
					t.Errorf("expected IsValid = true, errors=%v warnings=%v", j.Errors, j.Warnings)
				}
			},
		},
		{
			name: "fijo plus corrido with con A y B",
			text: "05 10 con 20 y 30",
			want: func(t *testing.T, result *model.ParseResult) {
				j := result.Jugadas[0]
				fijo := findJugadaDetail(j.Details, model.Fijo)
				corrido := findJugadaDetail(j.Details, model.Corrido)
				if fijo == nil || corrido == nil {
					t.Fatalf("expected Fijo and Corrido details, got %+v", j.Details)
				}
				if !fijo.Amount.Equal(decimal.NewFromInt(40)) {
					t.Errorf("Fijo amount = %s, want 40", fijo.Amount)
				}
				if !corrido.Amount.Equal(decimal.NewFromInt(60)) {
					t.Errorf("Corrido amount = %s, want 60", corrido.Amount)
				}
				if !j.TotalCalculated.Equal(decimal.NewFromInt(100)) {
					t.Errorf("TotalCalculated = %s, want 100", j.TotalCalculated)
				}
			},
		},
		{
			name: "explicit parle pair",
			text: "25*33 parle con 5",
			want: func(t *testing.T, result *model.ParseResult) {
				j := result.Jugadas[0]
				parle := findJugadaDetail(j.Details, model.Parle)
				if parle == nil {
					t.Fatalf("expected a Parle detail, got %+v", j.Details)
				}
				if parle.Combinations != 1 {
					t.Errorf("Combinations = %d, want 1", parle.Combinations)
				}
				if len(parle.Pairs) != 1 || parle.Pairs[0].A != "25" || parle.Pairs[0].B != "33" {
					t.Errorf("Pairs = %v, want [{25 33}]", parle.Pairs)
				}
				if !j.TotalCalculated.Equal(decimal.NewFromInt(5)) {
					t.Errorf("TotalCalculated = %s, want 5", j.TotalCalculated)
				}
			},
		},
		{
			name: "fijo plus implicit parle",
			text: "05 10 15 con 20 p5",
			want: func(t *testing.T, result *model.ParseResult) {
				j := result.Jugadas[0]
				fijo := findJugadaDetail(j.Details, model.Fijo)
				parle := findJugadaDetail(j.Details, model.Parle)
				if fijo == nil || parle == nil {
					t.Fatalf("expected Fijo and Parle details, got %+v", j.Details)
				}
				if !fijo.Amount.Equal(decimal.NewFromInt(60)) {
					t.Errorf("Fijo amount = %s, want 60", fijo.Amount)
				}
				if parle.Combinations != 3 {
					t.Errorf("Combinations = %d, want 3", parle.Combinations)
				}
				if !parle.Amount.Equal(decimal.NewFromInt(15)) {
					t.Errorf("Parle amount = %s, want 15", parle.Amount)
				}
				if !j.TotalCalculated.Equal(decimal.NewFromInt(75)) {
					t.Errorf("TotalCalculated = %s, want 75", j.TotalCalculated)
				}
			},
		},
		{
			name: "volteo special pattern",
			text: "10v con 10",
			want: func(t *testing.T, result *model.ParseResult) {
				j := result.Jugadas[0]
				especial := findJugadaDetail(j.Details, model.Especial)
				if especial == nil {
					t.Fatalf("expected an Especial detail, got %+v", j.Details)
				}
				if len(especial.Numbers) != 2 || especial.Numbers[0] != "10" || especial.Numbers[1] != "01" {
					t.Errorf("Numbers = %v, want [10 01]", especial.Numbers)
				}
				if especial.Expansion == nil || especial.Expansion.PatternType != model.PatternVolteo {
					t.Errorf("expected PatternType = Volteo, got %+v", especial.Expansion)
				}
				if !especial.Amount.Equal(decimal.NewFromInt(20)) {
					t.Errorf("Amount = %s, want 20", especial.Amount)
				}
			},
		},
		{
			name: "decena special pattern",
			text: "d0 con 5",
			want: func(t *testing.T, result *model.ParseResult) {
				j := result.Jugadas[0]
				especial := findJugadaDetail(j.Details, model.Especial)
				if especial == nil {
					t.Fatalf("expected an Especial detail, got %+v", j.Details)
				}
				if len(especial.Numbers) != 10 {
					t.Errorf("expected 10 numbers in the decena, got %v", especial.Numbers)
				}
				if especial.Expansion == nil || especial.Expansion.PatternType != model.PatternDecena {
					t.Errorf("expected PatternType = Decena, got %+v", especial.Expansion)
				}
				if !especial.Amount.Equal(decimal.NewFromInt(50)) {
					t.Errorf("Amount = %s, want 50", especial.Amount)
				}
			},
		},
		{
			name: "named player with matching declared total",
			text: "Juan\n05 10 con 20\nTotal: 40",
			want: func(t *testing.T, result *model.ParseResult) {
				j := result.Jugadas[0]
				if j.PlayerName != "Juan" {
					t.Errorf("PlayerName = %q, want Juan", j.PlayerName)
				}
				if j.TotalDeclared == nil || !j.TotalDeclared.Equal(decimal.NewFromInt(40)) {
					t.Errorf("TotalDeclared = %v, want 40", j.TotalDeclared)
				}
				if !j.IsValid {
					t.Errorf("expected IsValid = true, errors=%v warnings=%v", j.Errors, j.Warnings)
				}
			},
		},
		{
			name: "mismatched declared total is flagged invalid",
			text: "05 10 con 20\nTotal: 100",
			want: func(t *testing.T, result *model.ParseResult) {
				j := result.Jugadas[0]
				if j.IsValid {
					t.Error("expected IsValid = false for a mismatched declared total")
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Parse(tc.text, nil)
			if !result.Success {
				t.Fatalf("expected a successful parse, got errors %v", result.Metadata.Errors)
			}
			if len(result.Jugadas) == 0 {
				t.Fatalf("expected at least 1 Jugada")
			}
			tc.want(t, result)
		})
	}
}

func findJugadaDetail(details []model.DetalleApuesta, kind model.BetKind) *model.DetalleApuesta {
	for i := range details {
		if details[i].Kind == kind {
			return &details[i]
		}
	}
	return nil
}

func TestParserCacheHitOnRepeatedParse(t *testing.T) {
	p := NewParser(nil)
	text := "Maria\n25 con 5"

	first := p.Parse(text, nil)
	second := p.Parse(text, nil)

	if second.Metadata.CacheStats == nil {
		t.Fatal("expected cache stats to be populated on the second parse")
	}
	if second.Metadata.CacheStats.Hits == 0 {
		t.Error("expected at least one cache hit on the repeated parse")
	}
	if !first.Jugadas[0].TotalCalculated.Equal(second.Jugadas[0].TotalCalculated) {
		t.Error("expected identical totals between the cached and uncached parse")
	}
}

func TestValidateFlagsUnamountedLine(t *testing.T) {
	result := Validate("Maria\n25 30", nil)
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for a bet line with no amount clause")
	}
}

func TestExtractStructureReturnsBlocksWithoutRecognition(t *testing.T) {
	blocks := ExtractStructure("Maria\n25 con 5\n\nJuan\n30 con 5")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
}
