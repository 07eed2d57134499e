// Package validate implements the Validator: a cheap pre-parse syntax
// pass over raw lines, and a post-parse semantic pass over a produced
// Jugada.
package validate

import (
	"fmt"
	"strings"

	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/jugadas/parser/pkg/jugadas/patterns"
	"github.com/jugadas/parser/pkg/jugadas/recognize"
	"github.com/shopspring/decimal"
)

var centsTolerance = decimal.NewFromFloat(0.01)
var dollarTolerance = decimal.NewFromFloat(1.00)

// Syntax classifies every line of text and reports errors for lines that
// look like bet lines (they carry a stake clause) but have no digits before
// it, and warnings for missing amounts, zero amounts, or numbers repeated
// within one line.
func Syntax(text string, cfg *model.ParserConfig) *model.ValidationResult {
	result := &model.ValidationResult{Valid: true}
	if strings.TrimSpace(text) == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Empty text")
		return result
	}

	nameLines := 0
	totalLines := 0
	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case patterns.IsTotalLine(line):
			totalLines++
		case patterns.IsNameLine(line, 0.6):
			nameLines++
		default:
			syntaxCheckBetLine(result, line, i)
		}
	}

	if cfg != nil && cfg.MaxJugadores > 0 && nameLines > cfg.MaxJugadores {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("name-line count %d exceeds max_jugadores %d", nameLines, cfg.MaxJugadores))
	}
	if totalLines > 1 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d total-lines found, only the block-local last one is used", totalLines))
	}

	if len(result.Errors) > 0 {
		result.Valid = false
	}
	return result
}

func syntaxCheckBetLine(result *model.ValidationResult, line string, lineIndex int) {
	before := recognize.ExtractNumbers(recognize.BeforeFirstCon(line))
	if len(before) == 0 {
		hasStake := patterns.ReCon.MatchString(line) || patterns.ReParleKeyword.MatchString(line) || patterns.ReCandadoFull.MatchString(line)
		if hasStake && !strings.ContainsAny(recognize.BeforeFirstCon(line), "0123456789") {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: bet line with no numbers", lineIndex+1))
		} else if !patterns.IsNameLine(line, 0.6) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: unclassified line %q", lineIndex+1, strings.TrimSpace(line)))
		}
		return
	}

	if !patterns.ReCon.MatchString(line) && !patterns.ReParleKeyword.MatchString(line) &&
		!patterns.ReCandadoFull.MatchString(line) && !patterns.ReParleInline.MatchString(line) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: numbers with no amount clause", lineIndex+1))
	}
	if m := patterns.ReCon.FindStringSubmatch(line); m != nil {
		if v, err := decimal.NewFromString(m[1]); err == nil && v.IsZero() {
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: zero amount", lineIndex+1))
		}
	}

	seen := make(map[string]struct{})
	for _, n := range before {
		if _, dup := seen[n]; dup {
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: duplicated number %q", lineIndex+1, n))
		}
		seen[n] = struct{}{}
		if len(n) == 3 {
			continue
		}
		if len(n) != 2 {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: number %q out of canonical range", lineIndex+1, n))
		}
	}
}

// Jugada checks one parsed Jugada's details for type validity, amount
// sign/magnitude, duplicate numbers, and reconciliation against a
// declared total.
func Jugada(j *model.Jugada, cfg *model.ParserConfig) *model.ValidationResult {
	result := &model.ValidationResult{Valid: true}

	for _, d := range j.Details {
		checkDetail(result, d, cfg)
	}

	if j.TotalDeclared != nil {
		diff := j.TotalCalculated.Sub(*j.TotalDeclared).Abs()
		switch {
		case diff.LessThan(centsTolerance):
			// reconciled
		case diff.LessThan(dollarTolerance):
			result.Warnings = append(result.Warnings, fmt.Sprintf("declared/calculated totals differ by %s", diff.StringFixed(2)))
		case cfg != nil && cfg.ValidateTotals:
			result.Errors = append(result.Errors, fmt.Sprintf("declared/calculated totals differ by %s", diff.StringFixed(2)))
		default:
			result.Warnings = append(result.Warnings, fmt.Sprintf("declared/calculated totals differ by %s", diff.StringFixed(2)))
		}
	}

	if len(result.Errors) > 0 {
		result.Valid = false
	}
	return result
}

func checkDetail(result *model.ValidationResult, d model.DetalleApuesta, cfg *model.ParserConfig) {
	for _, n := range d.Numbers {
		if d.Kind == model.Centena && len(n) != 3 {
			result.Errors = append(result.Errors, fmt.Sprintf("centena number %q must be 3 digits", n))
		}
		if len(n) != 2 && len(n) != 3 {
			result.Errors = append(result.Errors, fmt.Sprintf("number %q not in canonical form", n))
		}
	}

	if (d.Kind == model.Parle || d.Kind == model.Candado) && len(d.Numbers) >= 2 {
		want := model.Combinations(len(d.Numbers))
		if len(d.Pairs) == 0 && d.Combinations != want {
			result.Errors = append(result.Errors, fmt.Sprintf("%s combinations %d, want %d", d.Kind, d.Combinations, want))
		}
	}

	if d.Amount.IsNegative() && (cfg == nil || !cfg.AllowNegative) {
		result.Errors = append(result.Errors, fmt.Sprintf("negative amount on %s detail", d.Kind))
	}
	if cfg != nil && !cfg.MaxMonto.IsZero() && d.Amount.GreaterThan(cfg.MaxMonto) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s amount %s exceeds max_monto %s", d.Kind, d.Amount.StringFixed(2), cfg.MaxMonto.StringFixed(2)))
	}

	seen := make(map[string]struct{}, len(d.Numbers))
	for _, n := range d.Numbers {
		if _, dup := seen[n]; dup {
			result.Warnings = append(result.Warnings, fmt.Sprintf("duplicated number %q in %s detail", n, d.Kind))
		}
		seen[n] = struct{}{}
	}
}
