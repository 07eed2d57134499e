// Package recognize implements the Bet Recognizer Dispatcher: a
// prioritized chain of recognizers, each claiming a line and emitting
// zero or more DetalleApuesta rows. Recognizers are a closed set of
// built-ins constructed by factory functions, plus an open extension
// point (RegisterRecognizer) — not an inheritance hierarchy. The
// dispatcher sorts its recognizer list once by descending priority, the
// same sort.Slice idiom the teacher uses in korel.go's Search to rank
// scored documents.
package recognize

import (
	"sort"

	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/shopspring/decimal"
)

// Recognizer is one entry in the dispatch chain.
type Recognizer struct {
	Name     string
	Priority int
	CanClaim func(line string, ctx *BlockContext) bool
	Process  func(line string, ctx *BlockContext) (Outcome, error)
}

// Outcome is what a recognizer's Process returns: the details it emitted,
// any warnings, and (for AutoCorrect only) a rewritten line for
// downstream recognizers to see instead of the original.
type Outcome struct {
	Details      []model.DetalleApuesta
	Warnings     []string
	RewrittenLine string
}

// Dispatcher holds the priority-sorted recognizer chain.
type Dispatcher struct {
	autoCorrect Recognizer
	chain       []Recognizer
}

// NewDispatcher builds a dispatcher with each built-in recognizer
// registered at its priority (100 AutoCorrect, 90 SpecialPatterns, 80
// Candado, 70 Centena, 60 Parle, 50 BasicBet). SpecialPatterns
// (VOLTEO/RANGO/DECENA/TERMINAL/PARES_RELATIVOS/CENTENAS_TODAS) only joins
// the chain when cfg.AutoExpand is set — it is the only place Parse
// expands those patterns, so "auto_expand" controls whether this
// recognizer runs at all rather than rewriting text ahead of it. See
// DESIGN.md's resolution of the preprocessor/dispatcher ordering conflict.
func NewDispatcher(cfg Config) *Dispatcher {
	chain := []Recognizer{
		newCandado(),
		newCentena(),
		newParle(),
		newBasicBet(cfg),
	}
	if cfg.AutoExpand {
		chain = append(chain, newSpecialPatterns())
	}
	d := &Dispatcher{
		autoCorrect: newAutoCorrect(),
		chain:       chain,
	}
	d.sort()
	return d
}

// Config carries the subset of ParserConfig the built-in recognizers
// consult.
type Config struct {
	DefaultMontoFijo    decimal.Decimal
	DefaultMontoCorrido decimal.Decimal
	AllowNegative       bool
	AutoExpand          bool
}

func (d *Dispatcher) sort() {
	sort.SliceStable(d.chain, func(i, j int) bool {
		return d.chain[i].Priority > d.chain[j].Priority
	})
}

// Register adds an extension recognizer to the chain and re-sorts. The
// AutoCorrect recognizer is never part of this chain — it always runs
// first and is never a claimant.
func (d *Dispatcher) Register(r Recognizer) {
	d.chain = append(d.chain, r)
	d.sort()
}

// Dispatch runs AutoCorrect, then the priority-sorted chain, returning the
// first claimant's outcome. If no recognizer claims the (rewritten) line,
// Dispatch returns a zero Outcome with no error — the caller (block
// processing) interprets an unclaimed bet-line as itself a validation
// warning.
func (d *Dispatcher) Dispatch(line string, ctx *BlockContext) (Outcome, error) {
	acOut, err := d.autoCorrect.Process(line, ctx)
	if err != nil {
		return Outcome{}, err
	}
	if acOut.RewrittenLine != "" {
		line = acOut.RewrittenLine
	}

	for _, r := range d.chain {
		if r.CanClaim(line, ctx) {
			out, err := r.Process(line, ctx)
			if err != nil {
				return Outcome{}, err
			}
			ctx.Observe(out.Details)
			return out, nil
		}
	}

	return Outcome{}, nil
}
