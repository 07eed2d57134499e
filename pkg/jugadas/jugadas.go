// Package jugadas is the root facade over the ticket-parsing pipeline:
// Parse, Validate, ExtractStructure, and the Parser type for callers who
// need a custom recognizer or a shared cache across calls. Mirrors
// pkg/korel's Korel facade: a thin struct wiring the staged components
// together, with package-level functions constructing a default instance
// for the common case.
package jugadas

import (
	"time"

	"github.com/jugadas/parser/pkg/jugadas/cache"
	"github.com/jugadas/parser/pkg/jugadas/calc"
	"github.com/jugadas/parser/pkg/jugadas/config"
	"github.com/jugadas/parser/pkg/jugadas/jerr"
	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/jugadas/parser/pkg/jugadas/preprocess"
	"github.com/jugadas/parser/pkg/jugadas/recognize"
	"github.com/jugadas/parser/pkg/jugadas/segment"
	"github.com/jugadas/parser/pkg/jugadas/validate"
)

// Parser wires the pipeline's stateful pieces: the recognizer dispatcher
// (open to extension via RegisterRecognizer) and, optionally, a cache
// shared across Parse calls.
type Parser struct {
	dispatcher *recognize.Dispatcher
	cache      *cache.Cache
}

// NewParser builds a Parser around cfg's recognizer defaults. A nil cfg
// resolves to config.Default(). When cfg.CacheEnabled, a Cache sized by
// cfg.CacheMaxSize is attached.
func NewParser(cfg *model.ParserConfig) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}
	p := &Parser{
		dispatcher: recognize.NewDispatcher(recognize.Config{
			DefaultMontoFijo:    cfg.DefaultMontoFijo,
			DefaultMontoCorrido: cfg.DefaultMontoCorrido,
			AllowNegative:       cfg.AllowNegative,
			AutoExpand:          cfg.AutoExpand,
		}),
	}
	if cfg.CacheEnabled {
		p.cache = cache.New(cfg.CacheMaxSize)
	}
	return p
}

// RegisterRecognizer appends an extension recognizer to the dispatch
// chain, the public hook for callers that need a bet shape the built-ins
// don't cover.
func (p *Parser) RegisterRecognizer(r recognize.Recognizer) {
	p.dispatcher.Register(r)
}

// Parse runs the full pipeline: preprocess, segment, dispatch, validate,
// and reconcile. It never panics across a malformed input — failures are
// always encoded into the returned ParseResult with Success=false rather
// than raised to the caller.
func (p *Parser) Parse(text string, cfg *model.ParserConfig) *model.ParseResult {
	start := time.Now()
	if cfg == nil {
		cfg = config.Default()
	}

	if p.cache != nil {
		key := cache.Key(text, cfg)
		if cached, ok := p.cache.Get(key); ok {
			stats := p.cache.Stats()
			result := *cached
			result.Metadata.CacheStats = &stats
			return &result
		}
	}

	result := p.parseUncached(text, cfg, start)

	if p.cache != nil && result.Success {
		ttl := time.Duration(cfg.CacheTTLMS) * time.Millisecond
		p.cache.Set(cache.Key(text, cfg), result, ttl)
		stats := p.cache.Stats()
		result.Metadata.CacheStats = &stats
	}

	return result
}

func (p *Parser) parseUncached(text string, cfg *model.ParserConfig, start time.Time) *model.ParseResult {
	result := &model.ParseResult{ID: model.NewID()}

	if len(text) == 0 {
		result.Metadata.Errors = append(result.Metadata.Errors, "Empty text")
		result.Metadata.ParseTimeMS = time.Since(start).Milliseconds()
		return result
	}
	result.Metadata.OriginalLength = len(text)

	// Pattern pre-expansion is deliberately left to the SpecialPatterns
	// recognizer (see recognize.NewDispatcher), not run here: rewriting
	// "10v" to "10 01" before segmentation would erase the token the
	// dispatcher needs to attribute the right PatternType. AutoExpand
	// still governs whether that recognizer is in the chain at all.
	pre := preprocess.Process(text, preprocess.Config{
		AutoExpand:       false,
		DecimalSeparator: cfg.DecimalSeparator,
	})
	result.Metadata.ProcessedLength = len(pre.Text)

	blocks, err := segment.Segment(pre.Text, cfg.MaxJugadores)
	if err != nil {
		result.Metadata.Errors = append(result.Metadata.Errors, err.Error())
		result.Metadata.ParseTimeMS = time.Since(start).Milliseconds()
		return result
	}

	timeoutBudget := time.Duration(cfg.TimeoutMS) * time.Millisecond
	var jugadas []model.Jugada
	syntaxErrors, syntaxWarnings := 0, 0

	for _, block := range blocks {
		if cfg.TimeoutMS > 0 && time.Since(start) > timeoutBudget {
			timeoutErr := &jerr.TimeoutError{BudgetMS: cfg.TimeoutMS, Stage: "recognize"}
			result.Metadata.Errors = append(result.Metadata.Errors, timeoutErr.Error())
			result.Metadata.ParseTimeMS = time.Since(start).Milliseconds()
			return result
		}

		jugada, blockErr := p.parseBlock(block, cfg)
		if blockErr != nil {
			if cfg.StrictMode {
				result.Metadata.Errors = append(result.Metadata.Errors, blockErr.Error())
				result.Metadata.ParseTimeMS = time.Since(start).Milliseconds()
				return result
			}
			result.Metadata.Errors = append(result.Metadata.Errors, blockErr.Error())
		}

		syntax := validate.Jugada(&jugada, cfg)
		syntaxErrors += len(syntax.Errors)
		syntaxWarnings += len(syntax.Warnings)
		jugada.Errors = append(jugada.Errors, syntax.Errors...)
		jugada.Warnings = append(jugada.Warnings, syntax.Warnings...)

		jugadas = append(jugadas, jugada)
	}

	result.Success = true
	result.Jugadas = jugadas
	result.Summary = calc.Summarize(jugadas, syntaxErrors, syntaxWarnings)
	result.Stats = calc.Stats(jugadas)
	result.Metadata.ParseTimeMS = time.Since(start).Milliseconds()
	return result
}

func (p *Parser) parseBlock(block model.BlockInfo, cfg *model.ParserConfig) (model.Jugada, error) {
	jugada := model.Jugada{
		PlayerName:    block.PlayerName,
		OriginalLines: block.Lines,
		TotalDeclared: block.DeclaredTotal,
		IsValid:       true,
		Metadata: model.Metadata{
			Timestamp:   time.Now(),
			LineCount:   len(block.Lines),
			BetTypesSet: make(map[model.BetKind]struct{}),
		},
	}

	ctx := &recognize.BlockContext{
		DefaultMontoFijo:    cfg.DefaultMontoFijo,
		DefaultMontoCorrido: cfg.DefaultMontoCorrido,
		AllowNegative:       cfg.AllowNegative,
	}

	for lineNum, line := range block.Lines {
		outcome, err := p.dispatcher.Dispatch(line, ctx)
		if err != nil {
			jugada.Errors = append(jugada.Errors, err.Error())
			continue
		}
		jugada.Warnings = append(jugada.Warnings, outcome.Warnings...)
		for _, d := range outcome.Details {
			d.LineNumber = lineNum
			jugada.Details = append(jugada.Details, d)
			jugada.Metadata.BetTypesSet[d.Kind] = struct{}{}
			jugada.Metadata.NumberCount += len(d.Numbers)
		}
		if len(outcome.Details) == 0 {
			jugada.Warnings = append(jugada.Warnings, "unclaimed bet line: "+line)
		}
	}

	calc.JugadaTotal(&jugada)
	jugada.Metadata.ProcessingTimeMS = 0
	return jugada, nil
}

// Validate runs the syntax (pre-parse) and semantic (post-parse) passes
// and merges them into a single result.
func (p *Parser) Validate(text string, cfg *model.ParserConfig) *model.ValidationResult {
	if cfg == nil {
		cfg = config.Default()
	}
	syntax := validate.Syntax(text, cfg)
	result := p.Parse(text, cfg)
	merged := &model.ValidationResult{
		Valid:    syntax.Valid,
		Errors:   append([]string{}, syntax.Errors...),
		Warnings: append([]string{}, syntax.Warnings...),
	}
	for _, j := range result.Jugadas {
		jv := validate.Jugada(&j, cfg)
		merged.Errors = append(merged.Errors, jv.Errors...)
		merged.Warnings = append(merged.Warnings, jv.Warnings...)
		if !jv.Valid {
			merged.Valid = false
		}
	}
	return merged
}

// ExtractStructure runs segmentation alone, with no bet recognition.
func ExtractStructure(text string) []model.BlockInfo {
	cfg := config.Default()
	pre := preprocess.Process(text, preprocess.Config{
		AutoExpand:       cfg.AutoExpand,
		DecimalSeparator: cfg.DecimalSeparator,
	})
	blocks, err := segment.Segment(pre.Text, cfg.MaxJugadores)
	if err != nil {
		return nil
	}
	return blocks
}

// Parse constructs a default Parser and runs it once. Callers that parse
// repeatedly (and want a shared cache) should use NewParser instead.
func Parse(text string, cfg *model.ParserConfig) *model.ParseResult {
	return NewParser(cfg).Parse(text, cfg)
}

// Validate constructs a default Parser and runs Validate once.
func Validate(text string, cfg *model.ParserConfig) *model.ValidationResult {
	return NewParser(cfg).Validate(text, cfg)
}
