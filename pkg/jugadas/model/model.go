// Package model defines the canonical data types produced by the jugadas
// parsing pipeline: Jugada, DetalleApuesta, ParseResult, ParserConfig, and
// the validation/segmentation result types. Nothing in this package does
// I/O or holds mutable shared state; values here are owned by the caller
// once returned from the pipeline.
package model

import (
	"crypto/rand"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// BetKind enumerates the typed bet rows a DetalleApuesta can represent.
type BetKind string

const (
	Fijo     BetKind = "Fijo"
	Corrido  BetKind = "Corrido"
	Parle    BetKind = "Parle"
	Centena  BetKind = "Centena"
	Candado  BetKind = "Candado"
	Especial BetKind = "Especial"
)

// PatternType enumerates the domain shorthand a value was expanded from.
type PatternType string

const (
	PatternVolteo          PatternType = "Volteo"
	PatternRango           PatternType = "Rango"
	PatternDecena          PatternType = "Decena"
	PatternTerminal        PatternType = "Terminal"
	PatternParesRelativos  PatternType = "ParesRelativos"
	PatternCentenasTodas   PatternType = "CentenasTodas"
	PatternRepeticion      PatternType = "Repeticion"
	PatternSimple          PatternType = "Simple"
)

// Pair is an explicit ordered pair of canonical numbers, used by the
// explicit-parle construct (NN*NN).
type Pair struct {
	A string
	B string
}

// Expansion records how a DetalleApuesta's numbers were derived from a
// shorthand token, when applicable.
type Expansion struct {
	OriginalToken string
	ExpandedList  []string
	PatternType   PatternType
}

// DetalleApuesta is one typed row of a parsed bet.
type DetalleApuesta struct {
	Kind         BetKind
	Numbers      []string
	Amount       decimal.Decimal
	UnitAmount   decimal.Decimal
	Combinations int
	Pairs        []Pair
	OriginalLine string
	LineNumber   int
	Expansion    *Expansion
}

// Metadata holds per-Jugada bookkeeping: timing, line/number counts, and
// the set of bet kinds seen.
type Metadata struct {
	Timestamp        time.Time
	ProcessingTimeMS int64
	LineCount        int
	NumberCount      int
	BetTypesSet      map[BetKind]struct{}
}

// FormattedTimestamp renders the Jugada's processing timestamp as
// "%Y-%m-%d %H:%M:%S" via go-strftime, independent of Go's reference-layout
// time-formatting idiom.
func (m Metadata) FormattedTimestamp() string {
	return strftime.Format("%Y-%m-%d %H:%M:%S", m.Timestamp)
}

// Jugada is one player's complete ticket: name, bets, and an optional
// declared total.
type Jugada struct {
	PlayerName      string
	TotalCalculated decimal.Decimal
	TotalDeclared   *decimal.Decimal
	OriginalLines   []string
	Details         []DetalleApuesta
	IsValid         bool
	Warnings        []string
	Errors          []string
	Metadata        Metadata
}

// Summary aggregates totals and confidence across a full ParseResult.
type Summary struct {
	TotalJugadas    int
	TotalCalculated decimal.Decimal
	TotalDeclared   decimal.Decimal
	Difference      decimal.Decimal
	IsValid         bool
	Confidence      float64
}

// CacheStats reports cache hit/miss bookkeeping for a parse, when caching
// participated in producing the result.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Size      int
	Evictions int64
	HitRate   float64
}

// ResultMetadata carries parse-level timing, length, and diagnostics.
type ResultMetadata struct {
	ParseTimeMS      int64
	OriginalLength   int
	ProcessedLength  int
	Warnings         []string
	Errors           []string
	CacheStats       *CacheStats
}

// Stats counts bet rows produced, broken down by kind.
type Stats struct {
	Fijos         int
	Corridos      int
	Parles        int
	Centenas      int
	Candados      int
	Especiales    int
	TotalApuestas int
	TotalNumeros  int
}

// ParseResult is the top-level, immutable output of Parse. ID is a
// per-invocation trace identifier, not part of the content being parsed —
// like each Jugada's Metadata.Timestamp and this result's
// Metadata.ParseTimeMS and Metadata.CacheStats, it is excluded from the
// determinism invariant (same
// input + config yields byte-equal output modulo these fields).
type ParseResult struct {
	ID       string
	Success  bool
	Jugadas  []Jugada
	Summary  Summary
	Metadata ResultMetadata
	Stats    Stats
}

// ValidationResult is the output of Validate / validate_syntax /
// validate_jugada.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// LineKind classifies one line during segmentation.
type LineKind string

const (
	LineName  LineKind = "name"
	LineTotal LineKind = "total"
	LineBet   LineKind = "bet"
	LineBlank LineKind = "blank"
)

// BlockInfo is the output of segmentation alone (extract_structure), with
// no bet recognition performed.
type BlockInfo struct {
	PlayerName    string
	StartLine     int
	EndLine       int
	Lines         []string
	DeclaredTotal *decimal.Decimal
}

// ParserConfig carries every tunable the pipeline consults. A zero-value
// ParserConfig is not meant to be used directly by callers — config.Default()
// resolves the documented defaults; config.Loader applies a YAML override
// on top of that baseline.
type ParserConfig struct {
	StrictMode          bool            `yaml:"strict_mode"`
	AutoExpand          bool            `yaml:"auto_expand"`
	ValidateTotals      bool            `yaml:"validate_totals"`
	MaxJugadores        int             `yaml:"max_jugadores"`
	CurrencySymbol      string          `yaml:"currency_symbol"`
	DecimalSeparator    string          `yaml:"decimal_separator"`
	AllowNegative       bool            `yaml:"allow_negative"`
	MaxMonto            decimal.Decimal `yaml:"max_monto"`
	DefaultMontoFijo    decimal.Decimal `yaml:"default_monto_fijo"`
	DefaultMontoCorrido decimal.Decimal `yaml:"default_monto_corrido"`
	TimeoutMS           int64           `yaml:"timeout_ms"`
	CacheEnabled        bool            `yaml:"cache_enabled"`
	CacheTTLMS          int64           `yaml:"cache_ttl_ms"`
	CacheMaxSize        int             `yaml:"cache_max_size"`
}

// Combinations returns C(n,2) = n(n-1)/2, the pairwise-combination count
// used by Parle and Candado details.
func Combinations(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// NewID mints a ULID-based identifier, used for ParseResult.ID. Jugada and
// DetalleApuesta carry no ID field so their output stays deterministic.
func NewID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
