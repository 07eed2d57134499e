// Package config resolves ParserConfig defaults and loads YAML overrides,
// mirroring pkg/korel/config's Loader/Components split.
package config

import (
	"os"

	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Default returns the documented ParserConfig baseline.
func Default() *model.ParserConfig {
	return &model.ParserConfig{
		StrictMode:          false,
		AutoExpand:          true,
		ValidateTotals:      true,
		MaxJugadores:        100,
		CurrencySymbol:      "$",
		DecimalSeparator:    ".",
		AllowNegative:       false,
		MaxMonto:            decimal.NewFromInt(1000000),
		DefaultMontoFijo:    decimal.NewFromInt(1),
		DefaultMontoCorrido: decimal.Zero,
		TimeoutMS:           5000,
		CacheEnabled:        true,
		CacheTTLMS:          300000,
		CacheMaxSize:        1000,
	}
}

// Loader reads an optional YAML file and merges it over Default().
type Loader struct {
	Path string
}

// Load returns Default() unmodified when Path is empty, otherwise parses
// the YAML file at Path as a ParserConfig override on top of the default
// baseline.
func (l *Loader) Load() (*model.ParserConfig, error) {
	cfg := Default()
	if l.Path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
