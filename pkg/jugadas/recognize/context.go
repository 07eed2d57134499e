package recognize

import (
	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/shopspring/decimal"
)

// BlockContext carries the within-block state the stake-carryover rule
// needs: the unit amount of the previous line's Fijo or Corrido detail
// becomes the default for a following line that gives no explicit amount.
// A fresh BlockContext is constructed for each block and dropped when the
// block ends.
type BlockContext struct {
	DefaultMontoFijo    decimal.Decimal
	DefaultMontoCorrido decimal.Decimal
	LastFijoMonto       *decimal.Decimal
	LastCorridoMonto    *decimal.Decimal
	AllowNegative       bool
}

// FijoDefault returns the unit amount a Fijo-shaped line without an
// explicit amount should use: the previous line's Fijo/Corrido stake if
// one was set this block, else config.default_monto_fijo.
func (c *BlockContext) FijoDefault() decimal.Decimal {
	if c.LastFijoMonto != nil {
		return *c.LastFijoMonto
	}
	if c.LastCorridoMonto != nil {
		return *c.LastCorridoMonto
	}
	return c.DefaultMontoFijo
}

// Observe updates the carryover state after a line has produced details.
func (c *BlockContext) Observe(details []model.DetalleApuesta) {
	for _, d := range details {
		switch d.Kind {
		case model.Fijo:
			u := d.UnitAmount
			c.LastFijoMonto = &u
		case model.Corrido:
			u := d.UnitAmount
			c.LastCorridoMonto = &u
		}
	}
}
