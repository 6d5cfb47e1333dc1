package engine

import (
	"time"

	"github.com/lixenwraith/booster-catch/parameter"
)

// Pacer releases one tick per period, dropping ticks the consumer was too slow to take
type Pacer struct {
	ticker *time.Ticker
	period time.Duration
}

// NewPacer creates a pacer at rate ticks per second, clamped to the supported range
func NewPacer(rate int) *Pacer {
	rate = max(parameter.MinTickRate, min(rate, parameter.MaxTickRate))
	period := time.Second / time.Duration(rate)
	return &Pacer{
		ticker: time.NewTicker(period),
		period: period,
	}
}

// C delivers tick times
func (p *Pacer) C() <-chan time.Time {
	return p.ticker.C
}

// Period returns the interval between ticks
func (p *Pacer) Period() time.Duration {
	return p.period
}

// Stop releases the underlying ticker
func (p *Pacer) Stop() {
	p.ticker.Stop()
}
