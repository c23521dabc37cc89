package service

import (
	"math"

	"payout-gateway/internal/core/ports"
)

// FeeCalculator produces the deterministic fee breakdown shown on every
// step from amount entry onward. The rate is fixed at startup; the ledger
// recomputes the fee on its side and its figure is authoritative once a
// request exists.
type FeeCalculator struct {
	rate      float64
	minAmount int64
	presets   []int64
}

// NewFeeCalculator creates a calculator with the configured rate, minimum
// amount, and quick-select presets.
func NewFeeCalculator(rate float64, minAmount int64, presets []int64) *FeeCalculator {
	return &FeeCalculator{rate: rate, minAmount: minAmount, presets: presets}
}

// Quote computes the fee breakdown for an amount. The fee is rounded half
// away from zero, and net is derived by subtraction so fee + net always
// equals the amount.
func (c *FeeCalculator) Quote(amount int64) *ports.FeeQuote {
	fee := int64(math.Round(float64(amount) * c.rate))
	return &ports.FeeQuote{
		Amount: amount,
		Fee:    fee,
		Net:    amount - fee,
	}
}

// MinAmount returns the minimum withdrawal amount.
func (c *FeeCalculator) MinAmount() int64 {
	return c.minAmount
}

// PresetOptions returns the quick-select amounts with their availability
// against the given balance. Disabled presets stay listed so the caller
// can render them greyed out.
func (c *FeeCalculator) PresetOptions(available int64) []ports.PresetOption {
	opts := make([]ports.PresetOption, 0, len(c.presets))
	for _, p := range c.presets {
		opts = append(opts, ports.PresetOption{
			Amount:  p,
			Enabled: p >= c.minAmount && p <= available,
		})
	}
	return opts
}
