package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ratefeed/internal/domain/shared/daterange"
)

// DefaultHorizonYears is the minimum span of future pricing the nightly
// engine resolves, regardless of how far any override reaches.
const DefaultHorizonYears = 2

// DayPricing holds either a flat nightly price, per-weekday prices, or both.
// The flat price wins when both are set.
type DayPricing struct {
	NightlyPrice    *decimal.Decimal
	DayOfWeekPrices map[time.Weekday]decimal.Decimal
}

func (p DayPricing) empty() bool {
	return p.NightlyPrice == nil && len(p.DayOfWeekPrices) == 0
}

// rateFor resolves the price for one calendar day.
func (p DayPricing) rateFor(day time.Time) (decimal.Decimal, bool) {
	if p.NightlyPrice != nil {
		return *p.NightlyPrice, true
	}
	price, ok := p.DayOfWeekPrices[day.Weekday()]
	return price, ok
}

// Override is a date-ranged pricing rule taking precedence over the default.
type Override struct {
	Range   daterange.Span
	Pricing DayPricing
}

// NightlyConfig is the nightly/calendar pricing payload for one property.
type NightlyConfig struct {
	Default   DayPricing
	Overrides []Override
}

func (c NightlyConfig) empty() bool {
	return c.Default.empty() && len(c.Overrides) == 0
}

// Validate rejects ambiguous configurations up front: overrides whose date
// ranges overlap, and overrides that define no price at all. The engine
// itself stays permissive and resolves overlaps first-match-wins.
func (c NightlyConfig) Validate() error {
	for i, o := range c.Overrides {
		if o.Pricing.empty() {
			return fmt.Errorf("%w: override %d", ErrOverrideWithoutPrice, i)
		}
		for j := i + 1; j < len(c.Overrides); j++ {
			if o.Range.Overlaps(c.Overrides[j].Range) {
				return fmt.Errorf("%w: overrides %d and %d", ErrOverlappingOverrides, i, j)
			}
		}
	}
	return nil
}

// NightlyEngine resolves per-day rates from a nightly pricing configuration
// and compresses them into blocks. Now is injectable for deterministic runs;
// it defaults to time.Now.
type NightlyEngine struct {
	Config       NightlyConfig
	Now          func() time.Time
	HorizonYears int
}

func (e NightlyEngine) today() time.Time {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return daterange.Day(now())
}

func (e NightlyEngine) horizonYears() int {
	if e.HorizonYears > 0 {
		return e.HorizonYears
	}
	return DefaultHorizonYears
}

// Horizon returns the later of today plus the configured minimum span and
// the furthest override end date.
func (e NightlyEngine) Horizon(today time.Time) time.Time {
	horizon := today.AddDate(e.horizonYears(), 0, 0)
	for _, o := range e.Config.Overrides {
		if o.Range.Until.After(horizon) {
			horizon = o.Range.Until
		}
	}
	return horizon
}

// ResolveDayRate returns the nightly rate for one calendar day: the first
// override containing the day wins, falling back to the default pricing.
func (e NightlyEngine) ResolveDayRate(day time.Time) (decimal.Decimal, error) {
	day = daterange.Day(day)
	for _, o := range e.Config.Overrides {
		if !o.Range.Contains(day) {
			continue
		}
		if price, ok := o.Pricing.rateFor(day); ok {
			return price, nil
		}
		break
	}
	if price, ok := e.Config.Default.rateFor(day); ok {
		return price, nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrNoRateAvailable, day.Format("2006-01-02"))
}

// ComputeBaseRates resolves every day from today through the horizon and
// run-length-compresses consecutive identical rates. The blocks cover the
// whole horizon with no gaps; adjacent blocks never share a rate.
func (e NightlyEngine) ComputeBaseRates(ctx context.Context) ([]RateBlock, error) {
	blocks := []RateBlock{}
	if e.Config.empty() {
		return blocks, nil
	}

	today := e.today()
	days, err := daterange.Days(today, e.Horizon(today), true)
	if err != nil {
		return nil, err
	}
	for _, day := range days {
		rate, err := e.ResolveDayRate(day)
		if err != nil {
			return nil, err
		}
		if len(blocks) > 0 && blocks[len(blocks)-1].NightlyRate.Equal(rate) {
			blocks[len(blocks)-1].End = day
			continue
		}
		blocks = append(blocks, RateBlock{Start: day, End: day, NightlyRate: rate})
	}
	return blocks, nil
}

var _ Source = NightlyEngine{}
