package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ratefeed/internal/domain/rates"
	"ratefeed/internal/domain/shared/daterange"
)

const dateLayout = "2006-01-02"

// RateBlock is the JSON rendering shared by both engines. Dates are
// calendar-date strings, the rate a plain number.
type RateBlock struct {
	Start       string  `json:"start"`
	End         string  `json:"end"`
	NightlyRate float64 `json:"nightlyRate"`
	Reliability string  `json:"reliability,omitempty"`
}

// MapRateBlocks renders domain blocks for transport. An empty computation
// maps to an empty array, never null.
func MapRateBlocks(blocks []rates.RateBlock) []RateBlock {
	out := make([]RateBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, RateBlock{
			Start:       b.Start.Format(dateLayout),
			End:         b.End.Format(dateLayout),
			NightlyRate: b.NightlyRate.InexactFloat64(),
			Reliability: string(b.Reliability),
		})
	}
	return out
}

// DayPricing carries a flat nightly price and/or weekday prices keyed by
// lowercase weekday name.
type DayPricing struct {
	NightlyPrice    *float64           `json:"nightlyPrice,omitempty"`
	DayOfWeekPrices map[string]float64 `json:"dayOfWeekPrices,omitempty"`
}

// PricingDateRange is an inclusive calendar-date interval.
type PricingDateRange struct {
	From  string `json:"from"`
	Until string `json:"until"`
}

type PricingOverride struct {
	DateRange PricingDateRange `json:"dateRange"`
	DayPricing
}

// NightlyPricing is the wire shape of a property's nightly configuration.
type NightlyPricing struct {
	DefaultNightlyPricing DayPricing        `json:"defaultNightlyPricing"`
	Overrides             []PricingOverride `json:"overrides,omitempty"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ToDomain converts the wire configuration into the engine's model,
// failing with ErrMalformedRecord on unparseable dates or weekday names.
func (p NightlyPricing) ToDomain() (rates.NightlyConfig, error) {
	def, err := p.DefaultNightlyPricing.toDomain()
	if err != nil {
		return rates.NightlyConfig{}, err
	}
	cfg := rates.NightlyConfig{Default: def}
	for _, o := range p.Overrides {
		span, err := parseSpan(o.DateRange)
		if err != nil {
			return rates.NightlyConfig{}, err
		}
		pricing, err := o.DayPricing.toDomain()
		if err != nil {
			return rates.NightlyConfig{}, err
		}
		cfg.Overrides = append(cfg.Overrides, rates.Override{Range: span, Pricing: pricing})
	}
	return cfg, nil
}

func (p DayPricing) toDomain() (rates.DayPricing, error) {
	out := rates.DayPricing{}
	if p.NightlyPrice != nil {
		price := decimal.NewFromFloat(*p.NightlyPrice)
		out.NightlyPrice = &price
	}
	if len(p.DayOfWeekPrices) > 0 {
		out.DayOfWeekPrices = make(map[time.Weekday]decimal.Decimal, len(p.DayOfWeekPrices))
		for name, price := range p.DayOfWeekPrices {
			day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return rates.DayPricing{}, fmt.Errorf("%w: weekday %q", rates.ErrMalformedRecord, name)
			}
			out.DayOfWeekPrices[day] = decimal.NewFromFloat(price)
		}
	}
	return out, nil
}

func parseSpan(r PricingDateRange) (daterange.Span, error) {
	from, err := time.Parse(dateLayout, r.From)
	if err != nil {
		return daterange.Span{}, fmt.Errorf("%w: from date %q", rates.ErrMalformedRecord, r.From)
	}
	until, err := time.Parse(dateLayout, r.Until)
	if err != nil {
		return daterange.Span{}, fmt.Errorf("%w: until date %q", rates.ErrMalformedRecord, r.Until)
	}
	span, err := daterange.NewSpan(from, until)
	if err != nil {
		return daterange.Span{}, fmt.Errorf("%w: range %s..%s", rates.ErrMalformedRecord, r.From, r.Until)
	}
	return span, nil
}
