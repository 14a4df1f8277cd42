package rates

import (
	"context"
	"time"

	"ratefeed/internal/app/dto"
	"ratefeed/internal/app/queries"
	domainrates "ratefeed/internal/domain/rates"
)

const computeNightlyKey = "rates.compute_nightly"

// ComputeNightlyRatesQuery computes blocks from a property's nightly
// pricing configuration.
type ComputeNightlyRatesQuery struct {
	PropertyID string
	Pricing    dto.NightlyPricing
}

func (q ComputeNightlyRatesQuery) Key() string { return computeNightlyKey }

type ComputeNightlyRatesHandler struct {
	HorizonYears int
	Now          func() time.Time
}

func (h *ComputeNightlyRatesHandler) Handle(ctx context.Context, q ComputeNightlyRatesQuery) ([]dto.RateBlock, error) {
	cfg, err := q.Pricing.ToDomain()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	engine := domainrates.NightlyEngine{Config: cfg, Now: h.Now, HorizonYears: h.HorizonYears}
	blocks, err := engine.ComputeBaseRates(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapRateBlocks(blocks), nil
}

var _ queries.Handler[ComputeNightlyRatesQuery, []dto.RateBlock] = (*ComputeNightlyRatesHandler)(nil)
