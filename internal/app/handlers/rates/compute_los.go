package rates

import (
	"context"

	"ratefeed/internal/app/dto"
	"ratefeed/internal/app/queries"
	domainrates "ratefeed/internal/domain/rates"
)

const computeLOSKey = "rates.compute_los"

// ComputeLOSRatesQuery computes nightly-equivalent blocks from raw
// length-of-stay feed records.
type ComputeLOSRatesQuery struct {
	PropertyID string
	Records    []string
}

func (q ComputeLOSRatesQuery) Key() string { return computeLOSKey }

type ComputeLOSRatesHandler struct {
	MaxRelevantLOS int
}

func (h *ComputeLOSRatesHandler) Handle(ctx context.Context, q ComputeLOSRatesQuery) ([]dto.RateBlock, error) {
	records, err := domainrates.ParseRecords(q.Records)
	if err != nil {
		return nil, err
	}
	engine := domainrates.LOSEngine{Records: records, MaxRelevantLOS: h.MaxRelevantLOS}
	blocks, err := engine.ComputeBaseRates(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapRateBlocks(blocks), nil
}

var _ queries.Handler[ComputeLOSRatesQuery, []dto.RateBlock] = (*ComputeLOSRatesHandler)(nil)
