package rates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ratefeed/internal/app/dto"
	"ratefeed/internal/app/queries"
	domainrates "ratefeed/internal/domain/rates"
)

func newBus(now func() time.Time) *queries.InMemoryBus {
	bus := queries.NewInMemoryBus()
	queries.RegisterHandler(bus, ComputeLOSRatesQuery{}.Key(), &ComputeLOSRatesHandler{})
	queries.RegisterHandler(bus, ComputeNightlyRatesQuery{}.Key(), &ComputeNightlyRatesHandler{HorizonYears: 1, Now: now})
	return bus
}

func TestComputeLOSRatesThroughBus(t *testing.T) {
	bus := newBus(nil)
	blocks, err := queries.Ask[ComputeLOSRatesQuery, []dto.RateBlock](context.Background(), bus, ComputeLOSRatesQuery{
		PropertyID: "prop-1",
		Records: []string{
			"2025-04-28,8,1,150.00,4,520.00,7,840.00",
			"2025-05-06,8,1,160.00,4,530.00,7,850.00",
		},
	})
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	require.Equal(t, dto.RateBlock{Start: "2025-04-28", End: "2025-05-05", NightlyRate: 131.79, Reliability: "estimated"}, blocks[0])
	require.Equal(t, "2025-05-06", blocks[1].Start)
	require.InDelta(t, 135.63, blocks[1].NightlyRate, 1e-9)
}

func TestComputeLOSRatesEmptyInput(t *testing.T) {
	bus := newBus(nil)
	blocks, err := queries.Ask[ComputeLOSRatesQuery, []dto.RateBlock](context.Background(), bus, ComputeLOSRatesQuery{PropertyID: "prop-1"})
	require.NoError(t, err)
	require.NotNil(t, blocks)
	require.Empty(t, blocks)
}

func TestComputeLOSRatesMalformedRecord(t *testing.T) {
	bus := newBus(nil)
	_, err := queries.Ask[ComputeLOSRatesQuery, []dto.RateBlock](context.Background(), bus, ComputeLOSRatesQuery{
		PropertyID: "prop-1",
		Records:    []string{"not-a-date,8,1,150.00"},
	})
	require.ErrorIs(t, err, domainrates.ErrMalformedRecord)
}

func TestComputeNightlyRatesThroughBus(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) }
	bus := newBus(now)

	flat := 100.0
	peak := 150.0
	blocks, err := queries.Ask[ComputeNightlyRatesQuery, []dto.RateBlock](context.Background(), bus, ComputeNightlyRatesQuery{
		PropertyID: "prop-1",
		Pricing: dto.NightlyPricing{
			DefaultNightlyPricing: dto.DayPricing{NightlyPrice: &flat},
			Overrides: []dto.PricingOverride{
				{
					DateRange:  dto.PricingDateRange{From: "2025-06-01", Until: "2025-06-10"},
					DayPricing: dto.DayPricing{NightlyPrice: &peak},
				},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	require.Equal(t, dto.RateBlock{Start: "2025-06-01", End: "2025-06-10", NightlyRate: 150}, blocks[1])
}

func TestComputeNightlyRatesRejectsOverlappingOverrides(t *testing.T) {
	bus := newBus(nil)
	peak := 150.0
	_, err := queries.Ask[ComputeNightlyRatesQuery, []dto.RateBlock](context.Background(), bus, ComputeNightlyRatesQuery{
		PropertyID: "prop-1",
		Pricing: dto.NightlyPricing{
			Overrides: []dto.PricingOverride{
				{DateRange: dto.PricingDateRange{From: "2025-06-01", Until: "2025-06-10"}, DayPricing: dto.DayPricing{NightlyPrice: &peak}},
				{DateRange: dto.PricingDateRange{From: "2025-06-05", Until: "2025-06-15"}, DayPricing: dto.DayPricing{NightlyPrice: &peak}},
			},
		},
	})
	require.ErrorIs(t, err, domainrates.ErrOverlappingOverrides)
}
