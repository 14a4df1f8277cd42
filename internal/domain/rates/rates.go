package rates

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMalformedRecord      = errors.New("rates: malformed record")
	ErrNoRateAvailable      = errors.New("rates: no nightly rate resolvable")
	ErrOverlappingOverrides = errors.New("rates: override date ranges overlap")
	ErrOverrideWithoutPrice = errors.New("rates: override defines no price")
)

// Reliability marks how a block's rate was obtained.
type Reliability string

// ReliabilityEstimated tags blocks whose rate was derived by interpolation
// rather than read directly from feed data.
const ReliabilityEstimated Reliability = "estimated"

// RateBlock is a contiguous inclusive date range sharing one nightly rate.
// Blocks produced by a single computation are chronological and never share
// a calendar day.
type RateBlock struct {
	Start       time.Time
	End         time.Time
	NightlyRate decimal.Decimal
	Reliability Reliability
}

// Source computes nightly-equivalent rate blocks from the raw pricing
// payload it was constructed with. Implementations are pure: repeated calls
// with the same payload yield identical blocks, and independent calls are
// safe to run concurrently.
type Source interface {
	ComputeBaseRates(ctx context.Context) ([]RateBlock, error)
}
