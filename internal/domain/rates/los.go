package rates

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMaxRelevantLOS bounds how many nights of a record are ever
// considered. The vast majority of bookings fall within a week; the value is
// tunable through configuration rather than baked into the engine.
const DefaultMaxRelevantLOS = 7

// RateMap maps a stay length in nights to the total price quoted (or
// interpolated) for a stay of that length. Built fresh per record.
type RateMap struct {
	prices map[int]decimal.Decimal
	filled map[int]bool
}

func (m RateMap) Empty() bool { return len(m.prices) == 0 }

// Keys returns the stay lengths present, ascending.
func (m RateMap) Keys() []int {
	keys := make([]int, 0, len(m.prices))
	for k := range m.prices {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Price returns the total price for a stay of n nights.
func (m RateMap) Price(n int) (decimal.Decimal, bool) {
	p, ok := m.prices[n]
	return p, ok
}

// Estimated reports whether any entry was derived by interpolation.
func (m RateMap) Estimated() bool { return len(m.filled) > 0 }

// withoutKeys returns a copy of the map with the given stay lengths removed.
func (m RateMap) withoutKeys(drop map[int]bool) RateMap {
	next := RateMap{prices: make(map[int]decimal.Decimal, len(m.prices)), filled: make(map[int]bool, len(m.filled))}
	for k, p := range m.prices {
		if drop[k] {
			continue
		}
		next.prices[k] = p
		if m.filled[k] {
			next.filled[k] = true
		}
	}
	return next
}

// BuildRateMap turns a record's stay-length pairs into a per-stay-length
// price map. Gaps between valid pairs are filled by extending the nightly
// rate of the last valid pair: filled(j) = (lastPrice / lastNights) * j.
// The result never reaches past min(lastValidNights, maxRelevant) — the map
// must not claim coverage the data does not support.
func BuildRateMap(pairs []Pair, maxRelevant int) RateMap {
	rm := RateMap{prices: make(map[int]decimal.Decimal), filled: make(map[int]bool)}

	minValid := 0
	for _, p := range pairs {
		if !p.Valid || p.Nights < 1 {
			continue
		}
		if minValid == 0 || p.Nights < minValid {
			minValid = p.Nights
		}
	}
	if minValid == 0 || minValid > maxRelevant {
		return rm
	}

	ordered := append([]Pair(nil), pairs...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Nights < ordered[j].Nights })

	lastNights := 0
	var lastPrice decimal.Decimal
	for _, p := range ordered {
		if !p.Valid || p.Nights < 1 {
			continue
		}
		if lastNights > 0 && p.Nights > lastNights+1 {
			perNight := lastPrice.Div(decimal.NewFromInt(int64(lastNights)))
			for j := lastNights + 1; j < p.Nights; j++ {
				if _, ok := rm.prices[j]; ok {
					continue
				}
				rm.prices[j] = perNight.Mul(decimal.NewFromInt(int64(j)))
				rm.filled[j] = true
			}
		}
		rm.prices[p.Nights] = p.Price
		delete(rm.filled, p.Nights)
		lastNights, lastPrice = p.Nights, p.Price
	}

	bound := lastNights
	if maxRelevant < bound {
		bound = maxRelevant
	}
	for k := range rm.prices {
		if k > bound {
			delete(rm.prices, k)
			delete(rm.filled, k)
		}
	}
	return rm
}

// LOSEngine derives dated rate blocks from length-of-stay feed records.
// Records are expected in chronological order.
type LOSEngine struct {
	Records        []Record
	MaxRelevantLOS int
}

func (e LOSEngine) maxRelevant() int {
	if e.MaxRelevantLOS > 0 {
		return e.MaxRelevantLOS
	}
	return DefaultMaxRelevantLOS
}

// ComputeBaseRates merges the records into non-overlapping blocks. A day
// claimed by an already-emitted block always wins over the current record,
// and the current record yields any remaining contested day to the record
// that follows it.
func (e LOSEngine) ComputeBaseRates(ctx context.Context) ([]RateBlock, error) {
	maxRelevant := e.maxRelevant()

	maps := make([]RateMap, len(e.Records))
	for i, rec := range e.Records {
		maps[i] = BuildRateMap(rec.Pairs, maxRelevant)
	}

	blocks := []RateBlock{}
	for i, rec := range e.Records {
		rm := maps[i]
		if len(blocks) == 0 || rec.Start.After(blocks[len(blocks)-1].End) {
			blocks = appendBlock(blocks, rm, rec.Start)
			continue
		}

		drop := make(map[int]bool)
		for _, k := range rm.Keys() {
			if claimedByBlocks(blocks, keyDate(rec.Start, k)) {
				drop[k] = true
			}
		}
		if i < len(e.Records)-1 {
			next := claimedDays(e.Records[i+1].Start, maps[i+1])
			for _, k := range rm.Keys() {
				if drop[k] {
					continue
				}
				if next[keyDate(rec.Start, k)] {
					drop[k] = true
				}
			}
		}
		blocks = appendBlock(blocks, rm.withoutKeys(drop), rec.Start)
	}
	return blocks, nil
}

// appendBlock emits one block for a record's remaining rate map. The nightly
// rate averages the cumulative stay prices over the total nights they cover,
// so the denominator is the sum of stay lengths, not the entry count.
func appendBlock(blocks []RateBlock, rm RateMap, start time.Time) []RateBlock {
	if rm.Empty() {
		return blocks
	}
	keys := rm.Keys()
	sum := decimal.Zero
	nights := 0
	for _, k := range keys {
		sum = sum.Add(rm.prices[k])
		nights += k
	}
	block := RateBlock{
		Start:       keyDate(start, keys[0]),
		End:         start.AddDate(0, 0, keys[len(keys)-1]),
		NightlyRate: sum.Div(decimal.NewFromInt(int64(nights))).Round(2),
	}
	if rm.Estimated() {
		block.Reliability = ReliabilityEstimated
	}
	return append(blocks, block)
}

// keyDate maps a 1-indexed stay length to the calendar day it claims.
func keyDate(start time.Time, k int) time.Time {
	return start.AddDate(0, 0, k-1)
}

func claimedByBlocks(blocks []RateBlock, day time.Time) bool {
	for _, b := range blocks {
		if !day.Before(b.Start) && !day.After(b.End) {
			return true
		}
	}
	return false
}

func claimedDays(start time.Time, rm RateMap) map[time.Time]bool {
	days := make(map[time.Time]bool, len(rm.prices))
	for _, k := range rm.Keys() {
		days[keyDate(start, k)] = true
	}
	return days
}

var _ Source = LOSEngine{}
