package rates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ratefeed/internal/domain/shared/daterange"
)

const feedDateLayout = "2006-01-02"

// Pair is one stay-length quote from a feed record. Invalid pairs (price
// missing, non-numeric, or not positive) are carried through so the engine
// can skip them without losing the surrounding structure.
type Pair struct {
	Nights int
	Price  decimal.Decimal
	Valid  bool
}

// Record is one dated length-of-stay entry from the upstream feed.
type Record struct {
	Start  time.Time
	MaxLOS int
	Pairs  []Pair
}

// ParseRecord parses the feed wire format
// "<startDate>,<maxLOS>,<los1>,<price1>,<los2>,<price2>,...".
// Structural problems (bad date, bad stay-length token) fail with
// ErrMalformedRecord; a bad price only invalidates its own pair.
func ParseRecord(raw string) (Record, error) {
	tokens := strings.Split(strings.TrimSpace(raw), ",")
	if len(tokens) < 2 {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRecord, raw)
	}
	start, err := time.Parse(feedDateLayout, strings.TrimSpace(tokens[0]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: start date %q", ErrMalformedRecord, tokens[0])
	}
	maxLOS, err := strconv.Atoi(strings.TrimSpace(tokens[1]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: max stay %q", ErrMalformedRecord, tokens[1])
	}

	rec := Record{Start: daterange.Day(start), MaxLOS: maxLOS}
	for i := 2; i < len(tokens); i += 2 {
		nights, err := strconv.Atoi(strings.TrimSpace(tokens[i]))
		if err != nil || nights < 1 {
			return Record{}, fmt.Errorf("%w: stay length %q", ErrMalformedRecord, tokens[i])
		}
		pair := Pair{Nights: nights}
		if i+1 < len(tokens) {
			pair.Price, pair.Valid = parsePrice(tokens[i+1])
		}
		rec.Pairs = append(rec.Pairs, pair)
	}
	return rec, nil
}

// ParseRecords parses a feed batch, failing fast on the first malformed
// record.
func ParseRecords(raws []string) ([]Record, error) {
	records := make([]Record, 0, len(raws))
	for _, raw := range raws {
		rec, err := ParseRecord(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// parsePrice treats the literal "null", non-numeric tokens and non-positive
// amounts as absent.
func parsePrice(token string) (decimal.Decimal, bool) {
	token = strings.TrimSpace(token)
	if token == "" || strings.EqualFold(token, "null") {
		return decimal.Decimal{}, false
	}
	price, err := decimal.NewFromString(token)
	if err != nil || !price.IsPositive() {
		return decimal.Decimal{}, false
	}
	return price, true
}
