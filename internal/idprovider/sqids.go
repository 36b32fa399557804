package idprovider

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/sqids/sqids-go"
)

const DefaultSqidsAlphabet = "k3G7QAe51FCsiWrNOYBUwM6XzZvdLT4j9JhyHKg2cVbxfERq0mSoI8lDpunPat"

// Sqids encodes a process-local counter, so ids never repeat within one run.
// Restarting with the same start value repeats the sequence; pass the number
// of stored records as start when the storage is persistent.
type Sqids struct {
	sq      *sqids.Sqids
	counter atomic.Uint64
}

func NewSqids(alphabet string, minLength int, start uint64) (*Sqids, error) {
	if minLength < 0 || minLength > math.MaxUint8 {
		return nil, fmt.Errorf("sqids min length out of range: %d", minLength)
	}
	sq, err := sqids.New(sqids.Options{
		Alphabet:  alphabet,
		MinLength: uint8(minLength),
	})
	if err != nil {
		return nil, fmt.Errorf("sqids init failed: %w", err)
	}
	p := &Sqids{sq: sq}
	p.counter.Store(start)
	return p, nil
}

func (p *Sqids) NewID(_ context.Context) (string, error) {
	return p.sq.Encode([]uint64{p.counter.Add(1)})
}
