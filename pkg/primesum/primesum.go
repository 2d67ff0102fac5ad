// Package primesum sums the prime numbers below an exclusive bound.
package primesum

import (
	"context"
	"io"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/mathkit"
	"go.llib.dev/primesum/pkg/primekit"
)

// DefaultBound is the exclusive upper limit used when no bound is configured.
const DefaultBound int64 = 2_000_000

const (
	// ErrProducerStalled means the prime producer failed to yield a value.
	// A correct producer never does that, so it should be treated as fatal.
	ErrProducerStalled errorkit.Error = "ErrProducerStalled"
	// ErrSumOverflow means the running sum no longer fits into an int64.
	ErrSumOverflow     errorkit.Error = "ErrSumOverflow"
)

// Sum returns the sum of all primes strictly below bound.
func Sum(ctx context.Context, bound int64) (int64, error) {
	return Driver{Bound: bound}.Sum(ctx)
}

// Driver pulls primes from a Producer and accumulates them while they stay below Bound.
type Driver struct {
	Bound int64
	// Producer constructs the prime source.
	// When nil, a fresh primekit.Producer is used.
	Producer func() iterkit.PullIter[int64]
	Logger   *logging.Logger
	// Visit is called with every prime that contributes to the sum.
	Visit func(prime int64)
}

func (d Driver) Sum(ctx context.Context) (_ int64, rErr error) {
	producer := d.producer()
	defer errorkit.Finish(&rErr, producer.Close)

	d.logger().Debug(ctx, "summing primes", logging.Field("bound", d.Bound))

	var (
		sum     int64
		current int64
		count   int
	)
	// The value that ends the loop is fetched but never added,
	// so the first prime at or above the bound is excluded.
	for current < d.Bound {
		next, ok := mathkit.SumInt(sum, current)
		if !ok {
			return sum, ErrSumOverflow.F("adding %d to %d", current, sum)
		}
		sum = next
		if current != 0 {
			count++
			if d.Visit != nil {
				d.Visit(current)
			}
		}
		if !producer.Next() {
			return sum, ErrProducerStalled.Wrap(producer.Err())
		}
		current = producer.Value()
	}

	d.logger().Debug(ctx, "primes summed",
		logging.Field("bound", d.Bound),
		logging.Field("count", count),
		logging.Field("sum", sum))
	return sum, nil
}

func (d Driver) producer() iterkit.PullIter[int64] {
	if d.Producer != nil {
		return d.Producer()
	}
	return primekit.New()
}

var discardLogger = &logging.Logger{Out: io.Discard}

func (d Driver) logger() *logging.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return discardLogger
}
