// Package primekit provides a lazy prime number producer.
//
// The Producer yields the prime sequence (2, 3, 5, 7, 11, ...) one value at a time.
// Every prime it finds is retained, and later candidates are tested by trial division against them,
// so resuming the sequence never recomputes earlier primes.
package primekit

import (
	"slices"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/mathkit"
)

// ErrOverflow means the candidate cursor reached the end of the int64 range.
const ErrOverflow errorkit.Error = "ErrOverflow"

// New returns a fresh Producer.
// The zero value of Producer is equally ready to use.
func New() *Producer {
	return &Producer{}
}

// Producer is a stateful prime sequence iterator.
// It implements iterkit.PullIter[int64].
//
// A Producer is not safe for concurrent use.
type Producer struct {
	known     []int64
	candidate int64
	started   bool

	value  int64
	closed bool
	err    error
}

var _ iterkit.PullIter[int64] = (*Producer)(nil)

// Next produces the next prime and makes it available through Value.
// The first call produces 2.
// Next reports false when no further prime can be produced, Err tells the cause.
func (p *Producer) Next() bool {
	if p.closed || p.err != nil {
		return false
	}
	if !p.started {
		p.started = true
		p.candidate = 3
		p.accept(2)
		return true
	}
	for {
		if p.isPrime(p.candidate) {
			p.accept(p.candidate)
			p.advance()
			return true
		}
		if !p.advance() {
			return false
		}
	}
}

// Value returns the most recently produced prime.
func (p *Producer) Value() int64 {
	return p.value
}

func (p *Producer) Err() error {
	return p.err
}

func (p *Producer) Close() error {
	p.closed = true
	return nil
}

// Known returns the primes produced so far in generation order.
func (p *Producer) Known() []int64 {
	return slices.Clone(p.known)
}

func (p *Producer) Len() int {
	return len(p.known)
}

// Seq returns the Producer as a single-use iterator.
// Breaking out of the range loop closes the Producer.
func (p *Producer) Seq() iterkit.SingleUseErrSeq[int64] {
	return iterkit.FromPullIter[int64](p)
}

// isPrime checks n against the known primes in increasing order.
// Every prime below n is already known when n is reached,
// so the scan can stop once the square of the trial prime exceeds n.
func (p *Producer) isPrime(n int64) bool {
	for _, prime := range p.known {
		if n/prime < prime {
			return true
		}
		if n%prime == 0 {
			return false
		}
	}
	return true
}

func (p *Producer) accept(prime int64) {
	p.known = append(p.known, prime)
	p.value = prime
}

// advance moves the candidate cursor by one.
// When the cursor is already at the int64 ceiling, the Producer ends with ErrOverflow.
func (p *Producer) advance() bool {
	next, ok := mathkit.SumInt(p.candidate, 1)
	if !ok {
		p.err = ErrOverflow.F("prime candidate exceeded %d", p.candidate)
		return false
	}
	p.candidate = next
	return true
}
