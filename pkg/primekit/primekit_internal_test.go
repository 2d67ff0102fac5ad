package primekit

import (
	"math"
	"testing"

	"go.llib.dev/testcase/assert"
)

func TestProducer_candidateOverflow(t *testing.T) {
	// math.MaxInt64 is divisible by 7
	p := &Producer{
		known:     []int64{2, 3, 7},
		candidate: math.MaxInt64 - 1,
		started:   true,
	}

	assert.False(t, p.Next())
	assert.ErrorIs(t, ErrOverflow, p.Err())
	assert.False(t, p.Next(), "once failed, the producer stays exhausted")
	assert.Equal(t, []int64{2, 3, 7}, p.Known())
}

func TestProducer_isPrime(t *testing.T) {
	p := &Producer{known: []int64{2, 3, 5, 7}}

	for n, exp := range map[int64]bool{
		9:  false,
		11: true,
		25: false,
		49: false,
		53: true,
		77: false,
	} {
		assert.Equal(t, exp, p.isPrime(n), assert.Message("unexpected result for candidate"))
	}
}
