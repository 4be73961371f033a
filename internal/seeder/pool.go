package seeder

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrEmptyPool is returned when a required reference is drawn from a pool
// that earlier steps left empty.
var ErrEmptyPool = errors.New("empty reference pool")

// pick draws one element of a required reference.
func pick[T any](r *rand.Rand, name string, pool []T) (T, error) {
	if len(pool) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: no %s to reference", ErrEmptyPool, name)
	}
	return pool[r.IntN(len(pool))], nil
}

// pickOptional draws from pool with probability p; the result is nil when
// the coin fails or the pool is empty.
func pickOptional[T any](g *DataGenerator, p float64, pool []T) any {
	if len(pool) == 0 || !g.Chance(p) {
		return nil
	}
	return pool[g.rand.IntN(len(pool))]
}

// sample returns k distinct elements of pool, or all of them in random order
// when k exceeds its size.
func sample[T any](r *rand.Rand, pool []T, k int) []T {
	if k > len(pool) {
		k = len(pool)
	}
	out := make([]T, 0, k)
	for _, i := range r.Perm(len(pool))[:k] {
		out = append(out, pool[i])
	}
	return out
}

func shuffled[T any](r *rand.Rand, pool []T) []T {
	return sample(r, pool, len(pool))
}
