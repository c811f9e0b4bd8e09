// Copyright 2025 ffsvm-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

// Triangular holds the strict lower triangle of an n x n matrix as a
// contiguous array of n*(n-1)/2 entries, indexed by the pair (i, j) with
// i > j. It replaces a pair-keyed map for per-class-pair data: rho,
// probA, probB and the decision-value vector are all Triangular[float64].
//
// The index function k(i,j) = i*(i-1)/2 + j gives every pair a unique,
// contiguous slot and makes iterating all pairs a single linear scan.
type Triangular[T Lanes] struct {
	data []T
	n    int
}

// NewTriangular allocates a zeroed Triangular store for n classes,
// n*(n-1)/2 entries. n may be 0 or 1, yielding an empty store.
func NewTriangular[T Lanes](n int) *Triangular[T] {
	size := 0
	if n > 1 {
		size = n * (n - 1) / 2
	}
	return &Triangular[T]{data: make([]T, size), n: n}
}

// N returns the dimension (number of classes) the store was built for.
func (t *Triangular[T]) N() int { return t.n }

// Len returns the number of stored entries, n*(n-1)/2.
func (t *Triangular[T]) Len() int { return len(t.data) }

// index computes k(i,j) for i > j. Callers must ensure i > j; At/Set below
// normalize the argument order so callers may pass any distinct pair.
func index(i, j int) int {
	return i*(i-1)/2 + j
}

// At returns the entry for the unordered pair (i, j), i != j.
func (t *Triangular[T]) At(i, j int) T {
	if i < j {
		i, j = j, i
	}
	return t.data[index(i, j)]
}

// Set writes the entry for the unordered pair (i, j), i != j.
func (t *Triangular[T]) Set(i, j int, val T) {
	if i < j {
		i, j = j, i
	}
	t.data[index(i, j)] = val
}

// AtPairIndex returns the entry at the pair's linear index k directly
// (0 <= k < Len()), used when iterating pairs in canonical order rather
// than by (i, j).
func (t *Triangular[T]) AtPairIndex(k int) T { return t.data[k] }

// SetPairIndex writes the entry at the pair's linear index k directly.
func (t *Triangular[T]) SetPairIndex(k int, val T) { t.data[k] = val }

// Raw exposes the backing slice, e.g. for bulk intake from a parsed model
// file where entries are already listed in canonical pair order.
func (t *Triangular[T]) Raw() []T { return t.data }
