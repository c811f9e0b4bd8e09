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

// Matrix is a row-optimized, lane-padded 2D store: each of its Rows rows is
// a contiguous, zero-padded slice of PaddedCols elements, so a row iterator
// always yields a slice whose length is a whole multiple of the current
// dispatch level's lane width. This is the support-vector store's shape:
// rows are support vectors, columns are attributes.
type Matrix[T Lanes] struct {
	data       []T
	rows       int
	cols       int // logical column count (<= paddedCols)
	paddedCols int
}

// NewMatrix allocates a zeroed Matrix with `rows` rows of `cols` logical
// columns, padded up to a multiple of LaneWidth[T]().
func NewMatrix[T Lanes](rows, cols int) *Matrix[T] {
	padded := PadLen[T](cols)
	return &Matrix[T]{
		data:       make([]T, rows*padded),
		rows:       rows,
		cols:       cols,
		paddedCols: padded,
	}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the logical (unpadded) column count.
func (m *Matrix[T]) Cols() int { return m.cols }

// PaddedCols returns the padded row length; always a multiple of
// LaneWidth[T]().
func (m *Matrix[T]) PaddedCols() int { return m.paddedCols }

// Row returns row i as a padded slice, including zero-padding lanes beyond
// Cols(). The returned slice aliases the matrix's storage.
func (m *Matrix[T]) Row(i int) []T {
	start := i * m.paddedCols
	return m.data[start : start+m.paddedCols]
}

// Set writes the logical element (row, col); col must be < Cols().
func (m *Matrix[T]) Set(row, col int, val T) {
	m.data[row*m.paddedCols+col] = val
}

// At reads the logical element (row, col).
func (m *Matrix[T]) At(row, col int) T {
	return m.data[row*m.paddedCols+col]
}

// RowIter calls fn once per row, in order, passing the row's padded slice.
// Iteration stops early if fn returns false.
func (m *Matrix[T]) RowIter(fn func(row int, data []T) bool) {
	for i := 0; i < m.rows; i++ {
		if !fn(i, m.Row(i)) {
			return
		}
	}
}

// Block is a dense, non-padded 2D store used for dual-coefficient blocks:
// rows are indexed by "other-class slot", columns by support-vector index
// within a class. It carries no lane-padding contract because it is never
// fed to the kernel evaluator directly.
type Block[T Lanes] struct {
	data []T
	rows int
	cols int
}

// NewBlock allocates a zeroed dense rows x cols block.
func NewBlock[T Lanes](rows, cols int) *Block[T] {
	return &Block[T]{data: make([]T, rows*cols), rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (b *Block[T]) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Block[T]) Cols() int { return b.cols }

// Row returns row i as a contiguous slice aliasing the block's storage.
func (b *Block[T]) Row(i int) []T {
	start := i * b.cols
	return b.data[start : start+b.cols]
}

// At reads element (row, col).
func (b *Block[T]) At(row, col int) T { return b.data[row*b.cols+col] }

// Set writes element (row, col).
func (b *Block[T]) Set(row, col int, val T) { b.data[row*b.cols+col] = val }

// Raw exposes the backing row-major slice, e.g. for wrapping in a
// gonum.org/v1/gonum/mat.Dense without copying.
func (b *Block[T]) Raw() []T { return b.data }
