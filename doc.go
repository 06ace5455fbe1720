// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides dense rank-1 (vector) and rank-2 (matrix) numeric
// arrays backed by a single contiguous row-major buffer.
//
// # Basic Usage
//
//	m, err := ndarray.New[int32](ndarray.Shape{3, 4}, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t, _ := m.Transpose()      // shape [4 3]
//	row, _ := t.Row(0)         // [0 4 8]
//	col, _ := m.Column(ndarray.All(), 1) // [1 5 9]
//
// # Indexing
//
// Go has no indexing operators for user types, so each indexing form is a method:
//   - At(i) / At(r, c): a single element
//   - Slice(s): a run of vector elements, or a stack of matrix rows
//   - Row(i): one matrix row as a vector
//   - Column(rows, c): column c of the selected rows
//   - RowSlice(r, cols): the selected columns of row r
//
// Every result is a copy; arrays never share storage.
//
// # Arithmetic
//
// Add and Sub require identical shapes; (2, 3) and (3, 2) are rejected even
// though both hold six elements. Mul picks the algorithm from both operand
// ranks: two vectors give a dot product, two matrices a matrix product, and
// anything else fails with ErrUnsupportedOperation.
//
//	p, _ := v.Mul(w)
//	switch p.Kind {
//	case ndarray.DotProduct:
//	    fmt.Println(p.Scalar)
//	case ndarray.MatrixProduct:
//	    fmt.Println(p.Matrix)
//	}
//
// # Errors
//
// Failures are reported with ErrShapeMismatch, ErrIndexOutOfBounds,
// ErrUnsupportedOperation and ErrInvalidShape, matched with errors.Is.
package ndarray
