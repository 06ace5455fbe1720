package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/parallel"
)

// Add performs element-wise addition. Shapes must be identical.
//
// Example:
//
//	c, err := a.Add(b)
func (a *Array[T]) Add(b *Array[T]) (*Array[T], error) {
	return a.elementWise("add", b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction. Shapes must be identical.
func (a *Array[T]) Sub(b *Array[T]) (*Array[T], error) {
	return a.elementWise("sub", b, func(x, y T) T { return x - y })
}

// elementWise walks both flat buffers in lockstep. Neither operand's
// shape is touched.
func (a *Array[T]) elementWise(op string, b *Array[T], f func(x, y T) T) (*Array[T], error) {
	if !a.shape.Equal(b.shape) {
		return nil, &ShapeError{Op: op, Left: a.shape.Clone(), Right: b.shape.Clone()}
	}
	out := make([]T, len(a.data))
	for i := range out {
		out[i] = f(a.data[i], b.data[i])
	}
	return fromData(a.shape.Clone(), out), nil
}

// AddScalar adds v to every element.
func (a *Array[T]) AddScalar(v T) *Array[T] {
	return a.mapValues(func(x T) T { return x + v })
}

// MulScalar multiplies every element by v.
func (a *Array[T]) MulScalar(v T) *Array[T] {
	return a.mapValues(func(x T) T { return x * v })
}

func (a *Array[T]) mapValues(f func(x T) T) *Array[T] {
	out := make([]T, len(a.data))
	for i, x := range a.data {
		out[i] = f(x)
	}
	return fromData(a.shape.Clone(), out)
}

// Dot returns the sum of a[i]*b[i] over two vectors of identical shape.
func (a *Array[T]) Dot(b *Array[T]) (T, error) {
	var sum T
	if a.NDim() != 1 || b.NDim() != 1 {
		return sum, unsupported("dot product of rank-%d and rank-%d arrays", a.NDim(), b.NDim())
	}
	if !a.shape.Equal(b.shape) {
		return sum, &ShapeError{Op: "dot", Left: a.shape.Clone(), Right: b.shape.Clone()}
	}
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}
	return sum, nil
}

// MatMul performs matrix multiplication using parallel.DefaultConfig().
//
// For A of shape (m, k) and B of shape (k, n) the result has shape (m, n).
//
// Example:
//
//	a, _ := ndarray.Ones[float32](ndarray.Shape{3, 4})
//	b, _ := ndarray.Ones[float32](ndarray.Shape{4, 5})
//	c, _ := a.MatMul(b) // shape [3 5], every element 4
func (a *Array[T]) MatMul(b *Array[T]) (*Array[T], error) {
	return a.MatMulWith(b, parallel.DefaultConfig())
}

// MatMulWith performs matrix multiplication with an explicit parallel config.
//
// Output cell (i, j) is the dot product of row i of a and column j of b.
// Cells are independent, so they are spread across workers without locking.
func (a *Array[T]) MatMulWith(b *Array[T], cfg parallel.Config) (*Array[T], error) {
	if a.NDim() != 2 || b.NDim() != 2 {
		return nil, unsupported("matmul of rank-%d and rank-%d arrays", a.NDim(), b.NDim())
	}
	if a.shape[1] != b.shape[0] {
		return nil, &ShapeError{Op: "matmul", Left: a.shape.Clone(), Right: b.shape.Clone()}
	}

	m, n := a.shape[0], b.shape[1]

	rows := make([]*Array[T], m)
	for i := range rows {
		rows[i] = a.row(i)
	}
	cols := make([]*Array[T], n)
	for j := range cols {
		col, err := b.Column(All(), j)
		if err != nil {
			return nil, err
		}
		cols[j] = col
	}

	out := make([]T, m*n)
	parallel.ForGrid(m, n, func(i, j int) {
		// Row i and column j both have length k, so Dot cannot fail here.
		out[i*n+j], _ = rows[i].Dot(cols[j])
	}, cfg)

	return fromData(Shape{m, n}, out), nil
}

// ProductKind identifies which algorithm Mul dispatched to.
type ProductKind int

// Product kinds.
const (
	DotProduct ProductKind = iota
	MatrixProduct
)

// String returns a human-readable name for the product kind.
func (k ProductKind) String() string {
	switch k {
	case DotProduct:
		return "dot"
	case MatrixProduct:
		return "matmul"
	default:
		return "unknown"
	}
}

// Product is the result of Mul: a scalar for DotProduct, a matrix for
// MatrixProduct.
type Product[T DType] struct {
	Kind   ProductKind
	Scalar T
	Matrix *Array[T]
}

// String renders the scalar or the matrix, depending on Kind.
func (p Product[T]) String() string {
	if p.Kind == MatrixProduct && p.Matrix != nil {
		return p.Matrix.String()
	}
	return fmt.Sprint(p.Scalar)
}

// ResolveProduct picks the product for two operand shapes by inspecting
// both ranks: if either is a matrix the product is a matrix product and
// both must be matrices; two vectors give a dot product.
func ResolveProduct(a, b Shape) (ProductKind, error) {
	switch {
	case len(a) == 2 && len(b) == 2:
		return MatrixProduct, nil
	case len(a) == 2 || len(b) == 2:
		return 0, unsupported("product of rank-%d and rank-%d arrays", len(a), len(b))
	case len(a) == 1 && len(b) == 1:
		return DotProduct, nil
	default:
		return 0, unsupported("product of rank-%d and rank-%d arrays", len(a), len(b))
	}
}

// Mul multiplies a by b, choosing the dot product or matrix product from
// the operands' ranks (see ResolveProduct).
//
// Example:
//
//	p, _ := v.Mul(w)     // two vectors: p.Kind == DotProduct, p.Scalar set
//	p, _ = m.Mul(n)      // two matrices: p.Kind == MatrixProduct, p.Matrix set
func (a *Array[T]) Mul(b *Array[T]) (Product[T], error) {
	kind, err := ResolveProduct(a.shape, b.shape)
	if err != nil {
		return Product[T]{}, err
	}

	switch kind {
	case DotProduct:
		s, err := a.Dot(b)
		if err != nil {
			return Product[T]{}, err
		}
		return Product[T]{Kind: DotProduct, Scalar: s}, nil
	default:
		m, err := a.MatMul(b)
		if err != nil {
			return Product[T]{}, err
		}
		return Product[T]{Kind: MatrixProduct, Matrix: m}, nil
	}
}
