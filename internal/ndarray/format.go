package ndarray

import (
	"fmt"
	"strings"
)

// Render formats the array one row per line with elements separated by
// single spaces. A vector is rendered as a single row.
func (a *Array[T]) Render() (string, error) {
	var rows, cols int
	switch a.NDim() {
	case 1:
		rows, cols = 1, a.shape[0]
	case 2:
		rows, cols = a.shape[0], a.shape[1]
	default:
		return "", unsupported("render of a rank-%d array", a.NDim())
	}

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range a.data[r*cols : (r+1)*cols] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, v)
		}
	}
	return sb.String(), nil
}

// String implements fmt.Stringer. See Render.
func (a *Array[T]) String() string {
	s, err := a.Render()
	if err != nil {
		return a.Describe()
	}
	return s
}

// Describe returns a one-line summary of the array's type and shape.
func (a *Array[T]) Describe() string {
	return fmt.Sprintf("Array[%s]%v", a.dtype, a.shape)
}
