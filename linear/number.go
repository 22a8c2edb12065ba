// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"gonum.org/v1/gonum/num/quat"
)

// Number returns q as a quat.Number.
func (q *Q[T]) Number() quat.Number {
	return quat.Number{
		Real: float64(q.R),
		Imag: float64(q.V[0]),
		Jmag: float64(q.V[1]),
		Kmag: float64(q.V[2]),
	}
}

// FromNumber sets q to contain n.
func (q *Q[T]) FromNumber(n quat.Number) {
	q.V = V3[T]{T(n.Imag), T(n.Jmag), T(n.Kmag)}
	q.R = T(n.Real)
	q.notify()
}
