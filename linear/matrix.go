// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"golang.org/x/image/math/f32"
)

// M3 is a column-major 3x3 matrix.
type M3[T Float] [3]V3[T]

// I makes m an identity matrix.
func (m *M3[T]) I() { *m = M3[T]{{1}, {0, 1}, {0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M3[T]) Mul(l, r *M3[T]) {
	var n M3[T]
	for i := range n {
		for j := range n {
			for k := range n {
				n[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = n
}

// Transpose sets m to contain the transpose of n.
func (m *M3[T]) Transpose(n *M3[T]) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
}

// Invert sets m to contain the inverse of n.
func (m *M3[T]) Invert(n *M3[T]) {
	s0 := n[1][1]*n[2][2] - n[1][2]*n[2][1]
	s1 := n[1][0]*n[2][2] - n[1][2]*n[2][0]
	s2 := n[1][0]*n[2][1] - n[1][1]*n[2][0]
	idet := 1 / (n[0][0]*s0 - n[0][1]*s1 + n[0][2]*s2)
	*m = M3[T]{
		{
			s0 * idet,
			-(n[0][1]*n[2][2] - n[0][2]*n[2][1]) * idet,
			(n[0][1]*n[1][2] - n[0][2]*n[1][1]) * idet,
		},
		{
			-s1 * idet,
			(n[0][0]*n[2][2] - n[0][2]*n[2][0]) * idet,
			-(n[0][0]*n[1][2] - n[0][2]*n[1][0]) * idet,
		},
		{
			s2 * idet,
			-(n[0][0]*n[2][1] - n[0][1]*n[2][0]) * idet,
			(n[0][0]*n[1][1] - n[0][1]*n[1][0]) * idet,
		},
	}
}

// RotateQ sets m to contain the rotation described by
// the unit quaternion q.
func (m *M3[T]) RotateQ(q *Q[T]) {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	*m = M3[T]{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy)},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx)},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy)},
	}
}

// M4 is a column-major 4x4 matrix.
type M4[T Float] [4]V4[T]

// I makes m an identity matrix.
func (m *M4[T]) I() { *m = M4[T]{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M4[T]) Mul(l, r *M4[T]) {
	var n M4[T]
	for i := range n {
		for j := range n {
			for k := range n {
				n[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = n
}

// Transpose sets m to contain the transpose of n.
func (m *M4[T]) Transpose(n *M4[T]) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
}

// Invert sets m to contain the inverse of n.
func (m *M4[T]) Invert(n *M4[T]) {
	s0 := n[0][0]*n[1][1] - n[0][1]*n[1][0]
	s1 := n[0][0]*n[1][2] - n[0][2]*n[1][0]
	s2 := n[0][0]*n[1][3] - n[0][3]*n[1][0]
	s3 := n[0][1]*n[1][2] - n[0][2]*n[1][1]
	s4 := n[0][1]*n[1][3] - n[0][3]*n[1][1]
	s5 := n[0][2]*n[1][3] - n[0][3]*n[1][2]
	c0 := n[2][0]*n[3][1] - n[2][1]*n[3][0]
	c1 := n[2][0]*n[3][2] - n[2][2]*n[3][0]
	c2 := n[2][0]*n[3][3] - n[2][3]*n[3][0]
	c3 := n[2][1]*n[3][2] - n[2][2]*n[3][1]
	c4 := n[2][1]*n[3][3] - n[2][3]*n[3][1]
	c5 := n[2][2]*n[3][3] - n[2][3]*n[3][2]
	idet := 1 / (s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0)
	var i M4[T]
	i[0][0] = (c5*n[1][1] - c4*n[1][2] + c3*n[1][3]) * idet
	i[0][1] = (-c5*n[0][1] + c4*n[0][2] - c3*n[0][3]) * idet
	i[0][2] = (s5*n[3][1] - s4*n[3][2] + s3*n[3][3]) * idet
	i[0][3] = (-s5*n[2][1] + s4*n[2][2] - s3*n[2][3]) * idet
	i[1][0] = (-c5*n[1][0] + c2*n[1][2] - c1*n[1][3]) * idet
	i[1][1] = (c5*n[0][0] - c2*n[0][2] + c1*n[0][3]) * idet
	i[1][2] = (-s5*n[3][0] + s2*n[3][2] - s1*n[3][3]) * idet
	i[1][3] = (s5*n[2][0] - s2*n[2][2] + s1*n[2][3]) * idet
	i[2][0] = (c4*n[1][0] - c2*n[1][1] + c0*n[1][3]) * idet
	i[2][1] = (-c4*n[0][0] + c2*n[0][1] - c0*n[0][3]) * idet
	i[2][2] = (s4*n[3][0] - s2*n[3][1] + s0*n[3][3]) * idet
	i[2][3] = (-s4*n[2][0] + s2*n[2][1] - s0*n[2][3]) * idet
	i[3][0] = (-c3*n[1][0] + c1*n[1][1] - c0*n[1][2]) * idet
	i[3][1] = (c3*n[0][0] - c1*n[0][1] + c0*n[0][2]) * idet
	i[3][2] = (-s3*n[3][0] + s1*n[3][1] - s0*n[3][2]) * idet
	i[3][3] = (s3*n[2][0] - s1*n[2][1] + s0*n[2][2]) * idet
	*m = i
}

// Translate sets m to contain a translation matrix.
func (m *M4[T]) Translate(x, y, z T) {
	m.I()
	m[3] = V4[T]{x, y, z, 1}
}

// Scale sets m to contain a scale matrix.
func (m *M4[T]) Scale(x, y, z T) { *m = M4[T]{{x}, {1: y}, {2: z}, {3: 1}} }

// RotateQ sets m to contain the rotation described by
// the unit quaternion q.
func (m *M4[T]) RotateQ(q *Q[T]) {
	var r M3[T]
	r.RotateQ(q)
	*m = M4[T]{
		{r[0][0], r[0][1], r[0][2]},
		{r[1][0], r[1][1], r[1][2]},
		{r[2][0], r[2][1], r[2][2]},
		{3: 1},
	}
}

// Elem returns the ith element of m in column-major
// order (i.e., rows vary fastest).
func (m *M4[T]) Elem(i int) T { return m[i/4][i%4] }

// Upper returns the upper-left 3x3 block of m.
func (m *M4[T]) Upper() M3[T] {
	return M3[T]{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// F32 returns m as a row-major f32.Mat4.
func (m *M4[T]) F32() (n f32.Mat4) {
	for i := range m {
		for j := range m[i] {
			n[4*j+i] = float32(m[i][j])
		}
	}
	return
}

// FromF32 sets m to contain the row-major matrix n.
func (m *M4[T]) FromF32(n *f32.Mat4) {
	for i := range m {
		for j := range m[i] {
			m[i][j] = T(n[4*j+i])
		}
	}
}

// Single and double precision matrices.
type (
	M3f = M3[float32]
	M3d = M3[float64]
	M4f = M4[float32]
	M4d = M4[float64]
)
