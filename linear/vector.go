// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D graphics.
//
// Types are generic over their floating-point precision.
// Methods store their result in the receiver, which may
// alias any of the operands.
package linear

import (
	"golang.org/x/image/math/f32"
)

// V3 is a 3-component vector.
type V3[T Float] [3]T

// Add sets v to contain l + r.
func (v *V3[T]) Add(l, r *V3[T]) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V3[T]) Sub(l, r *V3[T]) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V3[T]) Scale(s T, w *V3[T]) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Neg sets v to contain -w.
func (v *V3[T]) Neg(w *V3[T]) {
	for i := range v {
		v[i] = -w[i]
	}
}

// Lerp sets v to contain the linear interpolation
// between l and r by t.
func (v *V3[T]) Lerp(l, r *V3[T], t T) {
	for i := range v {
		v[i] = l[i] + (r[i]-l[i])*t
	}
}

// Dot returns v ⋅ w.
func (v *V3[T]) Dot(w *V3[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V3[T]) Len() T { return sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized.
func (v *V3[T]) Norm(w *V3[T]) { v.Scale(1/w.Len(), w) }

// Cross sets v to contain l × r.
func (v *V3[T]) Cross(l, r *V3[T]) {
	*v = V3[T]{
		l[1]*r[2] - l[2]*r[1],
		l[2]*r[0] - l[0]*r[2],
		l[0]*r[1] - l[1]*r[0],
	}
}

// Mul sets v to contain m ⋅ w.
func (v *V3[T]) Mul(m *M3[T], w *V3[T]) {
	var u V3[T]
	for i := range m {
		for j := range u {
			u[j] += m[i][j] * w[i]
		}
	}
	*v = u
}

// RotateQ sets v to contain w rotated by the unit
// quaternion q.
func (v *V3[T]) RotateQ(q *Q[T], w *V3[T]) {
	var t, u V3[T]
	t.Cross(&q.V, w)
	t.Scale(2, &t)
	u.Cross(&q.V, &t)
	t.Scale(q.R, &t)
	t.Add(&t, &u)
	v.Add(w, &t)
}

// F32 returns v as a f32.Vec3.
func (v *V3[T]) F32() f32.Vec3 { return f32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])} }

// FromF32 sets v to contain w.
func (v *V3[T]) FromF32(w f32.Vec3) { *v = V3[T]{T(w[0]), T(w[1]), T(w[2])} }

// V4 is a 4-component vector.
type V4[T Float] [4]T

// Add sets v to contain l + r.
func (v *V4[T]) Add(l, r *V4[T]) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V4[T]) Sub(l, r *V4[T]) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V4[T]) Scale(s T, w *V4[T]) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V4[T]) Dot(w *V4[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V4[T]) Len() T { return sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized.
func (v *V4[T]) Norm(w *V4[T]) { v.Scale(1/w.Len(), w) }

// Mul sets v to contain m ⋅ w.
func (v *V4[T]) Mul(m *M4[T], w *V4[T]) {
	var u V4[T]
	for i := range m {
		for j := range u {
			u[j] += m[i][j] * w[i]
		}
	}
	*v = u
}

// F32 returns v as a f32.Vec4.
func (v *V4[T]) F32() f32.Vec4 {
	return f32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// Single and double precision vectors.
type (
	V3f = V3[float32]
	V3d = V3[float64]
	V4f = V4[float32]
	V4d = V4[float64]
)
