// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"fmt"
)

// Q is a quaternion.
// V holds the vector part (x, y, z) and R holds the
// real part (w).
//
// Every method that changes q notifies its Observer,
// if any. Writing to V or R directly does not.
// Assigning a Q to another copies the Observer along;
// use Copy to transfer only the rotation.
type Q[T Float] struct {
	V   V3[T]
	R   T
	obs Observer
}

// Ident returns the identity quaternion.
func Ident[T Float]() Q[T] { return Q[T]{R: 1} }

// NewQ returns the quaternion xi + yj + zk + w.
func NewQ[T Float](x, y, z, w T) Q[T] { return Q[T]{V: V3[T]{x, y, z}, R: w} }

// Observe sets the Observer of q, replacing any previous
// one. A nil o stops notifications.
// q does not manage o in any way.
func (q *Q[T]) Observe(o Observer) { q.obs = o }

func (q *Q[T]) notify() {
	if q.obs != nil {
		q.obs.Notify()
	}
}

// I makes q an identity quaternion.
func (q *Q[T]) I() {
	q.V = V3[T]{}
	q.R = 1
	q.notify()
}

// X returns the x component of q.
func (q *Q[T]) X() T { return q.V[0] }

// Y returns the y component of q.
func (q *Q[T]) Y() T { return q.V[1] }

// Z returns the z component of q.
func (q *Q[T]) Z() T { return q.V[2] }

// W returns the w component of q.
func (q *Q[T]) W() T { return q.R }

// SetX sets the x component of q.
func (q *Q[T]) SetX(x T) {
	q.V[0] = x
	q.notify()
}

// SetY sets the y component of q.
func (q *Q[T]) SetY(y T) {
	q.V[1] = y
	q.notify()
}

// SetZ sets the z component of q.
func (q *Q[T]) SetZ(z T) {
	q.V[2] = z
	q.notify()
}

// SetW sets the w component of q.
func (q *Q[T]) SetW(w T) {
	q.R = w
	q.notify()
}

// Set sets all components of q.
func (q *Q[T]) Set(x, y, z, w T) {
	q.V = V3[T]{x, y, z}
	q.R = w
	q.notify()
}

// Copy sets q to contain the components of p.
// The Observer of p is not copied.
func (q *Q[T]) Copy(p *Q[T]) {
	q.V = p.V
	q.R = p.R
	q.notify()
}

// Clone returns a copy of q that has no Observer.
func (q *Q[T]) Clone() Q[T] { return Q[T]{V: q.V, R: q.R} }

// Equal returns whether q and p have exactly the same
// components.
// Note that q and -q describe the same rotation, yet
// they are not equal.
func (q *Q[T]) Equal(p *Q[T]) bool { return q.V == p.V && q.R == p.R }

// FromEuler sets q to contain the rotation described by
// the Euler triple e.
// It returns ErrInvalidOrder, and leaves q unchanged, if
// e.Order is not valid.
// If update is false, the Observer is not notified.
func (q *Q[T]) FromEuler(e *Euler[T], update bool) error {
	c := V3[T]{cos(e.X / 2), cos(e.Y / 2), cos(e.Z / 2)}
	s := V3[T]{sin(e.X / 2), sin(e.Y / 2), sin(e.Z / 2)}
	var v V3[T]
	var r T
	switch e.Order {
	case XYZ:
		v, r = eulerXYZ(&c, &s)
	case YXZ:
		v, r = eulerYXZ(&c, &s)
	case ZXY:
		v, r = eulerZXY(&c, &s)
	case ZYX:
		v, r = eulerZYX(&c, &s)
	case YZX:
		v, r = eulerYZX(&c, &s)
	case XZY:
		v, r = eulerXZY(&c, &s)
	default:
		return ErrInvalidOrder
	}
	q.V = v
	q.R = r
	if update {
		q.notify()
	}
	return nil
}

// c and s hold the cosines and sines of the half angles
// around X, Y and Z, respectively.

func eulerXYZ[T Float](c, s *V3[T]) (V3[T], T) {
	return V3[T]{
		s[0]*c[1]*c[2] + c[0]*s[1]*s[2],
		c[0]*s[1]*c[2] - s[0]*c[1]*s[2],
		c[0]*c[1]*s[2] + s[0]*s[1]*c[2],
	}, c[0]*c[1]*c[2] - s[0]*s[1]*s[2]
}

func eulerYXZ[T Float](c, s *V3[T]) (V3[T], T) {
	return V3[T]{
		s[0]*c[1]*c[2] + c[0]*s[1]*s[2],
		c[0]*s[1]*c[2] - s[0]*c[1]*s[2],
		c[0]*c[1]*s[2] - s[0]*s[1]*c[2],
	}, c[0]*c[1]*c[2] + s[0]*s[1]*s[2]
}

func eulerZXY[T Float](c, s *V3[T]) (V3[T], T) {
	return V3[T]{
		s[0]*c[1]*c[2] - c[0]*s[1]*s[2],
		c[0]*s[1]*c[2] + s[0]*c[1]*s[2],
		c[0]*c[1]*s[2] + s[0]*s[1]*c[2],
	}, c[0]*c[1]*c[2] - s[0]*s[1]*s[2]
}

func eulerZYX[T Float](c, s *V3[T]) (V3[T], T) {
	return V3[T]{
		s[0]*c[1]*c[2] - c[0]*s[1]*s[2],
		c[0]*s[1]*c[2] + s[0]*c[1]*s[2],
		c[0]*c[1]*s[2] - s[0]*s[1]*c[2],
	}, c[0]*c[1]*c[2] + s[0]*s[1]*s[2]
}

func eulerYZX[T Float](c, s *V3[T]) (V3[T], T) {
	return V3[T]{
		s[0]*c[1]*c[2] + c[0]*s[1]*s[2],
		c[0]*s[1]*c[2] + s[0]*c[1]*s[2],
		c[0]*c[1]*s[2] - s[0]*s[1]*c[2],
	}, c[0]*c[1]*c[2] - s[0]*s[1]*s[2]
}

func eulerXZY[T Float](c, s *V3[T]) (V3[T], T) {
	return V3[T]{
		s[0]*c[1]*c[2] - c[0]*s[1]*s[2],
		c[0]*s[1]*c[2] - s[0]*c[1]*s[2],
		c[0]*c[1]*s[2] + s[0]*s[1]*c[2],
	}, c[0]*c[1]*c[2] + s[0]*s[1]*s[2]
}

// Rotate sets q to contain a rotation of angle radians
// around axis.
// axis must be a unit vector. This is not checked, and
// a non-unit axis produces a non-unit quaternion.
func (q *Q[T]) Rotate(angle T, axis *V3[T]) {
	s := sin(angle / 2)
	q.V.Scale(s, axis)
	q.R = cos(angle / 2)
	q.notify()
}

// FromM3 sets q to contain the rotation described by m.
// m must be a rotation matrix (orthonormal, with
// determinant 1). This is not checked.
func (q *Q[T]) FromM3(m *M3[T]) {
	q.fromRot(
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2],
	)
}

// FromM4 sets q to contain the rotation described by the
// upper-left 3x3 block of m.
// The block must be a rotation matrix (orthonormal, with
// determinant 1). This is not checked.
func (q *Q[T]) FromM4(m *M4[T]) {
	q.fromRot(
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2],
	)
}

// fromRot takes the rotation block in row-major order.
// The branch is chosen so that s is never computed from
// a small square root.
func (q *Q[T]) fromRot(m11, m12, m13, m21, m22, m23, m31, m32, m33 T) {
	switch tr := m11 + m22 + m33; {
	case tr > 0:
		s := 0.5 / sqrt(tr+1)
		q.R = 0.25 / s
		q.V = V3[T]{(m32 - m23) * s, (m13 - m31) * s, (m21 - m12) * s}
	case m11 > m22 && m11 > m33:
		s := 2 * sqrt(1+m11-m22-m33)
		q.R = (m32 - m23) / s
		q.V = V3[T]{0.25 * s, (m12 + m21) / s, (m13 + m31) / s}
	case m22 > m33:
		s := 2 * sqrt(1+m22-m11-m33)
		q.R = (m13 - m31) / s
		q.V = V3[T]{(m12 + m21) / s, 0.25 * s, (m23 + m32) / s}
	default:
		s := 2 * sqrt(1+m33-m11-m22)
		q.R = (m21 - m12) / s
		q.V = V3[T]{(m13 + m31) / s, (m23 + m32) / s, 0.25 * s}
	}
	q.notify()
}

// unitEps is the threshold below which dot(from, to) + 1
// is taken to mean opposite vectors.
const unitEps = 1e-6

// FromUnitVectors sets q to contain the shortest rotation
// that takes from to to.
// Both vectors must have unit length. If they point in
// opposite directions, the rotation is of π radians around
// an arbitrary axis orthogonal to from.
// The result is normalized.
func (q *Q[T]) FromUnitVectors(from, to *V3[T]) {
	var v V3[T]
	r := from.Dot(to) + 1
	if r < unitEps {
		r = 0
		if abs(from[0]) > abs(from[2]) {
			v = V3[T]{-from[1], from[0], 0}
		} else {
			v = V3[T]{0, -from[2], from[1]}
		}
	} else {
		v.Cross(from, to)
	}
	q.V = v
	q.R = r
	q.Norm(q)
}

// Conj sets q to contain the conjugate of p.
func (q *Q[T]) Conj(p *Q[T]) {
	q.V.Neg(&p.V)
	q.R = p.R
	q.notify()
}

// Invert sets q to contain the inverse of the rotation
// described by p, normalized.
func (q *Q[T]) Invert(p *Q[T]) {
	q.V.Neg(&p.V)
	q.R = p.R
	q.norm()
	q.notify()
}

// Dot returns q ⋅ p.
func (q *Q[T]) Dot(p *Q[T]) T { return q.V.Dot(&p.V) + q.R*p.R }

// LenSq returns the squared length of q.
func (q *Q[T]) LenSq() T { return q.Dot(q) }

// Len returns the length of q.
func (q *Q[T]) Len() T { return sqrt(q.LenSq()) }

// Norm sets q to contain p normalized.
// If p has zero length, q is set to identity.
func (q *Q[T]) Norm(p *Q[T]) {
	q.V = p.V
	q.R = p.R
	q.norm()
	q.notify()
}

func (q *Q[T]) norm() {
	l := q.Len()
	if l == 0 {
		q.V = V3[T]{}
		q.R = 1
		return
	}
	l = 1 / l
	q.V.Scale(l, &q.V)
	q.R *= l
}

// Mul sets q to contain l ⋅ r.
func (q *Q[T]) Mul(l, r *Q[T]) {
	var v, w V3[T]
	v.Scale(r.R, &l.V)
	w.Scale(l.R, &r.V)
	v.Add(&v, &w)
	w.Cross(&l.V, &r.V)
	v.Add(&v, &w)
	d := l.R*r.R - l.V.Dot(&r.V)
	q.V = v
	q.R = d
	q.notify()
}

// Premul sets q to contain l ⋅ q.
func (q *Q[T]) Premul(l *Q[T]) { q.Mul(l, q) }

// MulQ returns l ⋅ r.
func MulQ[T Float](l, r Q[T]) (q Q[T]) {
	q.Mul(&l, &r)
	return
}

// Slerp sets q to contain the spherical linear interpolation
// between l and r by t.
// t is not clamped to [0, 1]; values outside this interval
// extrapolate. The shorter arc is always taken, so r and -r
// produce the same rotation.
func (q *Q[T]) Slerp(l, r *Q[T], t T) {
	switch t {
	case 0:
		q.Copy(l)
		return
	case 1:
		q.Copy(r)
		return
	}
	lv, lr := l.V, l.R
	rv, rr := r.V, r.R
	cosHalf := lv.Dot(&rv) + lr*rr
	if cosHalf < 0 {
		rv.Neg(&rv)
		rr = -rr
		cosHalf = -cosHalf
	}
	if cosHalf >= 1 {
		q.V = lv
		q.R = lr
		q.notify()
		return
	}
	sqrSin := 1 - cosHalf*cosHalf
	if sqrSin <= Epsilon[T]() {
		q.V.Lerp(&lv, &rv, t)
		q.R = lr + (rr-lr)*t
		q.norm()
		q.notify()
		return
	}
	sinHalf := sqrt(sqrSin)
	half := atan2(sinHalf, cosHalf)
	a := sin((1-t)*half) / sinHalf
	b := sin(t*half) / sinHalf
	lv.Scale(a, &lv)
	rv.Scale(b, &rv)
	q.V.Add(&lv, &rv)
	q.R = lr*a + rr*b
	q.notify()
}

// SlerpQ returns the spherical linear interpolation
// between l and r by t.
func SlerpQ[T Float](l, r Q[T], t T) (q Q[T]) {
	q.Slerp(&l, &r, t)
	return
}

// Load sets q to contain s[off:off+4], in x, y, z, w
// order.
// It panics if s is too short.
func (q *Q[T]) Load(s []T, off int) {
	_ = s[off+3]
	q.V = V3[T]{s[off], s[off+1], s[off+2]}
	q.R = s[off+3]
	q.notify()
}

// Store writes the components of q to s[off:off+4], in
// x, y, z, w order, and returns the updated slice.
// s is grown as needed.
func (q *Q[T]) Store(s []T, off int) []T {
	if n := off + 4; len(s) < n {
		s = append(s, make([]T, n-len(s))...)
	}
	s[off] = q.V[0]
	s[off+1] = q.V[1]
	s[off+2] = q.V[2]
	s[off+3] = q.R
	return s
}

func (q Q[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.V[0], q.V[1], q.V[2], q.R)
}

// Single and double precision quaternions.
type (
	Qf = Q[float32]
	Qd = Q[float64]
)
