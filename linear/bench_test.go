// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"
)

func BenchmarkDot(b *testing.B) {
	v := V3f{-2, 3, 9}
	w := V3f{6, -3, 7}
	var d, e float32
	b.Run("V3.Dot", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			d = v.Dot(&w)
		}
	})
	b.Run("bDotValue", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			e = bDotValue(v, w)
		}
	})
	b.Log(d, e)
}

// v and w passed on the stack.
func bDotValue[T Float](v, w V3[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

func BenchmarkCross(b *testing.B) {
	l := V3f{1, 0, 0}
	r := V3f{0, 1, 0}
	var v, u V3f
	b.Run("V3.Cross", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Cross(&l, &r)
		}
	})
	b.Run("bCrossValue", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			u = bCrossValue(l, r)
		}
	})
	b.Log(v, u)
}

// l, r and v passed on the stack.
func bCrossValue[T Float](l, r V3[T]) (v V3[T]) {
	v[0] = l[1]*r[2] - l[2]*r[1]
	v[1] = l[2]*r[0] - l[0]*r[2]
	v[2] = l[0]*r[1] - l[1]*r[0]
	return
}

func BenchmarkMulQ(b *testing.B) {
	var l, r, q, p Qf
	l.Rotate(0.5, &V3f{0, 1})
	r.Rotate(-1.25, &V3f{1})
	b.Run("Q.Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			q.Mul(&l, &r)
		}
	})
	b.Run("MulQ", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p = MulQ(l, r)
		}
	})
	b.Log(q, p)
}

func BenchmarkSlerp(b *testing.B) {
	var l, r, q Qd
	l.Rotate(0.25, &V3d{0, 0, 1})
	r.Rotate(2.5, &V3d{0, 1})
	var obs int
	q.Observe(ObserverFunc(func() { obs++ }))
	b.Run("Q.Slerp", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			q.Slerp(&l, &r, 0.375)
		}
	})
	b.Log(q, obs)
}
