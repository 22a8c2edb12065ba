// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the precision of the types in this package.
// Every vector, matrix and quaternion is instantiated
// with either float32 or float64.
type Float interface {
	constraints.Float
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	// Half of float32's epsilon is lost when added to 1
	// in single precision.
	one := T(1)
	if T(one+0x1p-24) == 1 {
		return 0x1p-23
	}
	return 0x1p-52
}

// Clamp returns x limited to the interval [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T { return min(max(x, lo), hi) }

// EuclidMod returns the Euclidean remainder of n / m,
// which is in the interval [0, m) for positive m.
func EuclidMod[T Float](n, m T) T {
	r := T(math.Mod(float64(n), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}

// WrapAngle returns a, in radians, wrapped into [-π, π).
func WrapAngle[T Float](a T) T {
	return EuclidMod(a+math.Pi, 2*math.Pi) - math.Pi
}

func sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

func sin[T Float](x T) T { return T(math.Sin(float64(x))) }

func cos[T Float](x T) T { return T(math.Cos(float64(x))) }

func atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

func abs[T Float](x T) T { return T(math.Abs(float64(x))) }

func pow[T Float](x, y T) T { return T(math.Pow(float64(x), float64(y))) }
