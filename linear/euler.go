// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
	"strings"
)

// Order is the order in which the three rotations of
// an Euler triple are composed.
type Order uint8

// Rotation orders.
// An order ABC produces the rotation RA ⋅ RB ⋅ RC, so
// XYZ applies the Z rotation to a vector first.
const (
	XYZ Order = iota
	YXZ
	ZXY
	ZYX
	YZX
	XZY
	nOrder
)

// ErrInvalidOrder means that an Order value is not one
// of the six rotation orders.
var ErrInvalidOrder = errors.New("linear: invalid rotation order")

var orderNames = [nOrder]string{"XYZ", "YXZ", "ZXY", "ZYX", "YZX", "XZY"}

// Valid returns whether o is one of the six rotation
// orders.
func (o Order) Valid() bool { return o < nOrder }

func (o Order) String() string {
	if !o.Valid() {
		return "Order(?)"
	}
	return orderNames[o]
}

// ParseOrder returns the Order named by s.
// The comparison is case-insensitive.
func ParseOrder(s string) (Order, error) {
	for i, n := range orderNames {
		if strings.EqualFold(s, n) {
			return Order(i), nil
		}
	}
	return 0, ErrInvalidOrder
}

// Euler is a rotation described by three angles, in
// radians, and the order in which they apply.
type Euler[T Float] struct {
	X, Y, Z T
	Order   Order
}

// Wrap sets e to contain the angles of f wrapped into
// the interval [-π, π).
func (e *Euler[T]) Wrap(f *Euler[T]) {
	*e = Euler[T]{
		X:     WrapAngle(f.X),
		Y:     WrapAngle(f.Y),
		Z:     WrapAngle(f.Z),
		Order: f.Order,
	}
}

// Single and double precision Euler triples.
type (
	Eulerf = Euler[float32]
	Eulerd = Euler[float64]
)
