// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

// Observer is notified whenever the components of a
// quaternion it observes change.
//
// Notify is called synchronously, after the change, on
// the goroutine that mutated the quaternion. It must not
// mutate the same quaternion in a way that would notify
// it again without bound.
type Observer interface {
	Notify()
}

// ObserverFunc adapts an ordinary function to the
// Observer interface.
type ObserverFunc func()

// Notify calls f.
func (f ObserverFunc) Notify() { f() }
