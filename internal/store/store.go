// Package store provides a single-value observable container.
//
// A Value is created once at composition time and handed by reference to
// every view that reads or writes it; the views never reference each other.
// This replaces ambient global state with an explicitly scoped object whose
// mutations are followed by an explicit notify-subscribers step.
package store

// Value holds exactly one value of type T and the set of callbacks watching
// it. Set replaces the value and synchronously notifies every subscriber, so
// a mutation is fully visible before the caller regains control.
//
// Value is confined to the UI update loop and is not safe for concurrent use.
type Value[T any] struct {
	current T
	subs    []subscriber[T]
	nextID  int
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// New returns a container holding the zero value of T.
func New[T any]() *Value[T] {
	return &Value[T]{}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.current
}

// Set replaces the stored value, then invokes every subscriber in
// subscription order with the new value. The value is stored before the
// first callback runs, so a subscriber that calls Get sees the new value.
func (v *Value[T]) Set(next T) {
	v.current = next
	// snapshot so a callback may cancel itself without disturbing the walk
	subs := make([]subscriber[T], len(v.subs))
	copy(subs, v.subs)
	for _, s := range subs {
		s.fn(next)
	}
}

// Subscribe registers fn to run after every Set. The returned cancel func
// removes the subscription; calling it more than once is a no-op.
func (v *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	id := v.nextID
	v.nextID++
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, s := range v.subs {
			if s.id == id {
				v.subs = append(v.subs[:i], v.subs[i+1:]...)
				return
			}
		}
	}
}
