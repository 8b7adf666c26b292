package engine

// Handle identifies a slot in an Arena. The generation makes stale
// handles safe: after a slot is freed and reused, old handles to it no
// longer resolve. Renderers can hold handles across ticks without risk
// of aliasing a recycled entity.
type Handle struct {
	Index int32
	Gen   uint32
}

// NilHandle never resolves.
var NilHandle = Handle{Index: -1}

type slot[T any] struct {
	val  T
	gen  uint32
	live bool
}

// Arena is an indexed slot container with generation checking.
// Insert and Remove are O(1); iteration order is slot order, which is
// stable between mutations.
type Arena[T any] struct {
	slots []slot[T]
	free  []int32
	count int
}

// NewArena creates an arena with preallocated capacity.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, capacity),
		free:  make([]int32, 0, capacity/4),
	}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	a.count++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.val = v
		s.live = true
		return Handle{Index: idx, Gen: s.gen}
	}
	a.slots = append(a.slots, slot[T]{val: v, live: true})
	return Handle{Index: int32(len(a.slots) - 1), Gen: 0}
}

// Get resolves a handle to a mutable value. Stale or nil handles
// return ok=false.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if h.Index < 0 || int(h.Index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.Index]
	if !s.live || s.gen != h.Gen {
		return nil, false
	}
	return &s.val, true
}

// Remove frees the slot behind h. Removing an already-stale handle is
// a no-op and reports false.
func (a *Arena[T]) Remove(h Handle) bool {
	if h.Index < 0 || int(h.Index) >= len(a.slots) {
		return false
	}
	s := &a.slots[h.Index]
	if !s.live || s.gen != h.Gen {
		return false
	}
	var zero T
	s.val = zero
	s.live = false
	s.gen++
	a.free = append(a.free, h.Index)
	a.count--
	return true
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.count
}

// Each calls fn for every live slot. fn may remove entities, including
// the current one; slots inserted during iteration are not visited.
func (a *Arena[T]) Each(fn func(Handle, *T)) {
	n := len(a.slots)
	for i := 0; i < n; i++ {
		s := &a.slots[i]
		if s.live {
			fn(Handle{Index: int32(i), Gen: s.gen}, &s.val)
		}
	}
}

// Handles returns the handles of all live slots, for callers that need
// to interleave resolution and removal.
func (a *Arena[T]) Handles() []Handle {
	out := make([]Handle, 0, a.count)
	for i := range a.slots {
		if a.slots[i].live {
			out = append(out, Handle{Index: int32(i), Gen: a.slots[i].gen})
		}
	}
	return out
}

// Clear frees every slot, invalidating all outstanding handles.
func (a *Arena[T]) Clear() {
	for i := range a.slots {
		if a.slots[i].live {
			var zero T
			a.slots[i].val = zero
			a.slots[i].live = false
			a.slots[i].gen++
			a.free = append(a.free, int32(i))
		}
	}
	a.count = 0
}
