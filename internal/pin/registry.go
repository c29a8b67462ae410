package pin

import (
	"container/list"

	"window-pin/internal/winapi"
)

// pinnedEntry is one pinned window together with the marker that tags it.
// The entry owns the marker: whoever removes the entry destroys the marker.
type pinnedEntry struct {
	handle winapi.Handle
	marker Marker
}

// registry is the insertion-ordered set of pinned windows, keyed by handle,
// most recent first. A handle appears at most once.
type registry struct {
	order    *list.List
	byHandle map[winapi.Handle]*list.Element
}

func newRegistry() *registry {
	return &registry{
		order:    list.New(),
		byHandle: make(map[winapi.Handle]*list.Element),
	}
}

// push inserts an entry at the front. Returns false (and leaves the registry
// untouched) if the handle is already present.
func (r *registry) push(e *pinnedEntry) bool {
	if _, exists := r.byHandle[e.handle]; exists {
		return false
	}
	r.byHandle[e.handle] = r.order.PushFront(e)
	return true
}

// popRecent removes and returns the most recently inserted entry.
func (r *registry) popRecent() (*pinnedEntry, bool) {
	front := r.order.Front()
	if front == nil {
		return nil, false
	}
	e := front.Value.(*pinnedEntry)
	r.order.Remove(front)
	delete(r.byHandle, e.handle)
	return e, true
}

// has reports whether the handle is currently pinned.
func (r *registry) has(h winapi.Handle) bool {
	_, exists := r.byHandle[h]
	return exists
}

// remove drops the entry for the handle, if any.
func (r *registry) remove(h winapi.Handle) bool {
	elem, exists := r.byHandle[h]
	if !exists {
		return false
	}
	r.order.Remove(elem)
	delete(r.byHandle, h)
	return true
}

func (r *registry) len() int {
	return r.order.Len()
}

// entries returns a snapshot, most recent first, safe to iterate while the
// registry is mutated.
func (r *registry) entries() []*pinnedEntry {
	out := make([]*pinnedEntry, 0, r.order.Len())
	for elem := r.order.Front(); elem != nil; elem = elem.Next() {
		out = append(out, elem.Value.(*pinnedEntry))
	}
	return out
}
