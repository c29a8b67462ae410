package pin

import (
	"testing"

	"window-pin/internal/winapi"
)

type nopMarker struct{}

func (nopMarker) Sync() error { return nil }
func (nopMarker) Destroy()    {}

func TestRegistry_PushRejectsDuplicates(t *testing.T) {
	r := newRegistry()

	if !r.push(&pinnedEntry{handle: 1, marker: nopMarker{}}) {
		t.Fatal("first push should succeed")
	}
	if r.push(&pinnedEntry{handle: 1, marker: nopMarker{}}) {
		t.Error("second push of the same handle should be rejected")
	}
	if r.len() != 1 {
		t.Errorf("len = %d; want 1", r.len())
	}
}

func TestRegistry_PopRecentIsLIFO(t *testing.T) {
	r := newRegistry()
	r.push(&pinnedEntry{handle: 1, marker: nopMarker{}})
	r.push(&pinnedEntry{handle: 2, marker: nopMarker{}})
	r.push(&pinnedEntry{handle: 3, marker: nopMarker{}})

	for _, want := range []winapi.Handle{3, 2, 1} {
		e, ok := r.popRecent()
		if !ok {
			t.Fatalf("popRecent returned empty; want handle %d", want)
		}
		if e.handle != want {
			t.Errorf("popRecent handle = %d; want %d", e.handle, want)
		}
	}

	if _, ok := r.popRecent(); ok {
		t.Error("popRecent on empty registry should report empty")
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := newRegistry()
	r.push(&pinnedEntry{handle: 1, marker: nopMarker{}})
	r.push(&pinnedEntry{handle: 2, marker: nopMarker{}})

	if !r.remove(1) {
		t.Fatal("remove(1) should succeed")
	}
	if r.remove(1) {
		t.Error("second remove(1) should report missing")
	}
	if r.has(1) {
		t.Error("removed handle still present")
	}
	if !r.has(2) {
		t.Error("unrelated handle was dropped")
	}
}

func TestRegistry_EntriesMostRecentFirst(t *testing.T) {
	r := newRegistry()
	r.push(&pinnedEntry{handle: 10, marker: nopMarker{}})
	r.push(&pinnedEntry{handle: 20, marker: nopMarker{}})

	entries := r.entries()
	if len(entries) != 2 {
		t.Fatalf("entries len = %d; want 2", len(entries))
	}
	if entries[0].handle != 20 || entries[1].handle != 10 {
		t.Errorf("entries order = [%d %d]; want [20 10]", entries[0].handle, entries[1].handle)
	}
}
