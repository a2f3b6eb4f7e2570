package meander

import (
	"sort"
	"testing"
)

// fakeBackend records descriptor commands for assertions.
type fakeBackend struct {
	adds    map[string]int
	removes map[string]int
	updates map[string]int
	live    map[*Object]string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		adds:    make(map[string]int),
		removes: make(map[string]int),
		updates: make(map[string]int),
		live:    make(map[*Object]string),
	}
}

func (f *fakeBackend) Add(group string, o *Object) {
	f.adds[group]++
	f.live[o] = group
}

func (f *fakeBackend) Remove(group string, o *Object) {
	f.removes[group]++
	delete(f.live, o)
}

func (f *fakeBackend) Update(group string, o *Object) {
	f.updates[group]++
}

// tuple is the identity-free descriptor fingerprint used to compare windows.
type tuple struct {
	key   SpawnKey
	pos   Vec3
	scale Vec3
	alpha float64
}

func windowTuples(w *Window) []tuple {
	var out []tuple
	w.Each(func(o *Object) {
		out = append(out, tuple{key: o.Key(), pos: o.Position, scale: o.Scale, alpha: o.Alpha})
	})
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].key, out[j].key
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Column < b.Column
	})
	return out
}

func tuplesEqual(a, b []tuple) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRefreshIdempotent(t *testing.T) {
	w := NewWindow(NewHelixCurve(), NewSpawner())
	w.Refresh(100.5)
	first := windowTuples(w)
	w.Refresh(100.5)
	second := windowTuples(w)
	if !tuplesEqual(first, second) {
		t.Error("refreshing twice at the same position changed the descriptor set")
	}
	if len(first) == 0 {
		t.Fatal("window empty after refresh")
	}
}

func TestIncrementalRefreshMatchesRebuild(t *testing.T) {
	incremental := NewWindow(NewHelixCurve(), NewSpawner())
	incremental.Refresh(0)
	for _, p := range []float64{3.2, 17.9, 18.0, 44.4, 43.1, 120.7} {
		incremental.Refresh(p)

		fresh := NewWindow(NewHelixCurve(), NewSpawner())
		fresh.Rebuild(p)

		if !tuplesEqual(windowTuples(incremental), windowTuples(fresh)) {
			t.Fatalf("position %f: incremental window diverged from full rebuild", p)
		}
	}
}

func TestRebuildGivesFreshIdentities(t *testing.T) {
	w := NewWindow(NewHelixCurve(), NewSpawner())
	w.Rebuild(10)
	key := SpawnKey{Row: 0, Column: 0, Kind: KindDot}
	before := w.Lookup(key)
	if before == nil {
		t.Fatal("dot (0,0) not in window")
	}
	w.Rebuild(10)
	after := w.Lookup(key)
	if after == nil {
		t.Fatal("dot (0,0) lost after rebuild")
	}
	if before == after {
		t.Error("rebuild should create fresh descriptor identities")
	}
	if !before.IsDisposed() {
		t.Error("old descriptor should be disposed by rebuild")
	}
	if after.IsDisposed() {
		t.Error("new descriptor should be live")
	}
}

func TestWindowRangeAndNegativeRows(t *testing.T) {
	w := NewWindow(NewHelixCurve(), NewSpawner())
	w.Refresh(5)
	lo, hi := w.Range()
	if lo != 5-DefaultWindowRadius || hi != 5+DefaultWindowRadius {
		t.Errorf("range = [%d,%d), want [%d,%d)", lo, hi, 5-DefaultWindowRadius, 5+DefaultWindowRadius)
	}
	w.Each(func(o *Object) {
		if o.Row < 0 {
			t.Errorf("object generated for negative row %d", o.Row)
		}
		if o.Row < lo || o.Row >= hi {
			t.Errorf("object row %d outside range [%d,%d)", o.Row, lo, hi)
		}
	})
}

func TestDestroyNotificationPrecedesDisposal(t *testing.T) {
	w := NewWindow(NewHelixCurve(), NewSpawner())
	w.Refresh(0)

	notified := make(map[SpawnKey]bool)
	w.OnDestroy(func(o *Object) {
		if o.IsDisposed() {
			t.Error("destroy notification arrived after disposal")
		}
		notified[o.Key()] = true
	})

	var gone []*Object
	w.Each(func(o *Object) {
		if o.Row < 10 {
			gone = append(gone, o)
		}
	})
	w.Refresh(40) // rows [10, 70): everything below 10 is destroyed

	for _, o := range gone {
		if !notified[o.Key()] {
			t.Errorf("no destroy notification for %+v", o.Key())
		}
		if !o.IsDisposed() {
			t.Errorf("object %+v left range but was not disposed", o.Key())
		}
	}
}

func TestRefreshBeforeSetupIsNoop(t *testing.T) {
	w := NewWindow(nil, nil)
	w.Refresh(100) // must not panic
	if w.Len() != 0 {
		t.Errorf("window populated without curve/spawner: %d objects", w.Len())
	}
}

func TestBackendReceivesGroupedCommands(t *testing.T) {
	fb := newFakeBackend()
	w := NewWindow(NewHelixCurve(), NewSpawner())
	w.SetBackend(fb)
	w.Refresh(0)

	if fb.adds[GroupDots] == 0 || fb.adds[GroupMarkers] == 0 || fb.adds[GroupDecorations] == 0 {
		t.Fatalf("adds per group = %v, want all three groups populated", fb.adds)
	}
	for o, group := range fb.live {
		if want := groupFor(o.Kind); group != want {
			t.Errorf("%v registered in group %q, want %q", o.Kind, group, want)
		}
	}

	added := len(fb.live)
	w.Refresh(100) // disjoint jump: everything replaced
	if got := fb.removes[GroupDots] + fb.removes[GroupMarkers] + fb.removes[GroupDecorations]; got != added {
		t.Errorf("removes = %d, want %d (every prior descriptor)", got, added)
	}
	if len(fb.live) != w.Len() {
		t.Errorf("backend holds %d live descriptors, window has %d", len(fb.live), w.Len())
	}
}

func TestRefreshRetunesDotOpacity(t *testing.T) {
	w := NewWindow(NewHelixCurve(), NewSpawner())
	w.Refresh(0)
	key := SpawnKey{Row: 20, Column: 3, Kind: KindDot}
	before := w.Lookup(key).Alpha

	w.Refresh(20) // row 20 survives and is now the window center
	after := w.Lookup(key).Alpha
	if after <= before {
		t.Errorf("dot alpha should rise as the row nears the position: %f -> %f", before, after)
	}
	if after != 1 {
		t.Errorf("dot alpha at distance 0 = %f, want 1", after)
	}
}

func TestLookupOutsideWindow(t *testing.T) {
	w := NewWindow(NewHelixCurve(), NewSpawner())
	w.Refresh(0)
	if o := w.Lookup(SpawnKey{Row: 500, Column: 0, Kind: KindDot}); o != nil {
		t.Error("lookup of an out-of-window key should return nil")
	}
}
