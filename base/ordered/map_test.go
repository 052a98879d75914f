package ordered_test

import (
	"testing"

	"github.com/developer-dashboard/vblang/base/ordered"
)

type entry struct {
	k string
	v int
}

func TestMap(t *testing.T) {
	tests := []struct {
		entries []entry
		want    []entry
	}{
		{
			entries: []entry{
				{k: "x", v: 0},
				{k: "y", v: 1},
				{k: "z", v: 2},
			},
			want: []entry{
				{k: "x", v: 0},
				{k: "y", v: 1},
				{k: "z", v: 2},
			},
		},
		{
			entries: []entry{
				{k: "x", v: 0},
				{k: "y", v: 1},
				{k: "x", v: 2},
			},
			want: []entry{
				{k: "x", v: 2},
				{k: "y", v: 1},
			},
		},
	}
	for _, test := range tests {
		m := ordered.NewMap[string, int]()
		for _, e := range test.entries {
			m.Store(e.k, e.v)
		}
		if m.Size() != len(test.want) {
			t.Errorf("unexpected size: got %d but want %d", m.Size(), len(test.want))
			continue
		}
		i := 0
		for k, v := range m.Iter() {
			want := test.want[i]
			if k != want.k || v != want.v {
				t.Errorf("element %d: got (%s,%d) but want (%s,%d)", i, k, v, want.k, want.v)
			}
			i++
		}
	}
}

func TestMapHas(t *testing.T) {
	m := ordered.NewMap[string, int]()
	m.Store("first", 0)
	if !m.Has("first") {
		t.Errorf("expected key first to be present")
	}
	if m.Has("second") {
		t.Errorf("expected key second to be absent")
	}
}
