package trellis

import "testing"

func TestInsetsConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Insets
		want Insets
	}{
		{"zero", ZeroInsets, Insets{}},
		{"trbl", NewInsets(1, 2, 3, 4), Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{"uniform", UniformInsets(5), Insets{5, 5, 5, 5}},
		{"symmetric", SymmetricInsets(6, 2), Insets{Top: 2, Right: 6, Bottom: 2, Left: 6}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestInsetsWidthHeight(t *testing.T) {
	i := NewInsets(1, 2, 3, 4)
	if i.Width() != 6 {
		t.Errorf("Width = %v, want 6", i.Width())
	}
	if i.Height() != 4 {
		t.Errorf("Height = %v, want 4", i.Height())
	}
}

func TestInsetsAddSubtract(t *testing.T) {
	i := UniformInsets(5)
	d := i.AddTo(Dimension{90, 40})
	if d != (Dimension{100, 50}) {
		t.Errorf("AddTo = %+v, want {100 50}", d)
	}
	if got := i.SubtractFrom(d); got != (Dimension{90, 40}) {
		t.Errorf("SubtractFrom = %+v, want {90 40}", got)
	}
	if got := i.SubtractFrom(Dimension{4, 4}); got != (Dimension{}) {
		t.Errorf("SubtractFrom small = %+v, want zero", got)
	}
}

func TestMutableInsetsSnapshots(t *testing.T) {
	orig := UniformInsets(1)
	m := orig.Mutable().Left(7).Top(3)
	first := m.Insets()
	m.Right(9)
	second := m.Insets()

	if orig != UniformInsets(1) {
		t.Errorf("original changed: %+v", orig)
	}
	if first != (Insets{Top: 3, Right: 1, Bottom: 1, Left: 7}) {
		t.Errorf("first = %+v", first)
	}
	if second.Right != 9 || first.Right != 1 {
		t.Errorf("snapshots should be independent: first %+v, second %+v", first, second)
	}
}
