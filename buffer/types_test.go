package buffer

import "testing"

func TestOffsetPositionRoundTrip(t *testing.T) {
	for idx := 0; idx < 100; idx++ {
		p := PositionOf(idx)
		if got := OffsetOf(p.Row, p.Col); got != idx {
			t.Fatalf("OffsetOf(PositionOf(%d)): got %d, want %d", idx, got, idx)
		}
		if p.Col < 0 || p.Col >= RowWidth {
			t.Fatalf("PositionOf(%d).Col=%d out of [0,%d)", idx, p.Col, RowWidth)
		}
	}
}

func TestPositionOf(t *testing.T) {
	cases := []struct {
		offset int
		want   Pos
	}{
		{offset: 0, want: Pos{Row: 0, Col: 0}},
		{offset: 15, want: Pos{Row: 0, Col: 15}},
		{offset: 16, want: Pos{Row: 1, Col: 0}},
		{offset: 33, want: Pos{Row: 2, Col: 1}},
		{offset: -4, want: Pos{Row: 0, Col: 0}},
	}
	for _, tc := range cases {
		if got := PositionOf(tc.offset); got != tc.want {
			t.Fatalf("PositionOf(%d): got %v, want %v", tc.offset, got, tc.want)
		}
	}
}

func TestRange_LenAndSpan(t *testing.T) {
	r := Range{Lo: 2, Hi: 5}
	if got, want := r.Len(), 4; got != want {
		t.Fatalf("len: got %d, want %d", got, want)
	}
	if got, want := r.Span(), (Span{Offset: 2, Len: 4}); got != want {
		t.Fatalf("span: got %v, want %v", got, want)
	}
	if !r.Contains(5) || r.Contains(6) || r.Contains(1) {
		t.Fatalf("contains: unexpected result for %v", r)
	}
	if got := (Range{Lo: 3, Hi: 2}).Len(); got != 0 {
		t.Fatalf("inverted range len: got %d, want 0", got)
	}
}

func TestClampInt(t *testing.T) {
	if got := clampInt(-1, 0, 3); got != 0 {
		t.Fatalf("clamp low: got %d, want 0", got)
	}
	if got := clampInt(9, 0, 3); got != 3 {
		t.Fatalf("clamp high: got %d, want 3", got)
	}
	if got := clampInt(5, 0, -1); got != 0 {
		t.Fatalf("clamp empty interval: got %d, want 0", got)
	}
}
