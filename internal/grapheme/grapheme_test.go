package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "\U0001F468\u200d\U0001F469\u200d\U0001F467" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if Count("") != 0 || Split("") != nil {
		t.Fatalf("empty text must have no clusters")
	}
}

func TestIsSingleCell(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{in: ".", want: true},
		{in: "·", want: true},
		{in: "×", want: true},
		{in: "é", want: true},
		{in: "", want: false},
		{in: "ab", want: false},
		{in: "中", want: false},
		{in: "\t", want: false},
	}
	for _, tc := range cases {
		if got := IsSingleCell(tc.in); got != tc.want {
			t.Fatalf("IsSingleCell(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFit(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "pad", in: "ab", width: 4, want: "ab  "},
		{name: "exact", in: "abcd", width: 4, want: "abcd"},
		{name: "truncate", in: "abcdef", width: 4, want: "abc…"},
		{name: "wide cluster not split", in: "a中中", width: 4, want: "a中…"},
		{name: "zero", in: "abc", width: 0, want: ""},
	}
	for _, tc := range cases {
		if got := Fit(tc.in, tc.width, "…"); got != tc.want {
			t.Fatalf("%s: Fit=%q, want %q", tc.name, got, tc.want)
		}
	}
}
