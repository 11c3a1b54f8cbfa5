package hexhog

import (
	"strings"
	"testing"
)

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestBanner(t *testing.T) {
	got := Banner()
	if !strings.HasPrefix(got, "hexhog v") || !strings.HasSuffix(got, Version()) {
		t.Fatalf("banner: got %q", got)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-rc.1", want: true},
		{version: "v0.1.0", want: false},
		{version: "0.1", want: false},
		{version: "00.1.0", want: false},
	}

	for _, tc := range cases {
		if got := IsSemver(tc.version); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}
