package common

import "testing"

func TestHasAny(t *testing.T) {
	if !HasAny("Light Rain showers", "rain") {
		t.Error("case-insensitive match failed")
	}
	if HasAny("clear sky", "rain", "snow") {
		t.Error("unexpected match")
	}
}

func TestCanonKey(t *testing.T) {
	cases := map[string]string{
		"India":          "india",
		"  Sri  Lanka  ": "sri_lanka",
		"NEW ZEALAND":    "new_zealand",
		"":               "",
	}
	for in, want := range cases {
		if got := CanonKey(in); got != want {
			t.Errorf("CanonKey(%q) = %q, want %q", in, got, want)
		}
	}
}
