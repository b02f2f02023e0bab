package num

import "testing"

func TestFormat(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"12", "12"},
		{"-3", "-3"},
		{"2.5", "2.5"},
		{"1/8", "0.125"},
		{"1/3", "1/3"},
		{"1e3", "1000"},
		{"-7/20", "-0.35"},
	} {
		if s := Num(tc.in).String(); s != tc.out {
			t.Errorf("%s: expected %s, got %s", tc.in, tc.out, s)
		}
	}
}

func TestParseRejectsSymbols(t *testing.T) {
	for _, s := range []string{"x", "-", "+", "**", "lambert-w"} {
		if _, ok := Parse(s); ok {
			t.Errorf("%q parsed as a number", s)
		}
	}
}

func TestEqualAndTruth(t *testing.T) {
	if !Num("0.5").Equal(Num("1/2")) {
		t.Fatal("expected 0.5 to equal 1/2")
	}

	if Zero.Bool() || !One.Bool() {
		t.Fatal("unexpected truth values")
	}
}
