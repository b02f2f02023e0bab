package cpx

import (
	"math/big"
	"testing"
)

func TestParse(t *testing.T) {
	for s, expected := range map[string]string{
		"1j2":    "1j2",
		"-1/2j3": "-0.5j3",
		"0j-1.5": "0j-1.5",
		"1/3j0":  "1/3j0",
	} {
		c, ok := Parse(s)
		if !ok {
			t.Fatalf("expected %s to parse", s)
		}

		if c.String() != expected {
			t.Fatalf("expected %s, got %s", expected, c.String())
		}
	}

	for _, s := range []string{"j", "1j", "j1", "ajb", "1jj2"} {
		if _, ok := Parse(s); ok {
			t.Fatalf("expected %s to be rejected", s)
		}
	}
}

func TestEqualAndTruth(t *testing.T) {
	a := Cpx(big.NewRat(1, 2), big.NewRat(0, 1))
	b, _ := Parse("0.5j0")

	if !a.Equal(b) {
		t.Fatalf("expected %s to equal %s", a, b)
	}

	if !a.Bool() {
		t.Fatal("non-zero complex should be true")
	}

	if Cpx(new(big.Rat), new(big.Rat)).Bool() {
		t.Fatal("zero complex should be false")
	}

	if a.Complex128() != complex(0.5, 0) {
		t.Fatalf("unexpected complex128 %v", a.Complex128())
	}
}
