package reader

import (
	"testing"

	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
)

func TestRead(t *testing.T) {
	data, err := Read("test", "(def x 1) ; comment\nx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data) != 2 {
		t.Fatalf("expected 2 data, got %d", len(data))
	}

	if s := literal.String(data[0]); s != "(def x 1)" {
		t.Fatalf("unexpected datum %s", s)
	}
}

func TestReadError(t *testing.T) {
	if _, err := Read("test", "(unbalanced"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestScanAcrossLines(t *testing.T) {
	r := New("test")
	defer r.Close()

	data, err := r.Scan("(+ 1\n")
	if err != nil || len(data) != 0 {
		t.Fatalf("expected an incomplete datum, got %v, %v", data, err)
	}

	data, err = r.Scan("2) 'a\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data) != 2 || literal.String(data[0]) != "(+ 1 2)" || literal.String(data[1]) != "(quote a)" {
		t.Fatalf("unexpected data %v", data)
	}
}

func TestScanError(t *testing.T) {
	r := New("test")

	if _, err := r.Scan(")\n"); err == nil {
		t.Fatal("expected an error")
	}
}
