package geom

import (
	"math"
	"testing"
)

func TestGridPointTo(t *testing.T) {
	tests := []struct {
		name     string
		a, b     GridPoint
		expected Delta
	}{
		{"forward", GridPoint{1, 3}, GridPoint{2, 4}, Delta{1, 1}},
		{"backward", GridPoint{5, 7}, GridPoint{2, 4}, Delta{-3, -3}},
		{"mixed", GridPoint{0, 9}, GridPoint{4, 2}, Delta{4, -7}},
		{"same", GridPoint{3, 3}, GridPoint{3, 3}, Delta{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.To(tt.b); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGridPointAddRoundTrip(t *testing.T) {
	points := []struct{ a, b GridPoint }{
		{GridPoint{1, 3}, GridPoint{2, 4}},
		{GridPoint{0, 0}, GridPoint{10, 0}},
		{GridPoint{7, 2}, GridPoint{7, 9}},
	}

	for _, pair := range points {
		if got := pair.a.Add(pair.a.To(pair.b)); got != pair.b {
			t.Errorf("a + a.To(b) = %v, want %v", got, pair.b)
		}
	}
}

func TestGridPointAddClampsNegative(t *testing.T) {
	p := GridPoint{2, 2}
	got := p.Add(Delta{-5, -1})
	if got != (GridPoint{0, 1}) {
		t.Errorf("expected (0,1), got %v", got)
	}
}

func TestClampIdempotent(t *testing.T) {
	for _, n := range []int{-10, 0, 3, 7, 100} {
		once := Clamp(n, 0, 7)
		if twice := Clamp(once, 0, 7); twice != once {
			t.Errorf("clamp not idempotent for %d: %d then %d", n, once, twice)
		}
	}
}

func TestClampPoint(t *testing.T) {
	got := ClampPoint(GridPoint{15, 3}, 0, 10, 5, 20)
	if got != (GridPoint{10, 5}) {
		t.Errorf("expected (10,5), got %v", got)
	}
}

func TestDomainPointDistance(t *testing.T) {
	a := DomainPoint{0, 0}
	b := DomainPoint{3, 4}
	if d := a.Distance(b); math.Abs(d-5.0) > 1e-9 {
		t.Errorf("expected 5, got %f", d)
	}
}

func TestGridPointDistance(t *testing.T) {
	a := GridPoint{1, 1}
	b := GridPoint{4, 5}
	if d := a.Distance(b); math.Abs(d-5.0) > 1e-9 {
		t.Errorf("expected 5, got %f", d)
	}
}
