package core

import (
	"math"
	"testing"
)

func TestTranslation(t *testing.T) {
	transform := Translation(5, -3, 2)

	if got := transform.MultiplyTuple(Point(-3, 4, 5)); !got.Equal(Point(2, 1, 7)) {
		t.Errorf("Expected point (2, 1, 7), got %v", got)
	}

	inv, err := transform.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := inv.MultiplyTuple(Point(-3, 4, 5)); !got.Equal(Point(-8, 7, 3)) {
		t.Errorf("Expected point (-8, 7, 3), got %v", got)
	}

	v := Vector(-3, 4, 5)
	if got := transform.MultiplyTuple(v); !got.Equal(v) {
		t.Errorf("Translation should not affect vectors, got %v", got)
	}
}

func TestScaling(t *testing.T) {
	transform := Scaling(2, 3, 4)

	if got := transform.MultiplyTuple(Point(-4, 6, 8)); !got.Equal(Point(-8, 18, 32)) {
		t.Errorf("Scaling a point: got %v", got)
	}
	if got := transform.MultiplyTuple(Vector(-4, 6, 8)); !got.Equal(Vector(-8, 18, 32)) {
		t.Errorf("Scaling a vector: got %v", got)
	}

	inv, _ := transform.Inverse()
	if got := inv.MultiplyTuple(Vector(-4, 6, 8)); !got.Equal(Vector(-2, 2, 2)) {
		t.Errorf("Inverse scaling: got %v", got)
	}

	if got := Scaling(-1, 1, 1).MultiplyTuple(Point(2, 3, 4)); !got.Equal(Point(-2, 3, 4)) {
		t.Errorf("Reflection by negative scale: got %v", got)
	}
}

func TestRotations(t *testing.T) {
	half := math.Sqrt2 / 2

	tests := []struct {
		name      string
		transform Matrix4
		point     Tuple
		expected  Tuple
	}{
		{"x half quarter", RotationX(math.Pi / 4), Point(0, 1, 0), Point(0, half, half)},
		{"x full quarter", RotationX(math.Pi / 2), Point(0, 1, 0), Point(0, 0, 1)},
		{"y half quarter", RotationY(math.Pi / 4), Point(0, 0, 1), Point(half, 0, half)},
		{"y full quarter", RotationY(math.Pi / 2), Point(0, 0, 1), Point(1, 0, 0)},
		{"z half quarter", RotationZ(math.Pi / 4), Point(0, 1, 0), Point(-half, half, 0)},
		{"z full quarter", RotationZ(math.Pi / 2), Point(0, 1, 0), Point(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.transform.MultiplyTuple(tt.point); !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	inv, _ := RotationX(math.Pi / 4).Inverse()
	if got := inv.MultiplyTuple(Point(0, 1, 0)); !got.Equal(Point(0, half, -half)) {
		t.Errorf("Inverse x rotation should rotate the opposite way, got %v", got)
	}
}

func TestShearing(t *testing.T) {
	p := Point(2, 3, 4)
	tests := []struct {
		transform Matrix4
		expected  Tuple
	}{
		{Shearing(1, 0, 0, 0, 0, 0), Point(5, 3, 4)},
		{Shearing(0, 1, 0, 0, 0, 0), Point(6, 3, 4)},
		{Shearing(0, 0, 1, 0, 0, 0), Point(2, 5, 4)},
		{Shearing(0, 0, 0, 1, 0, 0), Point(2, 7, 4)},
		{Shearing(0, 0, 0, 0, 1, 0), Point(2, 3, 6)},
		{Shearing(0, 0, 0, 0, 0, 1), Point(2, 3, 7)},
	}
	for i, tt := range tests {
		if got := tt.transform.MultiplyTuple(p); !got.Equal(tt.expected) {
			t.Errorf("case %d: expected %v, got %v", i, tt.expected, got)
		}
	}
}

func TestChain_AppliesInReverseOrder(t *testing.T) {
	p := Point(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	sequential := c.MultiplyTuple(b.MultiplyTuple(a.MultiplyTuple(p)))
	chained := Chain(c, b, a).MultiplyTuple(p)

	if !chained.Equal(Point(15, 0, 7)) || !chained.Equal(sequential) {
		t.Errorf("Expected (15, 0, 7), got chained=%v sequential=%v", chained, sequential)
	}
	if Chain() != Identity {
		t.Errorf("Empty chain should be identity")
	}
}

func TestViewTransform(t *testing.T) {
	tests := []struct {
		name     string
		from     Tuple
		to       Tuple
		up       Tuple
		expected Matrix4
	}{
		{
			name:     "default orientation",
			from:     Point(0, 0, 0),
			to:       Point(0, 0, -1),
			up:       Vector(0, 1, 0),
			expected: Identity,
		},
		{
			name:     "looking in positive z",
			from:     Point(0, 0, 0),
			to:       Point(0, 0, 1),
			up:       Vector(0, 1, 0),
			expected: Scaling(-1, 1, -1),
		},
		{
			name:     "moves the world",
			from:     Point(0, 0, 8),
			to:       Point(0, 0, 0),
			up:       Vector(0, 1, 0),
			expected: Translation(0, 0, -8),
		},
		{
			name: "arbitrary",
			from: Point(1, 3, 2),
			to:   Point(4, -2, 8),
			up:   Vector(1, 1, 0),
			expected: Matrix4{
				{-0.50709, 0.50709, 0.67612, -2.36643},
				{0.76772, 0.60609, 0.12122, -2.82843},
				{-0.35857, 0.59761, -0.71714, 0.00000},
				{0.00000, 0.00000, 0.00000, 1.00000},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ViewTransform(tt.from, tt.to, tt.up)
			if !approxMatrix(got, tt.expected, 1e-4) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRay_PositionAndTransform(t *testing.T) {
	r := NewRay(Point(2, 3, 4), Vector(1, 0, 0))
	positions := map[float64]Tuple{
		0:   Point(2, 3, 4),
		1:   Point(3, 3, 4),
		-1:  Point(1, 3, 4),
		2.5: Point(4.5, 3, 4),
	}
	for tval, expected := range positions {
		if got := r.Position(tval); !got.Equal(expected) {
			t.Errorf("Position(%f): expected %v, got %v", tval, expected, got)
		}
	}

	original := NewRay(Point(1, 2, 3), Vector(0, 1, 0))
	moved := original.Transform(Translation(3, 4, 5))
	if !moved.Origin.Equal(Point(4, 6, 8)) || !moved.Direction.Equal(Vector(0, 1, 0)) {
		t.Errorf("Translated ray: got %+v", moved)
	}

	scaled := original.Transform(Scaling(2, 3, 4))
	if !scaled.Origin.Equal(Point(2, 6, 12)) || !scaled.Direction.Equal(Vector(0, 3, 0)) {
		t.Errorf("Scaled ray: got %+v", scaled)
	}

	if !original.Origin.Equal(Point(1, 2, 3)) {
		t.Errorf("Transform must not mutate the original ray")
	}
}
