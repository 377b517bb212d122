package glue

import (
	"image"
	"testing"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/fixed"
)

func TestRect2iConstructorsEquivalent(t *testing.T) {
	want := NewRect2i(Vec2i(1, 2), Vec2i(3, 4))
	tests := []struct {
		name string
		r    Rect2i
	}{
		{"XYWH", Rect2iXYWH(1, 2, 3, 4)},
		{"PosWH", Rect2iPosWH(Vec2i(1, 2), 3, 4)},
		{"XYSize", Rect2iXYSize(1, 2, Vec2i(3, 4))},
		{"literal", Rect2i{Position: Vec2i(1, 2), Size: Vec2i(3, 4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.r.Equal(want) {
				t.Errorf("%v != %v", tt.r, want)
			}
			if tt.r.Hash() != want.Hash() {
				t.Errorf("hash %d != %d", tt.r.Hash(), want.Hash())
			}
		})
	}
}

func TestRect2iEqualDiffers(t *testing.T) {
	base := Rect2iXYWH(1, 2, 3, 4)
	others := []Rect2i{
		Rect2iXYWH(0, 2, 3, 4),
		Rect2iXYWH(1, 0, 3, 4),
		Rect2iXYWH(1, 2, 0, 4),
		Rect2iXYWH(1, 2, 3, 0),
	}
	for _, o := range others {
		if base.Equal(o) {
			t.Errorf("%v equal to %v", base, o)
		}
	}
}

func TestRect2iHash(t *testing.T) {
	r := Rect2iXYWH(1, 2, 3, 4)
	if got, want := r.Hash(), Vec2i(1, 2).Hash()^Vec2i(3, 4).Hash(); got != want {
		t.Errorf("Hash() = %d, want %d", got, want)
	}
}

func TestRect2iFieldsSettable(t *testing.T) {
	r := Rect2iXYWH(1, 2, 3, 4)
	r.Size = Vec2i(-5, -6)
	if !r.Size.Equal(Vec2i(-5, -6)) {
		t.Errorf("Size = %v", r.Size)
	}
	r.Position.X = 10
	if r.Position.X != 10 {
		t.Errorf("Position = %v", r.Position)
	}
}

func TestRect2iString(t *testing.T) {
	r := Rect2iXYWH(1, 2, 3, 4)
	if got, want := r.String(), "((1, 2), (3, 4))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := r.Formatted("%02d"), "((01, 02), (03, 04))"; got != want {
		t.Errorf("Formatted() = %q, want %q", got, want)
	}
}

func TestRect2iAbs(t *testing.T) {
	tests := []struct {
		name string
		r    Rect2i
		want Rect2i
	}{
		{"positive", Rect2iXYWH(1, 2, 3, 4), Rect2iXYWH(1, 2, 3, 4)},
		{"negative width", Rect2iXYWH(10, 2, -3, 4), Rect2iXYWH(7, 2, 3, 4)},
		{"negative both", Rect2iXYWH(10, 20, -3, -4), Rect2iXYWH(7, 16, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Abs(); !got.Equal(tt.want) {
				t.Errorf("Abs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect2iGeometry(t *testing.T) {
	r := Rect2iXYWH(1, 2, 3, 4)
	if got := r.End(); !got.Equal(Vec2i(4, 6)) {
		t.Errorf("End() = %v", got)
	}
	if got := r.Area(); got != 12 {
		t.Errorf("Area() = %d", got)
	}
	if !r.HasArea() {
		t.Error("HasArea() = false")
	}
	if Rect2iXYWH(0, 0, 0, 5).HasArea() {
		t.Error("zero-width rect should have no area")
	}

	points := []struct {
		p    Vector2i
		want bool
	}{
		{Vec2i(1, 2), true},
		{Vec2i(3, 5), true},
		{Vec2i(4, 2), false},
		{Vec2i(1, 6), false},
		{Vec2i(0, 2), false},
	}
	for _, pt := range points {
		if got := r.HasPoint(pt.p); got != pt.want {
			t.Errorf("HasPoint(%v) = %v, want %v", pt.p, got, pt.want)
		}
	}
}

func TestRect2iIntersects(t *testing.T) {
	r := Rect2iXYWH(0, 0, 10, 10)
	tests := []struct {
		name string
		o    Rect2i
		want bool
	}{
		{"overlap", Rect2iXYWH(5, 5, 10, 10), true},
		{"inside", Rect2iXYWH(2, 2, 2, 2), true},
		{"touching edge", Rect2iXYWH(10, 0, 5, 5), false},
		{"disjoint", Rect2iXYWH(20, 20, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.o); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.o, got, tt.want)
			}
		})
	}
}

func TestRect2iConversions(t *testing.T) {
	r := Rect2iXYWH(1, 2, 3, 4)
	if got := r.Image(); got != image.Rect(1, 2, 4, 6) {
		t.Errorf("Image() = %v", got)
	}
	if got := Rect2iFromImage(image.Rect(1, 2, 4, 6)); !got.Equal(r) {
		t.Errorf("Rect2iFromImage = %v", got)
	}
	if got := r.Fixed(); got != fixed.R(1, 2, 4, 6) {
		t.Errorf("Fixed() = %v", got)
	}
	want := gputypes.Extent3D{Width: 3, Height: 4, DepthOrArrayLayers: 1}
	if got := r.Extent3D(); got != want {
		t.Errorf("Extent3D() = %+v, want %+v", got, want)
	}
}
