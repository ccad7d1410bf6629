package resvg

import (
	"math"
	"testing"
)

func TestNewBBoxHasNoContent(t *testing.T) {
	b := NewBBox()
	if b.HasContent() {
		t.Error("NewBBox().HasContent() = true, want false")
	}
}

func TestBBoxSentinelDistinctFromZeroAreaBox(t *testing.T) {
	// A legitimate zero-height box at the origin is content; the
	// accumulator state is not.
	line, ok := NewBBoxWH(0, 0, 10, 0)
	if !ok {
		t.Fatal("NewBBoxWH(0, 0, 10, 0) failed")
	}
	if !line.HasContent() {
		t.Error("zero-height box reported no content")
	}
}

func TestNewBBoxWH(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		ok         bool
	}{
		{"regular", 1, 2, 3, 4, true},
		{"zero width", 0, 0, 0, 5, true},
		{"zero height", 0, 0, 5, 0, true},
		{"point", 3, 3, 0, 0, false},
		{"negative width", 0, 0, -1, 5, false},
		{"nan", math.NaN(), 0, 1, 1, false},
		{"inf", 0, math.Inf(1), 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := NewBBoxWH(tt.x, tt.y, tt.w, tt.h)
			if ok != tt.ok {
				t.Errorf("NewBBoxWH(%v, %v, %v, %v) ok = %v, want %v",
					tt.x, tt.y, tt.w, tt.h, ok, tt.ok)
			}
		})
	}
}

func TestBBoxExpand(t *testing.T) {
	a, _ := NewBBoxWH(0, 0, 10, 10)
	b, _ := NewBBoxWH(5, 5, 10, 10)

	got := a.Expand(b)
	want := BBox{MinX: 0, MinY: 0, MaxX: 15, MaxY: 15}
	if !got.FuzzyEq(want) {
		t.Errorf("Expand = %+v, want %+v", got, want)
	}

	// Expanding the sentinel yields the operand unchanged.
	if got := NewBBox().Expand(a); !got.FuzzyEq(a) {
		t.Errorf("sentinel.Expand(a) = %+v, want %+v", got, a)
	}
}

func TestBBoxExpandOrderIndependent(t *testing.T) {
	boxes := []BBox{
		{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4},
		{MinX: -3, MinY: 2, MaxX: 1, MaxY: 9},
		{MinX: 7, MinY: -1, MaxX: 8, MaxY: 0},
	}

	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	want := NewBBox().Expand(boxes[0]).Expand(boxes[1]).Expand(boxes[2])
	for _, p := range perms {
		got := NewBBox()
		for _, i := range p {
			got = got.Expand(boxes[i])
		}
		if !got.FuzzyEq(want) {
			t.Errorf("permutation %v: union = %+v, want %+v", p, got, want)
		}
	}
}

func TestBBoxTransform(t *testing.T) {
	b, _ := NewBBoxWH(0, 0, 10, 10)

	got := b.Transform(Translate(5, -5))
	want := BBox{MinX: 5, MinY: -5, MaxX: 15, MaxY: 5}
	if !got.FuzzyEq(want) {
		t.Errorf("translate: got %+v, want %+v", got, want)
	}

	// 90-degree rotation maps the box onto the other side of the Y axis.
	got = b.Transform(Rotate(math.Pi / 2))
	want = BBox{MinX: -10, MinY: 0, MaxX: 0, MaxY: 10}
	if !got.FuzzyEq(want) {
		t.Errorf("rotate: got %+v, want %+v", got, want)
	}
}

func TestBBoxOutset(t *testing.T) {
	b, _ := NewBBoxWH(0, 0, 10, 10)
	got := b.Outset(2)
	want := BBox{MinX: -2, MinY: -2, MaxX: 12, MaxY: 12}
	if !got.FuzzyEq(want) {
		t.Errorf("Outset(2) = %+v, want %+v", got, want)
	}
}

func TestBBoxToRect(t *testing.T) {
	b, _ := NewBBoxWH(1, 2, 3, 4)
	r, ok := b.ToRect()
	if !ok {
		t.Fatal("ToRect failed for a regular box")
	}
	if r != (Rect{X: 1, Y: 2, W: 3, H: 4}) {
		t.Errorf("ToRect = %+v", r)
	}

	// Degenerate along one axis: no usable coordinate basis.
	line, _ := NewBBoxWH(0, 0, 10, 0)
	if _, ok := line.ToRect(); ok {
		t.Error("ToRect succeeded for a zero-height box")
	}

	if _, ok := NewBBox().ToRect(); ok {
		t.Error("ToRect succeeded for the no-content state")
	}
}

func TestBBoxIntersects(t *testing.T) {
	a, _ := NewBBoxWH(0, 0, 10, 10)
	b, _ := NewBBoxWH(5, 5, 10, 10)
	c, _ := NewBBoxWH(20, 20, 5, 5)

	if !a.Intersects(b) {
		t.Error("a.Intersects(b) = false, want true")
	}
	if a.Intersects(c) {
		t.Error("a.Intersects(c) = true, want false")
	}
	if a.Intersects(NewBBox()) {
		t.Error("a intersects the no-content state")
	}
}

func TestNewRect(t *testing.T) {
	if _, ok := NewRect(0, 0, 10, 10); !ok {
		t.Error("NewRect(0, 0, 10, 10) failed")
	}
	if _, ok := NewRect(0, 0, 0, 10); ok {
		t.Error("NewRect accepted a zero width")
	}
	if _, ok := NewRect(0, 0, 10, -1); ok {
		t.Error("NewRect accepted a negative height")
	}
}
