package scene

import (
	"testing"

	"github.com/nyurik/resvg"
)

func TestPathDataBuilder(t *testing.T) {
	p := NewPathData().
		MoveTo(0, 0).
		LineTo(10, 0).
		QuadTo(15, 5, 10, 10).
		CubicTo(8, 12, 2, 12, 0, 10).
		Close()

	wantVerbs := []PathVerb{VerbMoveTo, VerbLineTo, VerbQuadTo, VerbCubicTo, VerbClose}
	if len(p.Verbs()) != len(wantVerbs) {
		t.Fatalf("verb count = %d, want %d", len(p.Verbs()), len(wantVerbs))
	}
	for i, v := range p.Verbs() {
		if v != wantVerbs[i] {
			t.Errorf("verb[%d] = %v, want %v", i, v, wantVerbs[i])
		}
	}

	wantPoints := 2 + 2 + 4 + 6
	if len(p.Points()) != wantPoints {
		t.Errorf("point count = %d, want %d", len(p.Points()), wantPoints)
	}
}

func TestPathDataBounds(t *testing.T) {
	p := NewPathData().MoveTo(2, 3).LineTo(12, 3).LineTo(12, 13).Close()

	b, ok := p.Bounds()
	if !ok {
		t.Fatal("Bounds() failed")
	}
	want := resvg.BBox{MinX: 2, MinY: 3, MaxX: 12, MaxY: 13}
	if !b.FuzzyEq(want) {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}

	if _, ok := NewPathData().Bounds(); ok {
		t.Error("Bounds() succeeded for an empty path")
	}
}

func TestPathDataRect(t *testing.T) {
	p := NewPathData().Rect(1, 2, 3, 4)
	b, ok := p.Bounds()
	if !ok {
		t.Fatal("Bounds() failed")
	}
	want := resvg.BBox{MinX: 1, MinY: 2, MaxX: 4, MaxY: 6}
	if !b.FuzzyEq(want) {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
	if p.Verbs()[len(p.Verbs())-1] != VerbClose {
		t.Error("Rect() did not close the subpath")
	}
}

func TestPathVerbPointCount(t *testing.T) {
	tests := []struct {
		verb PathVerb
		want int
	}{
		{VerbMoveTo, 2},
		{VerbLineTo, 2},
		{VerbQuadTo, 4},
		{VerbCubicTo, 6},
		{VerbClose, 0},
	}
	for _, tt := range tests {
		t.Run(tt.verb.String(), func(t *testing.T) {
			if got := tt.verb.PointCount(); got != tt.want {
				t.Errorf("PointCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
