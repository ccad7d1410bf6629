package scene

import (
	"testing"

	"github.com/nyurik/resvg"
)

func rectPath(x, y, w, h float64) *Path {
	return &Path{
		Visible: true,
		Data:    NewPathData().Rect(x, y, w, h),
		Fill:    &Fill{Paint: Color{Value: resvg.RGB(0, 0, 0)}, Opacity: 1},
	}
}

func TestCalculateBBoxPath(t *testing.T) {
	b, ok := CalculateBBox(rectPath(0, 0, 10, 10))
	if !ok {
		t.Fatal("CalculateBBox failed")
	}
	want := resvg.BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if !b.FuzzyEq(want) {
		t.Errorf("bbox = %+v, want %+v", b, want)
	}
}

func TestCalculateBBoxIncludesStroke(t *testing.T) {
	p := rectPath(0, 0, 10, 10)
	p.Stroke = &Stroke{
		Paint:   Color{Value: resvg.RGB(0, 0, 0)},
		Opacity: 1,
		Width:   4,
	}

	b, ok := CalculateBBox(p)
	if !ok {
		t.Fatal("CalculateBBox failed")
	}
	want := resvg.BBox{MinX: -2, MinY: -2, MaxX: 12, MaxY: 12}
	if !b.FuzzyEq(want) {
		t.Errorf("bbox = %+v, want %+v", b, want)
	}
}

func TestCalculateBBoxGroupTransform(t *testing.T) {
	g := &Group{
		Opacity:   1,
		Transform: resvg.Translate(100, 0),
		Children:  []Node{rectPath(0, 0, 10, 10)},
	}

	b, ok := CalculateBBox(g)
	if !ok {
		t.Fatal("CalculateBBox failed")
	}
	want := resvg.BBox{MinX: 100, MinY: 0, MaxX: 110, MaxY: 10}
	if !b.FuzzyEq(want) {
		t.Errorf("bbox = %+v, want %+v", b, want)
	}
}

func TestCalculateBBoxEmpty(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"text", &Text{ID: "t"}},
		{"hidden path", &Path{Visible: false, Data: NewPathData().Rect(0, 0, 1, 1)}},
		{"empty group", &Group{Opacity: 1}},
		{"group of text", &Group{Opacity: 1, Children: []Node{&Text{}}}},
		{"single point", &Path{Visible: true, Data: NewPathData().MoveTo(5, 5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := CalculateBBox(tt.node); ok {
				t.Error("CalculateBBox reported content")
			}
		})
	}
}

func TestCalculateBBoxImage(t *testing.T) {
	rect, _ := resvg.NewRect(5, 5, 20, 10)
	img := &Image{Visible: true, Rect: rect, Data: RasterData{Pixmap: resvg.NewPixmap(2, 1)}}

	b, ok := CalculateBBox(img)
	if !ok {
		t.Fatal("CalculateBBox failed")
	}
	want := resvg.BBox{MinX: 5, MinY: 5, MaxX: 25, MaxY: 15}
	if !b.FuzzyEq(want) {
		t.Errorf("bbox = %+v, want %+v", b, want)
	}

	img.Visible = false
	if _, ok := CalculateBBox(img); ok {
		t.Error("hidden image reported content")
	}
}
