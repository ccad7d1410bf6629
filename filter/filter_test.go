package filter

import (
	"testing"

	"github.com/nyurik/resvg"
	"github.com/nyurik/resvg/scene"
)

func userSpaceFilter(x, y, w, h float64) scene.Filter {
	rect, _ := resvg.NewRect(x, y, w, h)
	return scene.Filter{
		Units:          scene.UserSpaceOnUse,
		PrimitiveUnits: scene.UserSpaceOnUse,
		Rect:           rect,
		Primitives:     []scene.FilterPrimitive{scene.GaussianBlur{StdDevX: 2, StdDevY: 2}},
	}
}

func TestResolveEmptyChain(t *testing.T) {
	filters, region := Resolve(nil, nil, nil, resvg.Identity())
	if filters != nil || region != nil {
		t.Error("empty chain should resolve to nothing")
	}
}

func TestResolveUserSpaceRegion(t *testing.T) {
	chain := []scene.Filter{userSpaceFilter(-5, -5, 30, 30)}

	base, _ := resvg.NewBBoxWH(0, 0, 10, 10)
	filters, region := Resolve(chain, &base, &base, resvg.Scale(2, 2))
	if region == nil {
		t.Fatal("resolution failed")
	}
	want := resvg.BBox{MinX: -10, MinY: -10, MaxX: 50, MaxY: 50}
	if !region.FuzzyEq(want) {
		t.Errorf("region = %+v, want %+v", *region, want)
	}
	if len(filters) != 1 || len(filters[0].Primitives) != 1 {
		t.Fatalf("filters = %+v", filters)
	}

	// The blur standard deviation scales with the device transform.
	blur, ok := filters[0].Primitives[0].(Blur)
	if !ok {
		t.Fatalf("primitive = %T, want Blur", filters[0].Primitives[0])
	}
	if blur.StdDevX != 4 || blur.StdDevY != 4 {
		t.Errorf("blur = %+v, want scaled std dev 4", blur)
	}
}

func TestResolveObjectBoundingBoxRegion(t *testing.T) {
	rect, _ := resvg.NewRect(-0.1, -0.1, 1.2, 1.2)
	chain := []scene.Filter{{
		Units:          scene.ObjectBoundingBox,
		PrimitiveUnits: scene.UserSpaceOnUse,
		Rect:           rect,
		Primitives:     []scene.FilterPrimitive{scene.Offset{DX: 1, DY: 2}},
	}}

	object, _ := resvg.NewBBoxWH(10, 10, 100, 100)
	_, region := Resolve(chain, &object, &object, resvg.Identity())
	if region == nil {
		t.Fatal("resolution failed")
	}
	want := resvg.BBox{MinX: 0, MinY: 0, MaxX: 120, MaxY: 120}
	if !region.FuzzyEq(want) {
		t.Errorf("region = %+v, want %+v", *region, want)
	}
}

func TestResolveObjectUnitsWithoutBase(t *testing.T) {
	rect, _ := resvg.NewRect(0, 0, 1, 1)
	chain := []scene.Filter{{
		Units:      scene.ObjectBoundingBox,
		Rect:       rect,
		Primitives: []scene.FilterPrimitive{scene.Flood{Color: resvg.RGB(1, 0, 0), Opacity: 1}},
	}}

	// No base region: objectBoundingBox units have nothing to resolve
	// against and the chain is invalid.
	if _, region := Resolve(chain, nil, nil, resvg.Identity()); region != nil {
		t.Error("objectBoundingBox chain resolved without a base region")
	}
}

func TestResolveUserSpaceWithoutBase(t *testing.T) {
	// Flood filters on empty groups manufacture content from nothing;
	// a fully userSpaceOnUse chain has no dependency on the base.
	rect, _ := resvg.NewRect(0, 0, 50, 50)
	chain := []scene.Filter{{
		Units:      scene.UserSpaceOnUse,
		Rect:       rect,
		Primitives: []scene.FilterPrimitive{scene.Flood{Color: resvg.RGB(1, 0, 0), Opacity: 0.5}},
	}}

	filters, region := Resolve(chain, nil, nil, resvg.Identity())
	if region == nil {
		t.Fatal("userSpaceOnUse chain failed without a base region")
	}
	want := resvg.BBox{MinX: 0, MinY: 0, MaxX: 50, MaxY: 50}
	if !region.FuzzyEq(want) {
		t.Errorf("region = %+v, want %+v", *region, want)
	}

	flood := filters[0].Primitives[0].(Flood)
	if flood.Color.A != 0.5 {
		t.Errorf("flood opacity not folded into alpha: %+v", flood.Color)
	}
}

func TestResolveNoPrimitives(t *testing.T) {
	rect, _ := resvg.NewRect(0, 0, 10, 10)
	chain := []scene.Filter{{Units: scene.UserSpaceOnUse, Rect: rect}}

	base, _ := resvg.NewBBoxWH(0, 0, 10, 10)
	if _, region := Resolve(chain, &base, &base, resvg.Identity()); region != nil {
		t.Error("primitive-less filter resolved a region")
	}
}

func TestResolveChainUnionsRegions(t *testing.T) {
	chain := []scene.Filter{
		userSpaceFilter(0, 0, 10, 10),
		userSpaceFilter(20, 20, 10, 10),
	}

	base, _ := resvg.NewBBoxWH(0, 0, 5, 5)
	filters, region := Resolve(chain, &base, &base, resvg.Identity())
	if region == nil {
		t.Fatal("resolution failed")
	}
	want := resvg.BBox{MinX: 0, MinY: 0, MaxX: 30, MaxY: 30}
	if !region.FuzzyEq(want) {
		t.Errorf("region = %+v, want %+v", *region, want)
	}
	if len(filters) != 2 {
		t.Errorf("len(filters) = %d, want 2", len(filters))
	}
}

func TestResolveOneInvalidFilterFailsChain(t *testing.T) {
	chain := []scene.Filter{
		userSpaceFilter(0, 0, 10, 10),
		{Units: scene.UserSpaceOnUse, Rect: resvg.Rect{X: 0, Y: 0, W: 10, H: 10}},
	}

	base, _ := resvg.NewBBoxWH(0, 0, 5, 5)
	filters, region := Resolve(chain, &base, &base, resvg.Identity())
	if filters != nil || region != nil {
		t.Error("chain with an invalid entry should resolve to nothing")
	}
}

func TestResolvePrimitiveObjectUnits(t *testing.T) {
	rect, _ := resvg.NewRect(-0.1, -0.1, 1.2, 1.2)
	chain := []scene.Filter{{
		Units:          scene.ObjectBoundingBox,
		PrimitiveUnits: scene.ObjectBoundingBox,
		Rect:           rect,
		Primitives:     []scene.FilterPrimitive{scene.GaussianBlur{StdDevX: 0.1, StdDevY: 0.2}},
	}}

	object, _ := resvg.NewBBoxWH(0, 0, 100, 50)
	filters, region := Resolve(chain, &object, &object, resvg.Identity())
	if region == nil {
		t.Fatal("resolution failed")
	}
	blur := filters[0].Primitives[0].(Blur)
	if blur.StdDevX != 10 || blur.StdDevY != 10 {
		t.Errorf("blur = %+v, want {10 10}", blur)
	}
}

func TestResolveNegativeStdDev(t *testing.T) {
	rect, _ := resvg.NewRect(0, 0, 10, 10)
	chain := []scene.Filter{{
		Units:      scene.UserSpaceOnUse,
		Rect:       rect,
		Primitives: []scene.FilterPrimitive{scene.GaussianBlur{StdDevX: -1}},
	}}

	base, _ := resvg.NewBBoxWH(0, 0, 5, 5)
	if _, region := Resolve(chain, &base, &base, resvg.Identity()); region != nil {
		t.Error("negative standard deviation resolved a region")
	}
}
