package render

import (
	"fmt"

	"github.com/nyurik/resvg/blend"
	"github.com/nyurik/resvg/scene"
)

// ConvertBlendMode maps a scene blend mode to the backend compositing
// operator. The mapping is total: every scene mode has exactly one
// operator, and an out-of-range value is a programming error upstream,
// not something to paper over with a fallback.
func ConvertBlendMode(m scene.BlendMode) blend.Mode {
	switch m {
	case scene.BlendNormal:
		return blend.SourceOver
	case scene.BlendMultiply:
		return blend.Multiply
	case scene.BlendScreen:
		return blend.Screen
	case scene.BlendOverlay:
		return blend.Overlay
	case scene.BlendDarken:
		return blend.Darken
	case scene.BlendLighten:
		return blend.Lighten
	case scene.BlendColorDodge:
		return blend.ColorDodge
	case scene.BlendColorBurn:
		return blend.ColorBurn
	case scene.BlendHardLight:
		return blend.HardLight
	case scene.BlendSoftLight:
		return blend.SoftLight
	case scene.BlendDifference:
		return blend.Difference
	case scene.BlendExclusion:
		return blend.Exclusion
	case scene.BlendHue:
		return blend.Hue
	case scene.BlendSaturation:
		return blend.Saturation
	case scene.BlendColor:
		return blend.Color
	case scene.BlendLuminosity:
		return blend.Luminosity
	}
	panic(fmt.Sprintf("render: unknown blend mode %d", m))
}
