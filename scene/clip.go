package scene

import "github.com/nyurik/resvg"

// ClipPath is a clip-path reference. Its children define the clip
// geometry; everything outside their union is clipped away.
type ClipPath struct {
	// ID is the source document identifier, used in diagnostics.
	ID string

	// Units is the coordinate basis of the clip geometry.
	Units Units

	// Transform is the clip path's own transform.
	Transform resvg.Matrix

	// Clip is an optional clip applied to this clip's own geometry.
	Clip *ClipPath

	// Root holds the clip geometry nodes.
	Root *Group
}

// MaskKind selects how mask pixels become coverage.
type MaskKind uint8

// Mask kind constants.
const (
	// MaskLuminance derives coverage from mask luminance (the default).
	MaskLuminance MaskKind = iota
	// MaskAlpha derives coverage from the mask's alpha channel.
	MaskAlpha
)

// String returns a human-readable name for the mask kind.
func (k MaskKind) String() string {
	switch k {
	case MaskLuminance:
		return "Luminance"
	case MaskAlpha:
		return "Alpha"
	default:
		return unknownStr
	}
}

// Mask is a mask reference.
type Mask struct {
	// ID is the source document identifier, used in diagnostics.
	ID string

	// Units is the coordinate basis of Rect.
	Units Units

	// ContentUnits is the coordinate basis of the mask content.
	ContentUnits Units

	// Rect bounds the mask effect.
	Rect resvg.Rect

	// Kind selects luminance or alpha masking.
	Kind MaskKind

	// Mask is an optional mask applied to this mask's own content.
	Mask *Mask

	// Root holds the mask content nodes.
	Root *Group
}
