// Package blend defines the compositing operator enumeration consumed
// by rasterization backends.
//
// The set combines the Porter-Duff operators with the separable and
// non-separable (HSL) blend modes of the W3C compositing model. This
// package only names the operators; pixel math belongs to the backend.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a compositing operator.
type Mode uint8

// Compositing operator constants.
const (
	// Porter-Duff operators.
	Clear           Mode = iota // Result: 0 (clear destination)
	Source                      // Result: S (replace with source)
	Destination                 // Result: D (keep destination)
	SourceOver                  // Result: S + D*(1-Sa) [default]
	DestinationOver             // Result: S*(1-Da) + D
	SourceIn                    // Result: S*Da
	DestinationIn               // Result: D*Sa
	SourceOut                   // Result: S*(1-Da)
	DestinationOut              // Result: D*(1-Sa)
	SourceAtop                  // Result: S*Da + D*(1-Sa)
	DestinationAtop             // Result: S*(1-Da) + D*Sa
	Xor                         // Result: S*(1-Da) + D*(1-Sa)
	Plus                        // Result: S + D (clamped)
	Modulate                    // Result: S*D

	// Separable blend modes.
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion

	// Non-separable (HSL) blend modes.
	Hue
	Saturation
	Color
	Luminosity
)

// String returns a human-readable name for the operator.
func (m Mode) String() string {
	switch m {
	case Clear:
		return "Clear"
	case Source:
		return "Source"
	case Destination:
		return "Destination"
	case SourceOver:
		return "SourceOver"
	case DestinationOver:
		return "DestinationOver"
	case SourceIn:
		return "SourceIn"
	case DestinationIn:
		return "DestinationIn"
	case SourceOut:
		return "SourceOut"
	case DestinationOut:
		return "DestinationOut"
	case SourceAtop:
		return "SourceAtop"
	case DestinationAtop:
		return "DestinationAtop"
	case Xor:
		return "Xor"
	case Plus:
		return "Plus"
	case Modulate:
		return "Modulate"
	case Multiply:
		return "Multiply"
	case Screen:
		return "Screen"
	case Overlay:
		return "Overlay"
	case Darken:
		return "Darken"
	case Lighten:
		return "Lighten"
	case ColorDodge:
		return "ColorDodge"
	case ColorBurn:
		return "ColorBurn"
	case HardLight:
		return "HardLight"
	case SoftLight:
		return "SoftLight"
	case Difference:
		return "Difference"
	case Exclusion:
		return "Exclusion"
	case Hue:
		return "Hue"
	case Saturation:
		return "Saturation"
	case Color:
		return "Color"
	case Luminosity:
		return "Luminosity"
	default:
		return "Unknown"
	}
}

// IsSeparable reports whether the operator works on each color channel
// independently. HSL modes need the full color triple.
func (m Mode) IsSeparable() bool {
	switch m {
	case Hue, Saturation, Color, Luminosity:
		return false
	default:
		return true
	}
}

// NeedsBackdrop reports whether the operator reads destination pixels
// beyond plain source-over coverage. Backends use this to decide when a
// group cannot be rendered directly into its parent's buffer.
func (m Mode) NeedsBackdrop() bool {
	return m != SourceOver && m != Source && m != Clear
}
