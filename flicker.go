package flicker

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color is a straight-alpha tint with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// ColorWhite leaves textures untinted.
var ColorWhite = Color{R: 1, G: 1, B: 1, A: 1}

// RGBA converts the color to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := clamp(c.A, 0, 1)
	return color.RGBA{
		R: uint8(clamp(c.R, 0, 1) * a * 255),
		G: uint8(clamp(c.G, 0, 1) * a * 255),
		B: uint8(clamp(c.B, 0, 1) * a * 255),
		A: uint8(a * 255),
	}
}

// BlendMode is the compositing operation a particle sprite is drawn with.
// Emitter presets store it by name.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendAdd
	BlendMultiply
	BlendScreen
)

var blendModes = [...]struct {
	name  string
	blend ebiten.Blend
}{
	BlendNormal: {"normal", ebiten.BlendSourceOver},
	BlendAdd:    {"add", ebiten.BlendLighter},
	BlendMultiply: {"multiply", ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
		BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}},
	BlendScreen: {"screen", ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorOne,
		BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}},
}

// EbitenBlend returns the ebiten blend for b. Unknown modes draw source-over.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	if int(b) < len(blendModes) {
		return blendModes[b].blend
	}
	return ebiten.BlendSourceOver
}

func (b BlendMode) String() string {
	if int(b) < len(blendModes) {
		return blendModes[b].name
	}
	return "normal"
}

// MarshalText encodes the blend mode by name.
func (b BlendMode) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes a blend mode name. An empty name is BlendNormal.
func (b *BlendMode) UnmarshalText(text []byte) error {
	name := string(text)
	if name == "" {
		*b = BlendNormal
		return nil
	}
	for i, m := range blendModes {
		if m.name == name {
			*b = BlendMode(i)
			return nil
		}
	}
	return &ConfigError{Field: "blendMode", Reason: "unknown blend mode " + name}
}
