package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Light is a single directional light with ambient, diffuse and specular
// terms, all in [0, 1].
type Light struct {
	Enabled   bool
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
	// Direction towards the light, in eye space.
	Direction mgl64.Vec3
}

// DefaultLight matches the viewer's initial lighting panel.
func DefaultLight() Light {
	return Light{
		Enabled:   true,
		Ambient:   0.2,
		Diffuse:   0.8,
		Specular:  1.0,
		Shininess: 100,
		Direction: mgl64.Vec3{1, 1, 1},
	}
}

const materialSpecular = 0.5

// Shade lights a surface with eye-space normal n and base color base. A zero
// normal only receives ambient light.
func (l Light) Shade(n mgl64.Vec3, base color.RGBA) color.RGBA {
	if !l.Enabled {
		return base
	}

	brightness := l.Ambient
	var highlight float64

	toLight := unit(l.Direction)
	if diffuse := n.Dot(toLight); diffuse > 0 {
		brightness += l.Diffuse * diffuse
		half := unit(toLight.Add(mgl64.Vec3{0, 0, 1}))
		if s := n.Dot(half); s > 0 {
			highlight = l.Specular * materialSpecular * math.Pow(s, l.Shininess) * 255
		}
	}

	return color.RGBA{
		R: clampChannel(float64(base.R)*brightness + highlight),
		G: clampChannel(float64(base.G)*brightness + highlight),
		B: clampChannel(float64(base.B)*brightness + highlight),
		A: base.A,
	}
}

func unit(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
