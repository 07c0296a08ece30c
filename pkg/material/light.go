package material

import (
	"math"

	"github.com/ipersids/go-ray-tracer/pkg/core"
)

// Light is a single point light with a position and an intensity
// color. The lighting function accepts exactly one light; scenes with
// several lights pick one before shading.
type Light struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight validates that position is a point.
func NewPointLight(position core.Tuple, intensity core.Color) (Light, error) {
	if !position.IsPoint() {
		return Light{}, core.ErrNotPoint
	}
	return Light{Position: position, Intensity: intensity}, nil
}

// Reflect returns the vector v reflected about the normal n.
func Reflect(v, n core.Tuple) (core.Tuple, error) {
	d, err := v.Dot(n)
	if err != nil {
		return core.Tuple{}, err
	}
	return v.Subtract(n.Multiply(2 * d))
}

// Lighting evaluates the Phong model: ambient plus diffuse plus
// specular. The eye and normal vectors and the illuminated point are
// all in world space; the normal is assumed to be unit length.
func Lighting(m Material, light Light, point, eye, normal core.Tuple) (core.Color, error) {
	if !point.IsPoint() {
		return core.Color{}, core.ErrNotPoint
	}

	// Blend the surface color with the light's intensity.
	effectiveColor := m.Color.Hadamard(light.Intensity)

	toLight, err := light.Position.Subtract(point)
	if err != nil {
		return core.Color{}, err
	}
	lightVec, err := toLight.Normalize()
	if err != nil {
		return core.Color{}, err
	}

	ambient := effectiveColor.Multiply(m.Ambient)

	// The cosine of the angle between the light vector and the normal.
	// Negative means the light is on the other side of the surface.
	lightDotNormal, err := lightVec.Dot(normal)
	if err != nil {
		return core.Color{}, err
	}
	if lightDotNormal < 0 {
		return ambient, nil
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	fromLight, err := lightVec.Negate()
	if err != nil {
		return core.Color{}, err
	}
	reflectVec, err := Reflect(fromLight, normal)
	if err != nil {
		return core.Color{}, err
	}

	// The cosine of the angle between the reflection vector and the
	// eye. Non-positive means the reflection points away from the eye.
	reflectDotEye, err := reflectVec.Dot(eye)
	if err != nil {
		return core.Color{}, err
	}
	specular := core.Black()
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular), nil
}
