// Package material defines surface reflectance parameters and the
// Phong illumination model used to shade hit points.
package material

import "github.com/ipersids/go-ray-tracer/pkg/core"

// Material holds a surface color and the four Phong coefficients.
type Material struct {
	Color     core.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// Default returns the standard material: white with ambient 0.1,
// diffuse 0.9, specular 0.9 and shininess 200.
func Default() Material {
	return Material{
		Color:     core.White(),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}
