package scene

import (
	"math"

	"github.com/ipersids/go-ray-tracer/pkg/core"
	"github.com/ipersids/go-ray-tracer/pkg/geometry"
	"github.com/ipersids/go-ray-tracer/pkg/loaders"
	"github.com/ipersids/go-ray-tracer/pkg/material"
)

// Build assembles a world and a camera from a parsed scene
// description. Colors arrive as 0-255 integers and are normalized to
// floats here; the first light in the description becomes the world
// light.
func Build(desc *loaders.SceneFile, width, height int) (*World, *Camera, error) {
	camera, err := NewCamera(
		width, height,
		desc.Camera.FOV*math.Pi/180,
		core.Point(desc.Camera.Position[0], desc.Camera.Position[1], desc.Camera.Position[2]),
		core.Point(desc.Camera.Target[0], desc.Camera.Target[1], desc.Camera.Target[2]),
	)
	if err != nil {
		return nil, nil, err
	}

	lightDef := desc.Lights[0]
	light, err := material.NewPointLight(
		core.Point(lightDef.Position[0], lightDef.Position[1], lightDef.Position[2]),
		normalizeColor(lightDef.Color),
	)
	if err != nil {
		return nil, nil, err
	}

	objects := make([]geometry.Shape, 0, len(desc.Objects))
	for _, def := range desc.Objects {
		sphere := geometry.NewSphere()
		sphere.SetTransform(
			core.Translation(def.Position[0], def.Position[1], def.Position[2]).
				Multiply(core.Scaling(def.Radius, def.Radius, def.Radius)),
		)

		m := material.Default()
		if !def.Material.IsDefault() {
			m.Ambient = def.Material.Ambient
			m.Diffuse = def.Material.Diffuse
			m.Specular = def.Material.Specular
			m.Shininess = def.Material.Shininess
		}
		m.Color = normalizeColor(def.Color)
		sphere.SetMaterial(m)

		objects = append(objects, sphere)
	}

	world := &World{Objects: objects, Light: light}
	return world, camera, nil
}

// normalizeColor converts 0-255 integer channels to 0.0-1.0 floats.
func normalizeColor(c [3]int) core.Color {
	return core.NewColor(
		float64(c[0])/255.0,
		float64(c[1])/255.0,
		float64(c[2])/255.0,
	)
}
