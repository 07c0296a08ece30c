// Package loaders reads the external scene description: a JSON
// document listing the camera, ambient light, lights and objects to
// render. The parsed structure is handed to the scene package for
// assembly; nothing here touches the geometry core.
package loaders

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Scene description failures fall into two kinds, both fatal to the
// render: the file could not be read, or its content did not match the
// schema.
var (
	// ErrSceneIO marks a missing or unreadable scene file.
	ErrSceneIO = errors.New("scene file unreadable")

	// ErrSceneInvalid marks a malformed or schema-violating document.
	ErrSceneInvalid = errors.New("invalid scene description")
)

// SceneFile is the root of the scene description document.
type SceneFile struct {
	Camera  CameraDef   `json:"camera"`
	Ambient AmbientDef  `json:"ambient"`
	Lights  []LightDef  `json:"lights"`
	Objects []ObjectDef `json:"objects"`
}

// CameraDef places the eye and its look-at target; fov is in degrees.
type CameraDef struct {
	Position [3]float64 `json:"position"`
	Target   [3]float64 `json:"target"`
	FOV      float64    `json:"fov"`
}

// AmbientDef describes scene-wide ambient light.
type AmbientDef struct {
	Intensity float64 `json:"intensity"`
	Color     [3]int  `json:"color"`
}

// LightDef describes one light source. The only supported kind is
// "point". Color channels are 0-255 integers.
type LightDef struct {
	Type      string     `json:"type"`
	Position  [3]float64 `json:"position"`
	Intensity float64    `json:"intensity"`
	Color     [3]int     `json:"color"`
}

// ObjectDef describes one renderable object. The only supported kind
// is "sphere". Color channels are 0-255 integers.
type ObjectDef struct {
	Type     string      `json:"type"`
	Position [3]float64  `json:"position"`
	Radius   float64     `json:"radius"`
	Color    [3]int      `json:"color"`
	Material MaterialDef `json:"material"`
}

// MaterialDef is either {"type": "default"} or a "custom" material
// with explicit Phong coefficients.
type MaterialDef struct {
	Type      string  `json:"type"`
	Ambient   float64 `json:"ambient"`
	Diffuse   float64 `json:"diffuse"`
	Specular  float64 `json:"specular"`
	Shininess float64 `json:"shininess"`
}

// IsDefault reports whether the material entry asks for the documented
// default coefficients.
func (m MaterialDef) IsDefault() bool {
	return m.Type == "default"
}

// LoadScene reads and parses a scene description file. Read failures
// wrap ErrSceneIO; everything after the bytes are in hand wraps
// ErrSceneInvalid.
func LoadScene(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSceneIO, err)
	}
	return ParseScene(bytes.NewReader(data))
}

// ParseScene decodes and validates a scene description. Unknown
// fields, unknown type tags and out-of-range values all wrap
// ErrSceneInvalid.
func ParseScene(r io.Reader) (*SceneFile, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var scene SceneFile
	if err := dec.Decode(&scene); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSceneInvalid, err)
	}
	if err := scene.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSceneInvalid, err)
	}
	return &scene, nil
}

func (s *SceneFile) validate() error {
	if s.Camera.FOV <= 0 || s.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %v out of range (0, 180)", s.Camera.FOV)
	}
	if s.Camera.Position == s.Camera.Target {
		return errors.New("camera position and target coincide")
	}
	if s.Ambient.Intensity < 0 {
		return fmt.Errorf("ambient intensity %v is negative", s.Ambient.Intensity)
	}
	if err := validateChannels("ambient", s.Ambient.Color); err != nil {
		return err
	}

	if len(s.Lights) == 0 {
		return errors.New("scene has no lights")
	}
	for i, light := range s.Lights {
		if light.Type != "point" {
			return fmt.Errorf("lights[%d]: unknown light type %q", i, light.Type)
		}
		if light.Intensity < 0 {
			return fmt.Errorf("lights[%d]: intensity %v is negative", i, light.Intensity)
		}
		if err := validateChannels(fmt.Sprintf("lights[%d]", i), light.Color); err != nil {
			return err
		}
	}

	if len(s.Objects) == 0 {
		return errors.New("scene has no objects")
	}
	for i, obj := range s.Objects {
		if obj.Type != "sphere" {
			return fmt.Errorf("objects[%d]: unknown object type %q", i, obj.Type)
		}
		if obj.Radius <= 0 {
			return fmt.Errorf("objects[%d]: radius %v must be positive", i, obj.Radius)
		}
		if err := validateChannels(fmt.Sprintf("objects[%d]", i), obj.Color); err != nil {
			return err
		}
		if err := obj.Material.validate(i); err != nil {
			return err
		}
	}
	return nil
}

func (m MaterialDef) validate(index int) error {
	switch m.Type {
	case "default":
		return nil
	case "custom":
		for _, coeff := range []struct {
			name  string
			value float64
		}{
			{"ambient", m.Ambient},
			{"diffuse", m.Diffuse},
			{"specular", m.Specular},
			{"shininess", m.Shininess},
		} {
			if coeff.value < 0 {
				return fmt.Errorf("objects[%d]: material %s %v is negative", index, coeff.name, coeff.value)
			}
		}
		return nil
	default:
		return fmt.Errorf("objects[%d]: unknown material type %q", index, m.Type)
	}
}

func validateChannels(where string, color [3]int) error {
	for _, ch := range color {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("%s: color channel %d out of range [0, 255]", where, ch)
		}
	}
	return nil
}
