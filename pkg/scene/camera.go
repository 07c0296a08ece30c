package scene

import (
	"math"

	"github.com/ipersids/go-ray-tracer/pkg/core"
)

// Camera casts primary rays through a virtual canvas one world unit in
// front of the eye. It stores the inverse view transform so every
// per-pixel ray is two matrix applications and a normalize.
type Camera struct {
	Width  int
	Height int
	FOV    float64 // field of view in radians

	origin     core.Tuple
	inverse    core.Matrix4
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera builds a camera at from looking toward to with a +Y up
// vector, covering fov radians across the canvas's larger dimension.
func NewCamera(width, height int, fov float64, from, to core.Tuple) (*Camera, error) {
	view, err := core.ViewTransform(from, to, core.Vector(0, 1, 0))
	if err != nil {
		return nil, err
	}
	inverse, err := view.Inverse()
	if err != nil {
		return nil, err
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(width) / float64(height)
	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		Width:      width,
		Height:     height,
		FOV:        fov,
		origin:     inverse.MultiplyTuple(core.Point(0, 0, 0)),
		inverse:    inverse,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
		pixelSize:  halfWidth * 2 / float64(width),
	}, nil
}

// RayForPixel returns the world-space ray through the center of the
// given canvas pixel.
func (c *Camera) RayForPixel(px, py int) (core.Ray, error) {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The canvas sits at z=-1 in camera space, +x toward -x world.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	toPixel, err := pixel.Subtract(c.origin)
	if err != nil {
		return core.Ray{}, err
	}
	direction, err := toPixel.Normalize()
	if err != nil {
		return core.Ray{}, err
	}
	return core.NewRay(c.origin, direction)
}
