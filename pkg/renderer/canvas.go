package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"

	"github.com/ipersids/go-ray-tracer/pkg/core"
)

// ppmMaxColumn is the longest line the PPM writer emits, per the
// format's 70-character convention.
const ppmMaxColumn = 70

// Canvas is a row-major grid of colors, one per pixel.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a canvas with every pixel set to black.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// SetPixel writes a color at (x, y).
func (c *Canvas) SetPixel(x, y int, col core.Color) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.pixels[i] = col
	return nil
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) (core.Color, error) {
	i, err := c.index(x, y)
	if err != nil {
		return core.Color{}, err
	}
	return c.pixels[i], nil
}

func (c *Canvas) index(x, y int) (int, error) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return 0, fmt.Errorf("pixel (%d, %d) out of bounds (%dx%d)", x, y, c.Width, c.Height)
	}
	return y*c.Width + x, nil
}

// WritePPM serializes the canvas as ASCII PPM: a P3 header with the
// dimensions, max value 255 and a comment line, then the clamped RGB
// triplets. Lines wrap before exceeding 70 characters and after each
// full row of pixels.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "P3")
	fmt.Fprintf(bw, "%d %d\n", c.Width, c.Height)
	fmt.Fprintln(bw, "255")
	fmt.Fprintln(bw, "# rendered by go-ray-tracer")

	perRow := c.Width * 3
	lineLen := 0
	count := 0
	for _, px := range c.pixels {
		r, g, b := px.RGB8()
		for _, ch := range [3]uint8{r, g, b} {
			if count >= perRow {
				bw.WriteByte('\n')
				count = 0
				lineLen = 0
			}
			val := strconv.Itoa(int(ch))
			if lineLen+len(val)+1 > ppmMaxColumn {
				bw.WriteByte('\n')
				lineLen = 0
			}
			bw.WriteString(val)
			bw.WriteByte(' ')
			lineLen += len(val) + 1
			count++
		}
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// ToImage copies the canvas into an RGBA8 image with full alpha.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			px := c.pixels[y*c.Width+x]
			r, g, b := px.RGB8()
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
