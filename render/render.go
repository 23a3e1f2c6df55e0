// Package render draws ballpit frames into in-memory images.
//
// It reads the world after each step and never mutates it. Bodies are drawn
// as polygon outlines, filled while they are in contact, and an FPS readout
// is printed in the top-left corner.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gekko3d/ballpit"
)

const (
	minSides = 20
	maxSides = 255
)

type Renderer struct {
	Background  color.RGBA
	TextColor   color.RGBA
	StrokeWidth float64
	ShowFPS     bool

	raster *vector.Rasterizer
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background:  color.RGBA{0, 0, 0, 255},
		TextColor:   color.RGBA{255, 255, 255, 255},
		StrokeWidth: 2,
		ShowFPS:     true,
	}
}

// Sides is the polygon side count used for a circle of radius r.
func Sides(r float64) int {
	n := int(r / 2)
	if n < minSides {
		return minSides
	}
	if n > maxSides {
		return maxSides
	}
	return n
}

// Draw clears dst and draws every body. inContact may be nil.
func (r *Renderer) Draw(dst *image.RGBA, bodies []ballpit.Body, inContact func(int) bool, fps float64) {
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, image.NewUniform(r.Background), image.Point{}, draw.Src)

	if r.raster == nil {
		r.raster = vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	}

	for i := range bodies {
		b := &bodies[i]
		filled := inContact != nil && inContact(i)
		r.circle(dst, b.Pos.X(), b.Pos.Y(), b.Radius, Sides(b.Radius), b.Color, filled)
	}

	if r.ShowFPS {
		r.text(dst, 8, 16, fmt.Sprintf("FPS: %.0f", fps))
	}
}

func (r *Renderer) circle(dst *image.RGBA, cx, cy, radius float64, sides int, c color.RGBA, filled bool) {
	bounds := dst.Bounds()
	r.raster.Reset(bounds.Dx(), bounds.Dy())

	polygon(r.raster, cx, cy, radius, sides, false)
	if !filled {
		inner := radius - r.StrokeWidth
		if inner > 0 {
			// Reverse winding cuts the interior out, leaving a ring.
			polygon(r.raster, cx, cy, inner, sides, true)
		}
	}
	r.raster.Draw(dst, bounds, image.NewUniform(c), image.Point{})
}

func polygon(z *vector.Rasterizer, cx, cy, radius float64, sides int, reverse bool) {
	step := 2 * math.Pi / float64(sides)
	if reverse {
		step = -step
	}
	for k := 0; k < sides; k++ {
		sin, cos := math.Sincos(float64(k) * step)
		x, y := float32(cx+radius*cos), float32(cy+radius*sin)
		if k == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

func (r *Renderer) text(dst *image.RGBA, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(r.TextColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return f.Close()
}
