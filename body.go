package ballpit

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidRadius = errors.New("body radius must be positive and finite")

// Body is a circular point mass. InvMass is derived from the radius, so larger
// bodies are heavier.
type Body struct {
	Pos     mgl64.Vec2
	Vel     mgl64.Vec2
	Acc     mgl64.Vec2
	Radius  float64
	InvMass float64
	Color   color.RGBA
}

// NewBody validates the radius before deriving the inverse mass.
func NewBody(pos, vel, acc mgl64.Vec2, radius float64, c color.RGBA) (Body, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Body{}, fmt.Errorf("new body with radius %v: %w", radius, ErrInvalidRadius)
	}
	return Body{
		Pos:     pos,
		Vel:     vel,
		Acc:     acc,
		Radius:  radius,
		InvMass: 1.0 / radius,
		Color:   c,
	}, nil
}

func (b *Body) Mass() float64 {
	return 1.0 / b.InvMass
}

func (b *Body) Momentum() mgl64.Vec2 {
	return b.Vel.Mul(b.Mass())
}

// Min and Max return the extent of the body's bounding interval on axis (0 = x, 1 = y).
func (b *Body) Min(axis int) float64 {
	return b.Pos[axis] - b.Radius
}

func (b *Body) Max(axis int) float64 {
	return b.Pos[axis] + b.Radius
}
