package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Environment supplies the radiance seen by rays that leave the scene
type Environment interface {
	Color(ray core.Ray) core.Vec3
}

// GradientEnvironment blends linearly from Bottom (straight down) to Top (straight up)
type GradientEnvironment struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewGradientEnvironment creates a vertical sky gradient
func NewGradientEnvironment(bottom, top core.Vec3) *GradientEnvironment {
	return &GradientEnvironment{Bottom: bottom, Top: top}
}

// NewSolidEnvironment returns the same color in every direction
func NewSolidEnvironment(color core.Vec3) *GradientEnvironment {
	return &GradientEnvironment{Bottom: color, Top: color}
}

// NewDaySky is the classic white-to-blue sky
func NewDaySky() *GradientEnvironment {
	return NewGradientEnvironment(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0))
}

// Color interpolates on the y component of the unit ray direction
func (g *GradientEnvironment) Color(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}
