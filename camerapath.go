package roamterrain

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CameraPath drives a scripted camera position and height over a
// sequence of legs, each a gween tween from the camera's position at
// the start of the leg to a target over a fixed duration: one tween per
// axis plus a completion flag, extended to a third axis (height/altitude)
// since a terrain viewer's camera moves in 3D.
//
// CameraPath exists to drive DistToCamera deterministically
// across many frames in tests and demos, without needing a real input
// device or 3D camera implementation.
type CameraPath struct {
	x, y, z float64

	legs    []pathLeg
	current int

	tweenX, tweenY, tweenZ *gween.Tween
	elapsed                float32
}

type pathLeg struct {
	toX, toY, toZ float64
	duration      float32
	easeFn        ease.TweenFunc
}

// NewCameraPath creates a path starting at the given position with no
// legs queued; use AddLeg to script a trajectory.
func NewCameraPath(x, y, z float64) *CameraPath {
	return &CameraPath{x: x, y: y, z: z}
}

// AddLeg appends a leg that moves from wherever the path ends up after
// the previous leg to (toX, toY, toZ) over duration seconds using
// easeFn. Legs play in the order added.
func (c *CameraPath) AddLeg(toX, toY, toZ float64, duration float32, easeFn ease.TweenFunc) {
	c.legs = append(c.legs, pathLeg{toX: toX, toY: toY, toZ: toZ, duration: duration, easeFn: easeFn})
}

// Advance steps the path forward dt seconds, starting the next queued
// leg's tweens if the current one has finished (or none has started
// yet). Returns false once every leg has completed and no further
// motion occurs on subsequent calls.
func (c *CameraPath) Advance(dt float32) bool {
	if c.tweenX == nil {
		if !c.startNextLeg() {
			return false
		}
	}

	c.elapsed += dt
	vx, doneX := c.tweenX.Update(dt)
	vy, doneY := c.tweenY.Update(dt)
	vz, doneZ := c.tweenZ.Update(dt)
	c.x, c.y, c.z = float64(vx), float64(vy), float64(vz)

	if doneX && doneY && doneZ {
		c.tweenX, c.tweenY, c.tweenZ = nil, nil, nil
		c.current++
	}
	return true
}

func (c *CameraPath) startNextLeg() bool {
	if c.current >= len(c.legs) {
		return false
	}
	leg := c.legs[c.current]
	c.tweenX = gween.New(float32(c.x), float32(leg.toX), leg.duration, leg.easeFn)
	c.tweenY = gween.New(float32(c.y), float32(leg.toY), leg.duration, leg.easeFn)
	c.tweenZ = gween.New(float32(c.z), float32(leg.toZ), leg.duration, leg.easeFn)
	return true
}

// Position returns the camera's current world position.
func (c *CameraPath) Position() (x, y, z float64) {
	return c.x, c.y, c.z
}

// Done reports whether every leg has finished playing.
func (c *CameraPath) Done() bool {
	return c.current >= len(c.legs) && c.tweenX == nil
}

// DistToCamera returns the Euclidean distance from the path's current
// position to the terrain-plane point (x, y, 0). It has the
// DistToCameraFunc shape, so the method value can be registered as
// Callbacks.DistToCamera.
func (c *CameraPath) DistToCamera(x, y float64) float64 {
	dx := x - c.x
	dy := y - c.y
	d := dx*dx + dy*dy + c.z*c.z
	if d <= 0 {
		return 1e-6
	}
	return math.Sqrt(d)
}
