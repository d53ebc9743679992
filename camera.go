package pancam

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MinDistance is the closest the camera may get to the content plane.
const MinDistance = 0.1

// Plane is the fixed content rectangle, centered on the origin, in the same
// world units as the camera position.
type Plane struct {
	Width, Height float64
}

// Geometry is the camera state the clamping functions work from. FOV is the
// vertical field of view in radians.
//
// Aspect and Position.Z must be positive and finite, and FOV within (0, π).
// Nothing here validates them: other values propagate NaN or Inf.
type Geometry struct {
	FOV      float64
	Aspect   float64
	Position Vec3
}

// ViewportExtent returns the world-space size visible through a camera with
// the given vertical field of view and aspect ratio at distance z.
func ViewportExtent(fov, aspect, z float64) (width, height float64) {
	t := math.Tan(fov / 2)
	return 2 * aspect * z * t, 2 * z * t
}

// MaxDistance returns the largest distance at which the viewport still fits
// inside plane on both axes.
func MaxDistance(fov, aspect float64, plane Plane) float64 {
	t := math.Tan(fov / 2)
	return math.Min(plane.Width/(2*aspect*t), plane.Height/(2*t))
}

// clampAxis keeps a viewport of size view centered at v inside [-plane/2,
// plane/2]. If the viewport is larger than the plane the interval is
// inverted and the camera is centered instead.
func clampAxis(v, plane, view float64) float64 {
	lo := -plane/2 + view/2
	hi := plane/2 - view/2
	if lo > hi {
		return 0
	}
	return math.Max(lo, math.Min(v, hi))
}

// clampDistance restricts z to [MinDistance, zMax]. When even MinDistance
// does not fit, MinDistance wins and the pan clamp centers the camera.
func clampDistance(z, zMax float64) float64 {
	if zMax < MinDistance {
		return MinDistance
	}
	return math.Max(MinDistance, math.Min(z, zMax))
}

// Pan returns the camera position moved to (x, y) and clamped so the
// viewport at the current distance stays inside plane. Z is unchanged.
func Pan(g Geometry, plane Plane, x, y float64) Vec3 {
	w, h := ViewportExtent(g.FOV, g.Aspect, g.Position.Z)
	return Vec3{
		X: clampAxis(x, plane.Width, w),
		Y: clampAxis(y, plane.Height, h),
		Z: g.Position.Z,
	}
}

// Zoom returns the camera position moved to distance z, clamped to
// [MinDistance, MaxDistance]. The current x/y are re-clamped against the
// viewport at the new distance, since zooming out narrows the pan range.
// The three components must be applied together.
func Zoom(g Geometry, plane Plane, z float64) Vec3 {
	z = clampDistance(z, MaxDistance(g.FOV, g.Aspect, plane))
	w, h := ViewportExtent(g.FOV, g.Aspect, z)
	return Vec3{
		X: clampAxis(g.Position.X, plane.Width, w),
		Y: clampAxis(g.Position.Y, plane.Height, h),
		Z: z,
	}
}

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is a perspective camera looking straight down at a content plane.
// Every mutation goes through Pan or Zoom, so the position it reports is
// always in bounds.
type Camera struct {
	fov    float64
	aspect float64
	plane  Plane
	pos    Vec3

	scrollTween *scrollAnim
	zoomTween   *gween.Tween
}

// NewCamera creates a camera and clamps pos into plane. fov is in radians.
func NewCamera(fov, aspect float64, plane Plane, pos Vec3) *Camera {
	c := &Camera{fov: fov, aspect: aspect, plane: plane, pos: pos}
	c.pos = Zoom(c.Geometry(), plane, pos.Z)
	return c
}

// Position returns the current camera position.
func (c *Camera) Position() Vec3 {
	return c.pos
}

// Geometry returns the camera's field of view, aspect and position.
func (c *Camera) Geometry() Geometry {
	return Geometry{FOV: c.fov, Aspect: c.aspect, Position: c.pos}
}

// Plane returns the content plane.
func (c *Camera) Plane() Plane {
	return c.plane
}

// ViewportExtent returns the visible size at the current distance.
func (c *Camera) ViewportExtent() (width, height float64) {
	return ViewportExtent(c.fov, c.aspect, c.pos.Z)
}

// MaxDistance returns the zoom-out limit for the current geometry.
func (c *Camera) MaxDistance() float64 {
	return MaxDistance(c.fov, c.aspect, c.plane)
}

// Pan moves the camera to (x, y), clamped. It cancels a running ScrollTo.
func (c *Camera) Pan(x, y float64) {
	c.scrollTween = nil
	c.pos = Pan(c.Geometry(), c.plane, x, y)
}

// PanBy moves the camera by (dx, dy) world units, clamped.
func (c *Camera) PanBy(dx, dy float64) {
	c.Pan(c.pos.X+dx, c.pos.Y+dy)
}

// PanByNDC moves the camera so that content under a pointer follows a drag
// of (dx, dy) normalized device units.
func (c *Camera) PanByNDC(dx, dy float64) {
	w, h := c.ViewportExtent()
	c.PanBy(-dx*w/2, -dy*h/2)
}

// Zoom moves the camera to distance z, clamped, and re-clamps x/y. It
// cancels a running ZoomTo.
func (c *Camera) Zoom(z float64) {
	c.zoomTween = nil
	c.pos = Zoom(c.Geometry(), c.plane, z)
}

// ZoomBy multiplies the distance by factor. Factors below 1 move closer.
func (c *Camera) ZoomBy(factor float64) {
	c.Zoom(c.pos.Z * factor)
}

// SetAspect updates the aspect ratio, e.g. after a resize, and re-clamps the
// position for the new viewport.
func (c *Camera) SetAspect(aspect float64) {
	c.aspect = aspect
	c.pos = Zoom(c.Geometry(), c.plane, c.pos.Z)
}

// SetPlane replaces the content plane and re-clamps the position.
func (c *Camera) SetPlane(plane Plane) {
	c.plane = plane
	c.pos = Zoom(c.Geometry(), plane, c.pos.Z)
}

// NDCToWorld maps a normalized device position to the point on the plane
// under it.
func (c *Camera) NDCToWorld(ndc Vec2) Vec2 {
	w, h := c.ViewportExtent()
	return Vec2{X: c.pos.X + ndc.X*w/2, Y: c.pos.Y + ndc.Y*h/2}
}

// VisibleBounds returns the world-space rectangle seen by the camera. X and Y
// are its minimum corner.
func (c *Camera) VisibleBounds() Rect {
	w, h := c.ViewportExtent()
	return Rect{X: c.pos.X - w/2, Y: c.pos.Y - h/2, Width: w, Height: h}
}

// ScrollTo animates the camera to (x, y) over duration seconds. Every step is
// clamped, so a target outside the plane stops at the edge.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.pos.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.pos.Y), float32(y), duration, easeFn),
	}
}

// ZoomTo animates the camera distance to z over duration seconds.
func (c *Camera) ZoomTo(z float64, duration float32, easeFn ease.TweenFunc) {
	c.zoomTween = gween.New(float32(c.pos.Z), float32(z), duration, easeFn)
}

// Animating reports whether a ScrollTo or ZoomTo is in progress.
func (c *Camera) Animating() bool {
	return c.scrollTween != nil || c.zoomTween != nil
}

// Update advances running animations by dt seconds and reports whether the
// position changed.
func (c *Camera) Update(dt float32) bool {
	prev := c.pos

	if c.scrollTween != nil {
		x, y := c.pos.X, c.pos.Y
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			x = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			y = float64(val)
			c.scrollTween.doneY = done
		}
		c.pos = Pan(c.Geometry(), c.plane, x, y)
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.zoomTween != nil {
		val, done := c.zoomTween.Update(dt)
		c.pos = Zoom(c.Geometry(), c.plane, float64(val))
		if done {
			c.zoomTween = nil
		}
	}

	return c.pos != prev
}
