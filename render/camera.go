// Package render turns a mesh into screen-space polygons: an orbit camera,
// simple lighting and painter's-algorithm ordering. It has no windowing
// dependencies; the ui package draws what it produces.
package render

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	degreesPerPixel = 0.5
	panPerPixel     = 0.01
	zoomStep        = 1.1
)

// Camera is an orbit camera: the model is scaled by Zoom, rotated about X, Y
// then Z (degrees) and moved by Translation before a perspective projection.
type Camera struct {
	XRot, YRot, ZRot float64
	Zoom             float64
	Translation      mgl64.Vec3

	FovY      float64 // degrees
	Near, Far float64
}

// NewCamera returns a camera looking at the origin from 5 units away.
func NewCamera() Camera {
	return Camera{
		Zoom:        1,
		Translation: mgl64.Vec3{0, 0, -5},
		FovY:        45,
		Near:        0.1,
		Far:         100,
	}
}

// Rotate turns the model by a mouse drag of (dx, dy) pixels.
func (c *Camera) Rotate(dx, dy float64) {
	c.YRot += dx * degreesPerPixel
	c.XRot += dy * degreesPerPixel
}

// Pan moves the model by a mouse drag of (dx, dy) pixels. Screen y grows
// downwards.
func (c *Camera) Pan(dx, dy float64) {
	c.Translation[0] += dx * panPerPixel
	c.Translation[1] -= dy * panPerPixel
}

func (c *Camera) ZoomIn() {
	c.Zoom *= zoomStep
}

func (c *Camera) ZoomOut() {
	c.Zoom /= zoomStep
}

// Rotation returns the model rotation without scale or translation.
func (c Camera) Rotation() mgl64.Mat4 {
	rx := mgl64.HomogRotate3DX(mgl64.DegToRad(c.XRot))
	ry := mgl64.HomogRotate3DY(mgl64.DegToRad(c.YRot))
	rz := mgl64.HomogRotate3DZ(mgl64.DegToRad(c.ZRot))
	return rx.Mul4(ry).Mul4(rz)
}

// ModelView maps model coordinates to eye coordinates.
func (c Camera) ModelView() mgl64.Mat4 {
	t := mgl64.Translate3D(c.Translation[0], c.Translation[1], c.Translation[2])
	s := mgl64.Scale3D(c.Zoom, c.Zoom, c.Zoom)
	return t.Mul4(c.Rotation()).Mul4(s)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Projector caches the camera matrices for one frame.
type Projector struct {
	modelView mgl64.Mat4
	proj      mgl64.Mat4
	rotation  mgl64.Mat4
	near      float64
	width     float64
	height    float64
}

// Projector prepares projection into a width x height pixel viewport.
func (c Camera) Projector(width, height int) *Projector {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return &Projector{
		modelView: c.ModelView(),
		proj:      c.Projection(aspect),
		rotation:  c.Rotation(),
		near:      c.Near,
		width:     float64(width),
		height:    float64(height),
	}
}

// Project returns the pixel position of p and its distance in front of the
// eye. ok is false for points closer than the near plane.
func (pr *Projector) Project(p mgl64.Vec3) (screen mgl64.Vec2, depth float64, ok bool) {
	eye := pr.modelView.Mul4x1(p.Vec4(1))
	depth = -eye.Z()
	if depth < pr.near {
		return screen, depth, false
	}
	clip := pr.proj.Mul4x1(eye)
	ndc := clip.Vec3().Mul(1 / clip.W())
	screen = mgl64.Vec2{
		(ndc.X() + 1) / 2 * pr.width,
		(1 - ndc.Y()) / 2 * pr.height,
	}
	return screen, depth, true
}

// Direction rotates a direction vector (such as a normal) into eye space.
func (pr *Projector) Direction(n mgl64.Vec3) mgl64.Vec3 {
	return pr.rotation.Mul4x1(n.Vec4(0)).Vec3()
}
