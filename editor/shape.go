// Package editor is the model behind the 2D sketch tool: lines and polygons
// that can be drawn, selected, dragged, scaled and recolored.
package editor

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape is either a *Line or a *Polygon. The set is closed; callers switch on
// the concrete type.
type Shape interface {
	Center() mgl64.Vec2
	Translate(d mgl64.Vec2)
	Scale(factor float64)
	Hit(p mgl64.Vec2, tolerance float64) bool
	setColor(c color.RGBA)
}

// Line is a straight segment from A to B.
type Line struct {
	A, B  mgl64.Vec2
	Color color.RGBA
}

func (l *Line) Center() mgl64.Vec2 {
	return l.A.Add(l.B).Mul(0.5)
}

func (l *Line) Translate(d mgl64.Vec2) {
	l.A = l.A.Add(d)
	l.B = l.B.Add(d)
}

// Scale stretches the line about its midpoint.
func (l *Line) Scale(factor float64) {
	c := l.Center()
	l.A = c.Add(l.A.Sub(c).Mul(factor))
	l.B = c.Add(l.B.Sub(c).Mul(factor))
}

// Hit reports whether p lies within tolerance of the segment.
func (l *Line) Hit(p mgl64.Vec2, tolerance float64) bool {
	return NearSegment(p, l.A, l.B, tolerance)
}

func (l *Line) setColor(c color.RGBA) { l.Color = c }

// Polygon is a closed outline through Points.
type Polygon struct {
	Points []mgl64.Vec2
	Color  color.RGBA
}

// Center is the mean of the polygon's points.
func (pg *Polygon) Center() mgl64.Vec2 {
	var sum mgl64.Vec2
	if len(pg.Points) == 0 {
		return sum
	}
	for _, p := range pg.Points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(pg.Points)))
}

func (pg *Polygon) Translate(d mgl64.Vec2) {
	for i := range pg.Points {
		pg.Points[i] = pg.Points[i].Add(d)
	}
}

func (pg *Polygon) Scale(factor float64) {
	c := pg.Center()
	for i, p := range pg.Points {
		pg.Points[i] = c.Add(p.Sub(c).Mul(factor))
	}
}

// Hit reports whether p is inside the polygon; tolerance is unused.
func (pg *Polygon) Hit(p mgl64.Vec2, _ float64) bool {
	return PointInPolygon(p, pg.Points)
}

func (pg *Polygon) setColor(c color.RGBA) { pg.Color = c }
