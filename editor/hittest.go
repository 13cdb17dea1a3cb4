package editor

import "github.com/go-gl/mathgl/mgl64"

// DistanceToSegment returns the distance from p to the closest point of the
// segment ab. A zero-length segment is treated as the point a.
func DistanceToSegment(p, a, b mgl64.Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Sub(a).Len()
	}
	u := p.Sub(a).Dot(ab) / lenSq
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	closest := a.Add(ab.Mul(u))
	return p.Sub(closest).Len()
}

// NearSegment reports whether p is strictly within tolerance of segment ab.
func NearSegment(p, a, b mgl64.Vec2, tolerance float64) bool {
	return DistanceToSegment(p, a, b) < tolerance
}

// PointInPolygon is the even-odd ray casting test. Polygons with fewer than
// three points contain nothing.
func PointInPolygon(p mgl64.Vec2, poly []mgl64.Vec2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	x, y := p[0], p[1]
	inside := false
	p1 := poly[0]
	for i := 1; i <= n; i++ {
		p2 := poly[i%n]
		if y > min(p1[1], p2[1]) && y <= max(p1[1], p2[1]) && x <= max(p1[0], p2[0]) {
			// The y range test excludes horizontal edges here.
			xinters := (y-p1[1])*(p2[0]-p1[0])/(p2[1]-p1[1]) + p1[0]
			if p1[0] == p2[0] || x <= xinters {
				inside = !inside
			}
		}
		p1 = p2
	}
	return inside
}
