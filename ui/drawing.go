// Package ui holds the ebiten front ends: the mesh viewer and the sketch
// editor.
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// paint tints generated vertices with clr and samples the white pixel.
func paint(vertices []ebiten.Vertex, clr color.RGBA) {
	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
	}
}

// fillConvexPolygon fills a convex polygon as a triangle fan from its first
// corner. Mesh faces are drawn this way.
func fillConvexPolygon(screen *ebiten.Image, xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	indices := make([]uint16, 0, (len(xp)-2)*3)
	for i := 2; i < len(xp); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	vertices := make([]ebiten.Vertex, len(xp))
	for i := range xp {
		vertices[i].DstX = xp[i]
		vertices[i].DstY = yp[i]
	}
	paint(vertices, clr)

	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// fillPolygon fills any simple or self-intersecting polygon with the
// even-odd rule, matching how the editor hit-tests polygons.
func fillPolygon(screen *ebiten.Image, xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}
	path := tracePath(xp, yp, true)
	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	paint(vertices, clr)
	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.EvenOdd,
	})
}

// strokePolyline draws the segments through the given points, and the
// closing segment too when closed is set.
func strokePolyline(screen *ebiten.Image, xp, yp []float32, closed bool, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}
	path := tracePath(xp, yp, closed)
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    strokeWidth,
		LineJoin: vector.LineJoinRound,
	})
	paint(vertices, clr)
	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func drawPolygonOutline(screen *ebiten.Image, xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	strokePolyline(screen, xp, yp, true, strokeWidth, clr)
}

func tracePath(xp, yp []float32, closed bool) *vector.Path {
	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	if closed {
		path.Close()
	}
	return &path
}
