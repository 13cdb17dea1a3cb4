package ui

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/meshlab/config"
	"github.com/smasonuk/meshlab/editor"
)

const (
	scaleUp   = 1.2
	scaleDown = 0.8
)

var (
	sketchBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	selectedColor    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	outlineColor     = color.RGBA{A: 255}
)

var colorKeys = map[ebiten.Key]rune{
	ebiten.Key1: '1', ebiten.Key2: '2', ebiten.Key3: '3',
	ebiten.Key4: '4', ebiten.Key5: '5', ebiten.Key6: '6',
	ebiten.Key7: '7', ebiten.Key8: '8', ebiten.Key9: '9',
}

// Sketch is the 2D drawing tool.
//
//	L line, P polygon, S select, Enter closes a polygon, C clears.
//	1-9 pick a color (and recolor the selection), Q/E grow and shrink it.
type Sketch struct {
	ed            *editor.Editor
	width, height int
}

func NewSketch(cfg config.Config) *Sketch {
	return &Sketch{
		ed: editor.New(editor.Options{
			HitTolerance:   cfg.Editor.HitTolerance,
			CloseTolerance: cfg.Editor.CloseTolerance,
		}),
		width:  cfg.Editor.Width,
		height: cfg.Editor.Height,
	}
}

func (s *Sketch) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		s.ed.SetMode(editor.ModeLine)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.ed.SetMode(editor.ModePolygon)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.ed.SetMode(editor.ModeSelect)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.ed.ClosePolygon()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.ed.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		s.ed.ScaleSelected(scaleUp)
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		s.ed.ScaleSelected(scaleDown)
	}
	for k, r := range colorKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.ed.SetColor(r)
		}
	}

	x, y := ebiten.CursorPosition()
	p := mgl64.Vec2{float64(x), float64(y)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.ed.Press(p)
	}
	s.ed.Move(p)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.ed.Release(p)
	}
	return nil
}

func (s *Sketch) Draw(screen *ebiten.Image) {
	screen.Fill(sketchBackground)

	for _, sh := range s.ed.Shapes() {
		clr := shapeColor(sh)
		if sh == s.ed.Selected() {
			clr = selectedColor
		}
		switch sh := sh.(type) {
		case *editor.Line:
			vector.StrokeLine(screen, float32(sh.A[0]), float32(sh.A[1]), float32(sh.B[0]), float32(sh.B[1]), 1, clr, true)
		case *editor.Polygon:
			xp, yp := split(sh.Points)
			fillPolygon(screen, xp, yp, clr)
			drawPolygonOutline(screen, xp, yp, 1, outlineColor)
		}
	}

	pending := s.ed.Pending()
	if len(pending) > 0 {
		pts := pending
		if cur, ok := s.ed.Cursor(); ok {
			pts = append(pts[:len(pts):len(pts)], cur)
		}
		xp, yp := split(pts)
		strokePolyline(screen, xp, yp, false, 1, s.ed.Color())
		for i := range pending {
			vector.DrawFilledRect(screen, xp[i]-1, yp[i]-1, 3, 3, s.ed.Color(), false)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("mode: %s  shapes: %d", s.ed.Mode(), len(s.ed.Shapes())))
}

func shapeColor(sh editor.Shape) color.RGBA {
	switch sh := sh.(type) {
	case *editor.Line:
		return sh.Color
	case *editor.Polygon:
		return sh.Color
	}
	return outlineColor
}

func split(pts []mgl64.Vec2) (xp, yp []float32) {
	xp = make([]float32, len(pts))
	yp = make([]float32, len(pts))
	for i, p := range pts {
		xp[i] = float32(p[0])
		yp[i] = float32(p[1])
	}
	return xp, yp
}

func (s *Sketch) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}

// Run opens the editor window and blocks until it is closed.
func (s *Sketch) Run() error {
	ebiten.SetWindowSize(s.width, s.height)
	ebiten.SetWindowTitle("meshlab sketch")
	return ebiten.RunGame(s)
}
