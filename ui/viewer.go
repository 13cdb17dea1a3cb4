package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/meshlab"
	"github.com/smasonuk/meshlab/config"
	"github.com/smasonuk/meshlab/render"
	"github.com/smasonuk/meshlab/watch"
)

const (
	minIterations = 1
	maxIterations = 50
	minLambda     = 0.1
	maxLambda     = 0.9
	lambdaStep    = 0.1
)

var viewerBackground = color.RGBA{R: 26, G: 26, B: 26, A: 255}

// Viewer shows a mesh and animates Laplacian smoothing on it.
//
//	S start smoothing, X stop, W wireframe, L lighting, R reset view,
//	O reload from disk, Up/Down iterations, Left/Right lambda.
//	Left drag rotates, right drag pans, the wheel zooms.
type Viewer struct {
	path   string
	format meshlab.Format
	anim   *meshlab.Animator
	watch  *watch.Watcher

	width, height int
	cam           render.Camera
	light         render.Light
	wireframe     bool

	iterations int
	lambda     float64
	tick       time.Duration
	lastStep   time.Time
	label      string

	dragging     bool
	lastX, lastY int
	status       string
}

// NewViewer loads the mesh at path. A zero format is taken from the file
// extension.
func NewViewer(path string, format meshlab.Format, cfg config.Config) (*Viewer, error) {
	if format == 0 {
		var err error
		if format, err = meshlab.FormatFromPath(path); err != nil {
			return nil, err
		}
	}
	m, err := meshlab.LoadFile(path, format)
	if err != nil {
		return nil, err
	}
	slog.Info("mesh loaded", "path", path, "vertices", m.VertexCount(), "faces", m.FaceCount())

	v := &Viewer{
		path:       path,
		format:     format,
		anim:       meshlab.NewAnimator(m),
		width:      cfg.Viewer.Width,
		height:     cfg.Viewer.Height,
		cam:        render.NewCamera(),
		light:      render.DefaultLight(),
		wireframe:  cfg.Viewer.Wireframe,
		iterations: clampIterations(cfg.Smoothing.Iterations),
		lambda:     cfg.Smoothing.Lambda,
		tick:       cfg.Smoothing.Tick(),
	}
	v.light.Enabled = cfg.Viewer.Lighting
	v.anim.OnStep = func(i, n int) {
		v.label = fmt.Sprintf("Iteration: %d/%d", i, n)
	}
	v.resetLabel()
	return v, nil
}

// Watch reloads the mesh whenever its file changes.
func (v *Viewer) Watch() error {
	w, err := watch.New(v.path, v.format)
	if err != nil {
		return err
	}
	v.watch = w
	return nil
}

// Close stops any file watching.
func (v *Viewer) Close() error {
	if v.watch == nil {
		return nil
	}
	return v.watch.Close()
}

func (v *Viewer) resetLabel() {
	v.label = fmt.Sprintf("Iteration: 0/%d", v.iterations)
}

func (v *Viewer) setMesh(m *meshlab.Mesh) {
	v.anim.SetMesh(m)
	v.resetLabel()
}

func (v *Viewer) reload() {
	m, err := meshlab.LoadFile(v.path, v.format)
	if err != nil {
		slog.Error("reload failed", "path", v.path, "err", err)
		v.status = "reload failed"
		return
	}
	v.setMesh(m)
	v.status = "reloaded"
}

func (v *Viewer) Update() error {
	v.handleKeys()
	v.handleMouse()

	if v.watch != nil {
		if m := v.watch.Take(); m != nil {
			v.setMesh(m)
			v.status = "file changed, reloaded"
		}
	}

	if v.anim.State() == meshlab.Running && time.Since(v.lastStep) >= v.tick {
		v.lastStep = time.Now()
		if !v.anim.Tick() {
			if err := v.anim.Err(); err != nil {
				v.status = err.Error()
			}
		}
	}
	return nil
}

func (v *Viewer) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		v.anim.Start(v.iterations, v.lambda)
		v.resetLabel()
		v.lastStep = time.Time{}
		v.status = ""
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		v.anim.Stop()
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		v.wireframe = !v.wireframe
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		v.light.Enabled = !v.light.Enabled
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.cam = render.NewCamera()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		v.reload()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		v.iterations = clampIterations(v.iterations + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		v.iterations = clampIterations(v.iterations - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.lambda = stepLambda(v.lambda, lambdaStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.lambda = stepLambda(v.lambda, -lambdaStep)
	}
}

func clampIterations(n int) int {
	return min(max(n, minIterations), maxIterations)
}

func stepLambda(l, d float64) float64 {
	l = math.Round((l+d)*10) / 10
	return math.Max(minLambda, math.Min(maxLambda, l))
}

func (v *Viewer) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		v.dragging = true
		v.lastX, v.lastY = x, y
	}
	if v.dragging {
		dx, dy := float64(x-v.lastX), float64(y-v.lastY)
		switch {
		case left:
			v.cam.Rotate(dx, dy)
		case right:
			v.cam.Pan(dx, dy)
		default:
			v.dragging = false
		}
		v.lastX, v.lastY = x, y
	}

	if _, wy := ebiten.Wheel(); wy > 0 {
		v.cam.ZoomIn()
	} else if wy < 0 {
		v.cam.ZoomOut()
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(viewerBackground)

	polys := render.BuildFrame(v.anim.Mesh(), v.cam, v.width, v.height, render.FrameOptions{
		Light:     v.light,
		Base:      render.DefaultBase,
		Wireframe: v.wireframe,
	})
	for _, p := range polys {
		if v.wireframe {
			drawPolygonOutline(screen, p.X, p.Y, 1, p.Fill)
		} else {
			fillConvexPolygon(screen, p.X, p.Y, p.Fill)
		}
	}

	hud := fmt.Sprintf("%s  iterations %d  lambda %.1f  [%s]\n", v.label, v.iterations, v.lambda, v.anim.State())
	if v.status != "" {
		hud += v.status + "\n"
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

// Run opens the viewer window and blocks until it is closed.
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowTitle("meshlab - " + v.path)
	return ebiten.RunGame(v)
}
