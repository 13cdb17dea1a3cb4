package editor

import (
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// Mode is the active editor tool.
type Mode int

const (
	ModeNone Mode = iota
	ModeLine
	ModePolygon
	ModeSelect
)

func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModePolygon:
		return "polygon"
	case ModeSelect:
		return "select"
	default:
		return "none"
	}
}

// Palette maps the keys '1' to '9' to drawing colors.
var Palette = map[rune]color.RGBA{
	'1': {0, 0, 0, 255},
	'2': {255, 0, 0, 255},
	'3': {0, 255, 0, 255},
	'4': {0, 0, 255, 255},
	'5': {255, 255, 0, 255},
	'6': {128, 0, 128, 255},
	'7': {0, 255, 255, 255},
	'8': {255, 255, 255, 255},
	'9': {255, 165, 0, 255},
}

// Options are the pixel tolerances used when clicking.
type Options struct {
	// HitTolerance is how close a click must be to a line to select it.
	HitTolerance float64
	// CloseTolerance is how close a click must be to the first point of a
	// polygon under construction to close it.
	CloseTolerance float64
}

// DefaultOptions returns a 6 px hit tolerance and a 10 px close tolerance.
func DefaultOptions() Options {
	return Options{HitTolerance: 6, CloseTolerance: 10}
}

// Editor holds everything the sketch tool knows: the finished shapes, the one
// being drawn, the current color and the selection. It is driven by pointer
// events in screen coordinates.
type Editor struct {
	opts   Options
	mode   Mode
	color  color.RGBA
	shapes []Shape

	pending   []mgl64.Vec2
	cursor    mgl64.Vec2
	hasCursor bool

	selected   Shape
	dragging   bool
	dragOffset mgl64.Vec2
}

// New returns an empty editor with no tool selected, drawing in black.
func New(opts Options) *Editor {
	return &Editor{
		opts:  opts,
		color: Palette['1'],
	}
}

func (e *Editor) Mode() Mode            { return e.mode }
func (e *Editor) Color() color.RGBA     { return e.color }
func (e *Editor) Shapes() []Shape       { return e.shapes }
func (e *Editor) Selected() Shape       { return e.selected }
func (e *Editor) Pending() []mgl64.Vec2 { return e.pending }
func (e *Editor) Dragging() bool        { return e.dragging }

// Cursor is the last pointer position seen while a shape is being drawn.
func (e *Editor) Cursor() (mgl64.Vec2, bool) {
	return e.cursor, e.hasCursor
}

// SetMode switches tools. Any half-drawn shape is discarded, and leaving
// select mode drops the selection.
func (e *Editor) SetMode(m Mode) {
	if m == e.mode {
		return
	}
	e.pending = nil
	e.hasCursor = false
	e.dragging = false
	if m != ModeSelect {
		e.selected = nil
	}
	e.mode = m
	slog.Debug("editor mode", "mode", m)
}

// Press handles a primary button press at p. Lines take two clicks, one per
// end. Polygons take a click per point and close on a click near the first.
func (e *Editor) Press(p mgl64.Vec2) {
	switch e.mode {
	case ModeLine:
		if len(e.pending) == 1 {
			e.add(&Line{A: e.pending[0], B: p, Color: e.color})
			e.pending = nil
			e.hasCursor = false
			return
		}
		e.pending = []mgl64.Vec2{p}
		e.cursor, e.hasCursor = p, true
	case ModePolygon:
		if len(e.pending) >= 3 && p.Sub(e.pending[0]).Len() < e.opts.CloseTolerance {
			e.ClosePolygon()
			return
		}
		e.pending = append(e.pending, p)
		e.cursor, e.hasCursor = p, true
	case ModeSelect:
		e.selected = e.ShapeAt(p)
		if e.selected != nil {
			e.dragging = true
			e.dragOffset = e.selected.Center().Sub(p)
		}
	}
}

// Move handles pointer motion, with or without a button held.
func (e *Editor) Move(p mgl64.Vec2) {
	switch e.mode {
	case ModeLine, ModePolygon:
		if len(e.pending) > 0 {
			e.cursor, e.hasCursor = p, true
		}
	case ModeSelect:
		if e.dragging && e.selected != nil {
			target := p.Add(e.dragOffset)
			e.selected.Translate(target.Sub(e.selected.Center()))
		}
	}
}

// Release handles a primary button release. It ends a drag.
func (e *Editor) Release(mgl64.Vec2) {
	e.dragging = false
}

// ClosePolygon finishes the polygon under construction if it has at least
// three points, and discards it otherwise.
func (e *Editor) ClosePolygon() {
	if e.mode != ModePolygon {
		return
	}
	if len(e.pending) >= 3 {
		pts := make([]mgl64.Vec2, len(e.pending))
		copy(pts, e.pending)
		e.add(&Polygon{Points: pts, Color: e.color})
	}
	e.pending = nil
	e.hasCursor = false
}

func (e *Editor) add(s Shape) {
	e.shapes = append(e.shapes, s)
	slog.Debug("editor shape added", "count", len(e.shapes))
}

// ShapeAt returns the shape under p, or nil. Lines win over polygons, and
// among shapes of the same kind the most recently drawn wins.
func (e *Editor) ShapeAt(p mgl64.Vec2) Shape {
	for i := len(e.shapes) - 1; i >= 0; i-- {
		if l, ok := e.shapes[i].(*Line); ok && l.Hit(p, e.opts.HitTolerance) {
			return l
		}
	}
	for i := len(e.shapes) - 1; i >= 0; i-- {
		if pg, ok := e.shapes[i].(*Polygon); ok && pg.Hit(p, e.opts.HitTolerance) {
			return pg
		}
	}
	return nil
}

// SetColor picks the palette entry for key. In select mode the selected
// shape is recolored as well. It reports whether key is in the palette.
func (e *Editor) SetColor(key rune) bool {
	c, ok := Palette[key]
	if !ok {
		return false
	}
	e.color = c
	if e.mode == ModeSelect && e.selected != nil {
		e.selected.setColor(c)
	}
	return true
}

// ScaleSelected scales the selected shape about its center. Non-positive
// factors are ignored.
func (e *Editor) ScaleSelected(factor float64) {
	if e.mode != ModeSelect || e.selected == nil || factor <= 0 {
		return
	}
	e.selected.Scale(factor)
}

// Clear removes every shape and anything in progress.
func (e *Editor) Clear() {
	e.shapes = nil
	e.pending = nil
	e.hasCursor = false
	e.selected = nil
	e.dragging = false
}
