//go:build ebiten

package ui

import (
	"image/color"

	"seating/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type neighborProvider interface {
	Neighbors(x, y int) [][2]int
}

// Overlay highlights the neighbors that count toward the seat under the
// cursor. Toggle with V.
type Overlay struct {
	sim   core.Sim
	nbrs  neighborProvider
	scale int
	show  bool

	hoverX, hoverY int
	links          [][2]int
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, show: true}
	o.nbrs, _ = sim.(neighborProvider)
	return o
}

// Update tracks the hovered seat.
func (o *Overlay) Update() {
	if o == nil || o.nbrs == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		o.show = !o.show
	}
	if !o.show {
		o.links = nil
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y, ok := cellAt(mx, my, o.scale, o.sim.Size())
	if !ok {
		o.links = nil
		return
	}
	o.hoverX, o.hoverY = x, y
	o.links = o.nbrs.Neighbors(x, y)
}

// Draw strokes one line from the hovered seat to each of its neighbors.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || len(o.links) == 0 {
		return
	}
	half := float32(o.scale) / 2
	x0 := float32(o.hoverX*o.scale) + half
	y0 := float32(o.hoverY*o.scale) + half
	lineColor := color.RGBA{R: 120, G: 230, B: 140, A: 220}
	for _, n := range o.links {
		x1 := float32(n[0]*o.scale) + half
		y1 := float32(n[1]*o.scale) + half
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, lineColor, false)
	}
	s := float32(o.scale)
	vector.StrokeRect(screen, x0-half, y0-half, s, s, 1, color.White, false)
}
