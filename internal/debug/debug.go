// Package debug draws the optional overlay in the corner of the 3D viewport:
// frame rate, heap usage and the name of the finish currently on the floor.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	padding    = 10
	lineHeight = fontSize + 4
	// refreshEvery: overlay text is rebuilt every N frames to limit allocations.
	refreshEvery = 30
)

// Overlay holds the debug readouts. Everything is hidden until enabled.
type Overlay struct {
	ShowFPS bool
	ShowMem bool
	font    rl.Font
	frames  uint32
	fps     string
	mem     string
	finish  string
	stats   runtime.MemStats
}

// New returns an overlay; showFPS enables the frame counter and finish readout.
func New(showFPS bool) *Overlay {
	return &Overlay{ShowFPS: showFPS}
}

// SetFont sets the font for the readouts. A zero texture ID means raylib's default font.
func (o *Overlay) SetFont(font rl.Font) {
	o.font = font
}

// SetFinish sets the finish line, usually the localised "Tile: <name>".
func (o *Overlay) SetFinish(text string) {
	o.finish = text
}

// Lines returns the readouts that Draw would show this frame.
func (o *Overlay) Lines() []string {
	var out []string
	if o.ShowFPS {
		out = append(out, o.fps, o.finish)
	}
	if o.ShowMem {
		out = append(out, o.mem)
	}
	return out
}

func (o *Overlay) refresh() {
	o.frames++
	due := o.frames%refreshEvery == 0
	if o.ShowFPS && (due || o.fps == "") {
		o.fps = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	if o.ShowMem && (due || o.mem == "") {
		runtime.ReadMemStats(&o.stats)
		o.mem = fmt.Sprintf("Mem: %.2f MiB", float64(o.stats.Alloc)/(1024*1024))
	}
}

// Draw renders the enabled readouts right-aligned against right, starting at top.
func (o *Overlay) Draw(right, top float32) {
	if !o.ShowFPS && !o.ShowMem {
		return
	}
	o.refresh()
	y := top + padding
	for _, text := range o.Lines() {
		if text == "" {
			continue
		}
		if o.font.Texture.ID != 0 {
			w := rl.MeasureTextEx(o.font, text, fontSize, 1).X
			rl.DrawTextEx(o.font, text, rl.NewVector2(right-w-padding, y), fontSize, 1, rl.Green)
		} else {
			w := float32(rl.MeasureText(text, fontSize))
			rl.DrawText(text, int32(right-w-padding), int32(y), fontSize, rl.Green)
		}
		y += lineHeight
	}
}
