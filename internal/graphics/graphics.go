// Package graphics owns the window and the frame loop.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window to open.
type Window struct {
	Width, Height int
	Title         string
	TargetFPS     int
}

// Loop is driven by Run. Load runs once after the window and GL context exist,
// Unload once before the window closes. Update and Draw run every frame.
type Loop interface {
	Load()
	Update()
	Draw()
	Unload()
}

var clearColor = rl.NewColor(255, 255, 255, 255)

// Run opens the window and runs l until the window is closed. The window is
// resizable and multisampled; ESC closes it. Must be called from the main OS thread.
func Run(w Window, l Loop) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	rl.SetWindowMinSize(640, 360)
	rl.SetTargetFPS(int32(w.TargetFPS))

	l.Load()
	defer l.Unload()

	for !rl.WindowShouldClose() {
		l.Update()

		rl.BeginDrawing()
		rl.ClearBackground(clearColor)
		l.Draw()
		rl.EndDrawing()
	}
}
