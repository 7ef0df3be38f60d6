package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the sandbox window. PixelsPerUnit maps one world unit to screen pixels.
type Window struct {
	Title         string
	Width         int32
	Height        int32
	PixelsPerUnit float32
	TargetFPS     int32
}

// DefaultWindow returns a 1280x720 window at 60 FPS showing 32 pixels per world unit.
func DefaultWindow() Window {
	return Window{Title: "physics sandbox", Width: 1280, Height: 720, PixelsPerUnit: 32, TargetFPS: 60}
}

// Camera returns a 2D camera centered on the world origin. World y points up, so draw
// calls inside BeginMode2D must pass points through Flip.
func (w Window) Camera() rl.Camera2D {
	return rl.NewCamera2D(
		rl.NewVector2(float32(w.Width)/2, float32(w.Height)/2),
		rl.Vector2Zero(),
		0,
		w.PixelsPerUnit,
	)
}

// Flip converts a world point (y up) to camera space (y down).
func Flip(v rl.Vector2) rl.Vector2 { return rl.NewVector2(v.X, -v.Y) }

// ScreenToWorld converts a screen position (e.g. the mouse) back to world coordinates.
func ScreenToWorld(cam rl.Camera2D, screen rl.Vector2) rl.Vector2 {
	return Flip(rl.GetScreenToWorld2D(screen, cam))
}

// Run starts the window and main loop. Each frame it calls update with the frame time, then
// clears the screen and calls drawWorld inside the camera and drawOverlay in screen space.
// Close via ESC or the window button.
func Run(w Window, update func(frameTime float32), drawWorld, drawOverlay func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.TargetFPS)
	cam := w.Camera()

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.BeginMode2D(cam)
		drawWorld()
		rl.EndMode2D()
		drawOverlay()
		rl.EndDrawing()
	}
}
